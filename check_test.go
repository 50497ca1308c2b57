package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com | +44 7700 900123

Summary
Backend engineer.

Experience
- Built Go services on Kubernetes
- Tuned PostgreSQL queries

Skills
Go, SQL, Docker
`

func runCheckCmd(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	var out bytes.Buffer
	if args == nil {
		args = []string{}
	}
	cmd := newCheckCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	return got, nil
}

func TestCheckCommand_KeywordOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o600))

	got, err := runCheckCmd(t, path, "--keywords", "docker,rust")
	require.NoError(t, err)

	assert.Equal(t, []any{"docker"}, got["matchedKeywords"])
	assert.Equal(t, map[string]any{"email": "jane@example.com", "phone": "+447700900123"}, got["contacts"])
	assert.Contains(t, got, "band")
	assert.Contains(t, got, "rawTextSnippet")
	assert.NotContains(t, got, "Source")
}

func TestCheckCommand_KeywordsFile(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte(sampleResume), 0o600))
	catalog := filepath.Join(dir, "keywords.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte("keywords:\n  - go\n  - sql\n"), 0o600))

	got, err := runCheckCmd(t, resume, "--keywords-file", catalog)
	require.NoError(t, err)

	// sections 20, keywords 35, contacts 10, length 0, formatting 10
	assert.Equal(t, float64(75), got["score"])
	assert.Equal(t, "good", got["band"])
	assert.Equal(t, []any{"go", "sql"}, got["matchedKeywords"])
}

func TestCheckCommand_MissingFile(t *testing.T) {
	_, err := runCheckCmd(t, filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorContains(t, err, "failed to read resume")
}

func TestCheckCommand_RequiresOneArg(t *testing.T) {
	_, err := runCheckCmd(t)
	assert.Error(t, err)
}
