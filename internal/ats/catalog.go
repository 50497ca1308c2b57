package ats

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed keywords.json
var defaultKeywordsFile []byte

// Catalog is the ordered list of keywords a resume is matched against.
// It is never modified after construction.
type Catalog struct {
	keywords []string
}

type catalogFile struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// NewCatalog builds a catalog from a copy of keywords.
func NewCatalog(keywords []string) Catalog {
	kws := make([]string, len(keywords))
	copy(kws, keywords)
	return Catalog{keywords: kws}
}

// Keywords returns a copy of the catalog entries in their original order.
func (c Catalog) Keywords() []string {
	kws := make([]string, len(c.keywords))
	copy(kws, c.keywords)
	return kws
}

// Len reports the number of keywords in the catalog.
func (c Catalog) Len() int {
	return len(c.keywords)
}

// LoadCatalog reads the keyword catalog at path, or the bundled keywords.json
// when path is empty. A missing or malformed resource gives an empty catalog
// so checks keep running with zero keywords.
func LoadCatalog(path string, logger zerolog.Logger) Catalog {
	var (
		kws []string
		err error
	)
	if path == "" {
		kws, err = parseCatalog(defaultKeywordsFile, "keywords.json")
	} else {
		kws, err = readCatalog(path)
	}
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("keyword catalog unavailable, continuing with no keywords")
		return Catalog{}
	}
	logger.Debug().Int("keywords", len(kws)).Str("path", path).Msg("keyword catalog loaded")
	return NewCatalog(kws)
}

func readCatalog(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return parseCatalog(data, path)
}

func parseCatalog(data []byte, name string) ([]string, error) {
	var f catalogFile
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse yaml catalog: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse json catalog: %w", err)
		}
	}
	return f.Keywords, nil
}
