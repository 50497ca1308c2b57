package ats

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const docxMime = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Text sources reported by ExtractText.
const (
	SourcePDF   = "pdf"
	SourceDocx  = "docx"
	SourceRaw   = "raw"
	SourceEmpty = "empty"
)

type Extraction struct {
	Text   string
	Source string
}

// ExtractText turns an uploaded document into plain text. It always tries the
// bytes as a PDF first, then as a DOCX when the content sniffs as one, and
// finally decodes them as UTF-8 with invalid sequences dropped.
func ExtractText(data []byte) Extraction {
	if text, err := extractPDFText(data); err == nil {
		return Extraction{Text: text, Source: SourcePDF}
	}

	if mimetype.Detect(data).Is(docxMime) {
		if text, err := extractDocxText(data); err == nil {
			return Extraction{Text: text, Source: SourceDocx}
		}
	}

	text := strings.ToValidUTF8(string(data), "")
	if text == "" {
		return Extraction{Source: SourceEmpty}
	}
	return Extraction{Text: text, Source: SourceRaw}
}

func extractPDFText(data []byte) (text string, err error) {
	// the parser panics on some truncated or hostile inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	numPages := pdfReader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxPlainText(doc.Editable().GetContent())
}

// docxPlainText strips WordprocessingML markup, keeping run text and ending
// each paragraph with a newline.
func docxPlainText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tab":
				sb.WriteByte('\t')
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				sb.WriteByte('\n')
			}
		case xml.CharData:
			sb.Write(t)
		}
	}
	// drops the newline after the XML prolog and the one closing the last paragraph
	return strings.TrimSpace(sb.String()), nil
}
