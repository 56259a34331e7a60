package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/quickrecap/recap-pipeline/internal/store"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
	headSize = 15
)

type docxWriter struct {
	dir string
}

// NewDocxWriter creates a Writer that saves one .docx per user under dir.
func NewDocxWriter(dir string) (Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create artifacts dir: %w", err)
	}
	return &docxWriter{dir: dir}, nil
}

// Write renders transcript and both summaries into a styled document.
// Existing artifacts for the user are overwritten.
func (w *docxWriter) Write(ctx context.Context, userID string, results store.Results) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addHeading(doc.AddParagraph(""), "Recap", 16)

	sections := []struct {
		title string
		body  string
	}{
		{"Generic Summary", results.GenericSummary},
		{"Personalized Summary", results.PersonalizedSummary},
		{"Full Transcript", results.Transcript},
	}

	for _, sec := range sections {
		doc.AddParagraph("")
		addHeading(doc.AddParagraph(""), sec.title, headSize)
		body := sec.body
		if body == "" {
			body = "(empty)"
		}
		p := doc.AddParagraph("")
		p.AddText(body).Font(fontName).Size(fontSize).Color("000000")
	}

	outputPath := filepath.Join(w.dir, userID+".docx")
	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	return nil
}

func addHeading(p *docx.Paragraph, text string, size uint64) {
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

var _ Writer = (*docxWriter)(nil)
