// Package source abstracts where statement text comes from. The pipeline
// only ever sees lines; whether they were extracted from a PDF beforehand
// or handed over as plain text is this package's concern.
package source

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Source yields the text of a statement. HeaderLines is a cheaper view
// limited to the opening pages, enough for bank and holder sniffing.
type Source interface {
	Lines(ctx context.Context, path string) ([]string, error)
	HeaderLines(ctx context.Context, path string) ([]string, error)
}

// headerPages is how many leading pages the header view covers.
const headerPages = 2

// FileSource reads pre-extracted statement text from disk. Page breaks are
// form feeds, the convention pdftotext follows.
type FileSource struct{}

// NewFileSource returns a Source over plain text files.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Lines returns every line of the statement, page breaks removed.
func (s *FileSource) Lines(ctx context.Context, path string) ([]string, error) {
	pages, err := s.pages(ctx, path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, page := range pages {
		lines = append(lines, splitLines(page)...)
	}
	return lines, nil
}

// HeaderLines returns the lines of the first pages only.
func (s *FileSource) HeaderLines(ctx context.Context, path string) ([]string, error) {
	pages, err := s.pages(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(pages) > headerPages {
		pages = pages[:headerPages]
	}
	var lines []string
	for _, page := range pages {
		lines = append(lines, splitLines(page)...)
	}
	return lines, nil
}

func (s *FileSource) pages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read statement %s: %w", path, err)
	}
	return strings.Split(string(data), "\f"), nil
}

func splitLines(page string) []string {
	return strings.Split(strings.ReplaceAll(page, "\r\n", "\n"), "\n")
}
