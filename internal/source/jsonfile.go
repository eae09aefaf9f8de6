package source

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"leadscout-engine/internal/domain"
)

// FileSource reads listings from a local file, either a JSON array or
// NDJSON (one object per line). Crawler exports land in both shapes
// depending on which tool produced them.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) List(ctx context.Context) ([]domain.RawListing, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read listings file: %w", err)
	}

	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var out []domain.RawListing
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("parse listings array: %w", err)
		}
		return out, nil
	}

	var out []domain.RawListing
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var l domain.RawListing
		if err := json.Unmarshal([]byte(line), &l); err != nil {
			return nil, fmt.Errorf("parse listings line %d: %w", lineNo, err)
		}
		out = append(out, l)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan listings file: %w", err)
	}
	return out, nil
}
