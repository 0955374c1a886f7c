// Package ingestion collects input documents and extracts structured resume
// JSON from them. It sits outside the computational core: everything here is
// boundary I/O (files, archives, the extraction service), kept behind narrow
// interfaces so the core stays purely in-memory.
package ingestion

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-intake/internal/pipeline"
)

// FromDir reads every file in dir whose extension (lowercased) is in exts
// and returns them as documents in sorted filename order, so batch output
// is deterministic regardless of directory iteration order.
func FromDir(dir string, exts ...string) ([]pipeline.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	var docs []pipeline.Document
	for _, entry := range entries {
		if entry.IsDir() || !matchesExt(entry.Name(), exts) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, pipeline.Document{Name: entry.Name(), Content: data})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// FromZip extracts matching files from a zip archive, in sorted name order.
// Nested directories inside the archive are flattened to base names, the way
// an uploaded bundle of resumes is usually laid out.
func FromZip(path string, exts ...string) ([]pipeline.Document, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	defer reader.Close()

	var docs []pipeline.Document
	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !matchesExt(file.Name, exts) {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in archive: %w", file.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s in archive: %w", file.Name, err)
		}
		docs = append(docs, pipeline.Document{Name: filepath.Base(file.Name), Content: data})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

func matchesExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}
