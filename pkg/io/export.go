// Package io writes rendered artifacts to the filesystem. It is the only
// place the generator touches disk; the layout engine itself performs no I/O.
package io

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/honeycomb/pkg/errors"
)

// WriteArtifact writes a single artifact to path, creating parent
// directories as needed.
func WriteArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeFileWrite, err, "create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", path)
	}
	return nil
}

// ExportArtifacts writes every rendered format to disk and returns the paths
// written, keyed by format.
//
// With a single format the output path is used verbatim (an extension is
// appended only when missing). With multiple formats the output path acts as
// a base: any extension is stripped and each format appends its own.
func ExportArtifacts(artifacts map[string][]byte, formats []string, output string) (map[string]string, error) {
	if output == "" {
		output = "honeycomb"
	}

	paths := make(map[string]string, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "no artifact rendered for format %q", format)
		}
		path := outputPath(output, format, len(formats) > 1)
		if err := WriteArtifact(path, data); err != nil {
			return nil, err
		}
		paths[format] = path
	}
	return paths, nil
}

// outputPath resolves the target file name for one format.
func outputPath(output, format string, multi bool) string {
	ext := "." + format
	if multi {
		return strings.TrimSuffix(output, filepath.Ext(output)) + ext
	}
	if filepath.Ext(output) == "" {
		return output + ext
	}
	return output
}

// Describe returns a short human-readable summary like "honeycomb.svg (12.3 KB)".
func Describe(path string, size int) string {
	return fmt.Sprintf("%s (%.1f KB)", path, float64(size)/1024)
}
