// Package tablefmt is the thin external collaborator responsible for
// truth-table file I/O: reading a supported file extension off disk and
// tokenizing it into raw cells, and formatting a canonicalized table back
// into text. It holds no minimization logic — that belongs to package qm
// (spec.md §4.1's Canonicalizer contract is implemented there; this
// package only gets the bytes off disk and back, mirroring spec.md §6's
// framing of file I/O as a thin collaborator around the core).
package tablefmt

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AllowedExtensions are the file types accepted for truth-table input and
// output (§6 "Input file formats").
var AllowedExtensions = []string{".txt", ".md", ".tsv", ".csv"}

// ErrUnsupportedExtension is returned by ReadFile/ValidateExtension when
// the path's extension is not one of AllowedExtensions.
type ErrUnsupportedExtension struct {
	Path string
	Ext  string
}

func (e *ErrUnsupportedExtension) Error() string {
	return fmt.Sprintf("filetype %q not supported for %q, must be one of %v", e.Ext, e.Path, AllowedExtensions)
}

// ValidateExtension checks path's extension against AllowedExtensions.
func ValidateExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return &ErrUnsupportedExtension{Path: path, Ext: ext}
}

// ReadFile reads path and tokenizes every non-blank line into cells split
// on commas, tabs, or runs of spaces (§4.1 step 1).
func ReadFile(path string) ([][]string, error) {
	if err := ValidateExtension(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var rows [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, Tokenize(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// Tokenize splits one line on any run of commas, tabs, or spaces (§4.1
// step 1: "Tokenize each line on `,`, `\t`, or space").
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '\t' || r == ' '
	})
}

// FormatTable renders rows (bit cells followed by one output cell per
// row) back into comma-separated text, one row per line, suitable for
// writing with any AllowedExtensions extension.
func FormatTable(rows [][]string) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteFile formats rows and writes them to path, validating its
// extension first (§6).
func WriteFile(path string, rows [][]string) error {
	if err := ValidateExtension(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(FormatTable(rows)), 0o644)
}
