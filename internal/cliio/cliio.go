// Package cliio resolves the output file path and its overwrite behavior
// (§6 "Output overwrite behaviour"), grounded on cmd/cupl/main.go's
// output-path handling and the original source's set_output_file_path.
package cliio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const maxRenameAttempts = 999

// ErrRenameCeilingReached is returned when 999 renamed candidates all
// already exist (§7 CapacityError: "rename-attempt ceiling reached").
var ErrRenameCeilingReached = fmt.Errorf("maximum number of output file rename attempts reached (%d)", maxRenameAttempts)

// Decision is what the user chose at the overwrite prompt.
type Decision int

const (
	DecisionOverwrite Decision = iota
	DecisionRename
	DecisionQuit
)

// Prompter asks a single y/n/q question and returns the user's answer,
// abstracting over stdin so tests can supply a scripted reader.
type Prompter func(question string) (Decision, error)

// StdinPrompter reads y/n/q answers from in, reprompting on invalid
// input, mirroring the source's set_output_file_path retry loop.
func StdinPrompter(in io.Reader, out io.Writer) Prompter {
	reader := bufio.NewReader(in)
	return func(question string) (Decision, error) {
		for {
			fmt.Fprint(out, question)
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return 0, err
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y":
				return DecisionOverwrite, nil
			case "n":
				return DecisionRename, nil
			case "q":
				return DecisionQuit, nil
			}
			fmt.Fprintln(out, "Invalid input. Please enter y, n, or q.")
		}
	}
}

// Quit is returned by ResolveOutputPath when the user answers 'q' at the
// overwrite prompt (§6: "on `q`, exit 0").
var Quit = fmt.Errorf("user chose to quit")

// ResolveOutputPath returns the path the caller should actually write to.
// If path does not exist, or overwrite is true, it is returned unchanged.
// Otherwise the user is prompted; 'y' overwrites, 'n' searches for
// path_1, path_2, ... up to maxRenameAttempts, and 'q' returns Quit.
func ResolveOutputPath(path string, overwrite bool, prompt Prompter) (string, error) {
	if overwrite {
		return path, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	decision, err := prompt(fmt.Sprintf("A file already exists at %q. Overwrite? (y/n/q): ", path))
	if err != nil {
		return "", err
	}

	switch decision {
	case DecisionOverwrite:
		return path, nil
	case DecisionQuit:
		return "", Quit
	case DecisionRename:
		return renameCandidate(path)
	default:
		return "", fmt.Errorf("unrecognized overwrite decision %v", decision)
	}
}

func renameCandidate(path string) (string, error) {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)

	for i := 1; i <= maxRenameAttempts; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", ErrRenameCeilingReached
}
