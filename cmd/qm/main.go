// Command qm is the CLI entry point: canonicalize a truth table or
// minterm/don't-care list and print its prime implicants.
//
// Grounded on cmd/cupl/main.go's command-dispatch shape — a single
// cobra.Command here in place of the teacher's build/burn/devices
// switch, since this spec has one operation, not a PLD build pipeline.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adastra1826/Quine-McCluskey-Algorithm-Digital-Logic/internal/cliio"
	"github.com/adastra1826/Quine-McCluskey-Algorithm-Digital-Logic/internal/obslog"
	"github.com/adastra1826/Quine-McCluskey-Algorithm-Digital-Logic/internal/qm"
	"github.com/adastra1826/Quine-McCluskey-Algorithm-Digital-Logic/internal/tablefmt"
	mccluskey "github.com/adastra1826/Quine-McCluskey-Algorithm-Digital-Logic"
)

type flags struct {
	minterms  string
	dontcares string
	labels    string
	bits      int
	output    string
	showTable bool
	yes       bool
	verbose   int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var qmErr *qm.Error
		if ok := asQMError(err, &qmErr); ok && qmErr.Kind == qm.KindInternalInvariant {
			panic(err)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func asQMError(err error, target **qm.Error) bool {
	for err != nil {
		if e, ok := err.(*qm.Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "qm [flags] <inputFile> [outputFile]",
		Short:         "Quine-McCluskey two-level Boolean minimizer",
		Version:       mccluskey.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.minterms, "minterms", "m", "", "ON-set minterm indices, comma-separated")
	cmd.Flags().StringVarP(&f.dontcares, "dontcares", "d", "", "don't-care minterm indices, comma-separated")
	cmd.Flags().StringVarP(&f.labels, "labels", "l", "", "variable labels, comma-separated, for formatted output")
	cmd.Flags().IntVar(&f.bits, "bits", 0, "explicit input bit count (SoP mode only; inferred from the largest index otherwise, §9.3)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (alternative to the positional outputFile; the only way to name one in --minterms mode, which otherwise prints to stdout)")
	cmd.Flags().BoolVar(&f.showTable, "show-table", false, "include the canonicalized truth table in the output, before the prime implicants (SPEC_FULL §4)")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "overwrite output file if it exists without prompting")
	cmd.Flags().CountVarP(&f.verbose, "verbose", "v", "increase log verbosity (repeatable)")

	return cmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	logger := obslog.Setup(cmd.ErrOrStderr(), f.verbose)

	rows, bits, err := canonicalizeInput(args, f)
	if err != nil {
		return err
	}
	logger.Debug().Int("bits", bits).Int("rows", len(rows)).Msg("canonicalized input")

	result, err := qm.Minimize(rows)
	if err != nil {
		return err
	}
	logger.Info().Int("primes", len(result.Primes)).Msg("minimization complete")

	outputPath, err := resolveOutputPath(args, f)
	if err != nil {
		if err == cliio.Quit {
			return nil
		}
		return err
	}

	var rendered strings.Builder
	if f.showTable {
		rendered.WriteString(tablefmt.FormatTable(tablefmt.RowsToCells(rows)))
	}
	rendered.WriteString(tablefmt.FormatPrimes(result, splitLabels(f.labels)))

	if outputPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered.String())
		return nil
	}
	return tablefmt.WriteFile(outputPath, rowsOf(rendered.String()))
}

// canonicalizeInput dispatches between truth-table and SoP ingestion
// based on whether --minterms was supplied, enforcing §6's "specifying
// both --minterms and an input file path is an error".
func canonicalizeInput(args []string, f *flags) ([]qm.Row, int, error) {
	if f.minterms != "" {
		if len(args) > 0 {
			return nil, 0, &qm.Error{Kind: qm.KindUsage, Msg: "cannot specify both --minterms and an input file"}
		}
		return qm.CanonicalizeSoP(f.minterms, f.dontcares, f.bits)
	}

	if len(args) == 0 {
		return nil, 0, &qm.Error{Kind: qm.KindUsage, Msg: "no input file specified"}
	}
	if len(args) > 2 {
		return nil, 0, &qm.Error{Kind: qm.KindUsage, Msg: "too many arguments"}
	}

	raw, err := tablefmt.ReadFile(args[0])
	if err != nil {
		return nil, 0, &qm.Error{Kind: qm.KindIO, Msg: fmt.Sprintf("reading %s", args[0]), Err: err}
	}
	return qm.CanonicalizeTruthTable(raw)
}

// resolveOutputPath picks the target output path: the --output flag takes
// priority when both are given, otherwise the positional outputFile from
// "<inputFile> [outputFile]" (§6), otherwise stdout (empty string).
func resolveOutputPath(args []string, f *flags) (string, error) {
	target := f.output
	if target == "" && len(args) == 2 {
		target = args[1]
	}
	if target == "" {
		return "", nil
	}
	return cliio.ResolveOutputPath(target, f.yes, cliio.StdinPrompter(os.Stdin, os.Stderr))
}

func splitLabels(spec string) []string {
	if strings.TrimSpace(spec) == "" {
		return nil
	}
	parts := strings.Split(spec, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func rowsOf(rendered string) [][]string {
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	out := make([][]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		out = append(out, []string{line})
	}
	return out
}
