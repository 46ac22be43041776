// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program jline checks JSON documents, reporting grammar violations and
// duplicate object keys with their source lines.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/creachadair/jline/ast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

func main() {
	if err := NewCLI().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCLI constructs the command tree for the jline tool.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jline",
		Short: "Check JSON documents and report line-level diagnostics",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
	}

	var relaxed bool
	var path string
	checkCmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Parse each file and report errors and duplicate keys",
		Long: `Parse each named file (or stdin, if no files are named) and report
grammar violations and duplicate object keys with their source lines.
With --relaxed, comments and trailing commas are standardized away
before parsing. With --path, print the value at the given dotted path
along with the line on which it was defined.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return checkFile(cmd, "(stdin)", cmd.InOrStdin(), relaxed, path)
			}
			var failed bool
			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				err = checkFile(cmd, name, f, relaxed, path)
				f.Close()
				if err != nil {
					failed = true
				}
			}
			if failed {
				return errors.New("some inputs were invalid")
			}
			return nil
		},
	}
	checkCmd.Flags().BoolVar(&relaxed, "relaxed", false,
		"Standardize HuJSON (comments, trailing commas) before parsing")
	checkCmd.Flags().StringVar(&path, "path", "",
		"Report the value at this dotted path (e.g. episodes.0.title)")

	rootCmd.AddCommand(checkCmd)
	return rootCmd
}

func checkFile(cmd *cobra.Command, name string, r io.Reader, relaxed bool, path string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if relaxed {
		std, err := hujson.Standardize(data)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", name, color.RedString("%v", err))
			return err
		}
		data = std
	}

	v, err := ast.Parse(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", name, color.RedString("%v", err))
		return err
	}

	for _, d := range findDuplicates(v, nil) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, color.YellowString(
			"key %q first defined at line %d, repeated at %s",
			d.Key, d.Line(), lineList(d.DupLines)))
	}
	if path != "" {
		got, err := ast.Path(v, parsePath(path)...)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", name, color.RedString("%v", err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v (line %d)\n", name, got, got.Line())
	}
	return nil
}

// findDuplicates appends to dups all the members reachable from v that have
// recorded duplicate occurrences, in document order.
func findDuplicates(v ast.Value, dups []*ast.Member) []*ast.Member {
	switch t := v.(type) {
	case *ast.Object:
		for _, m := range t.Members {
			if len(m.DupLines) != 0 {
				dups = append(dups, m)
			}
			dups = findDuplicates(m.Value, dups)
		}
	case *ast.Array:
		for _, elt := range t.Values {
			dups = findDuplicates(elt, dups)
		}
	}
	return dups
}

func lineList(lines []int) string {
	ss := make([]string, len(lines))
	for i, n := range lines {
		ss[i] = "line " + strconv.Itoa(n)
	}
	return strings.Join(ss, ", ")
}

// parsePath splits a dotted path expression into ast.Path elements, treating
// all-digit segments as array indices.
func parsePath(s string) []any {
	var out []any
	for _, elt := range strings.Split(s, ".") {
		if n, err := strconv.Atoi(elt); err == nil {
			out = append(out, n)
		} else {
			out = append(out, elt)
		}
	}
	return out
}
