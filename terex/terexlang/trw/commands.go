package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/trewrite/terex/fp"
	"github.com/npillmayer/trewrite/terex/terexlang"
	"github.com/npillmayer/trewrite/terex/termr"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex INPUT",
		Short: "Print the tokens of an input string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := terexlang.Lex(args[0])
			if err != nil {
				return err
			}
			for tok, err := range sc.All() {
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-8q %s\n",
					terexlang.KindString(tok.Kind), tok.Text, tok.Pos)
			}
			return nil
		},
	}
}

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPRESSION",
		Short: "Parse an expression and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := terexlang.ParseExpression(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), e, opts.format)
		},
	}
}

// match lists every sub-expression matching a pattern, together with its
// path and the bindings of the match.
func newMatchCmd() *cobra.Command {
	var bottomUp bool
	cmd := &cobra.Command{
		Use:   "match PATTERN EXPRESSION",
		Short: "List the sub-expressions matching a pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := terexlang.ParseExpression(args[0])
			if err != nil {
				return fmt.Errorf("pattern: %w", err)
			}
			e, err := terexlang.ParseExpression(args[1])
			if err != nil {
				return fmt.Errorf("expression: %w", err)
			}
			dir := fp.TopDownDir
			if bottomUp {
				dir = fp.DepthFirstDir
			}
			out := cmd.OutOrStdout()
			nodes := termr.FindMatches(pattern, e, dir)
			for _, node := range nodes {
				bindings, _ := termr.Match(pattern, node.Expr)
				fmt.Fprintf(out, "%-8s %s %s\n", node.PathString(), node.Expr, bindings)
			}
			if len(nodes) == 0 {
				fmt.Fprintln(out, "no match")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&bottomUp, "bottom-up", false, "List inner matches before outer ones")
	return cmd
}

func newApplyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply RULE EXPRESSION",
		Short: "Rewrite an expression with a rule, in a single pass",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := terexlang.ParseRule(args[0])
			if err != nil {
				return fmt.Errorf("rule: %w", err)
			}
			e, err := terexlang.ParseExpression(args[1])
			if err != nil {
				return fmt.Errorf("expression: %w", err)
			}
			result, err := termr.RewriteWith(rule)(e)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), result, opts.format)
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run JOBFILE",
		Short: "Run a rewrite job from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := termr.LoadJob(args[0])
			if err != nil {
				return err
			}
			results, err := job.Run()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var failed []string
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(out, "%s: %v\n", r.Input, r.Err)
					failed = append(failed, r.Input)
					continue
				}
				fmt.Fprintf(out, "%s => %s\n", r.Input, r.Output)
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d expressions failed: %s",
					len(failed), len(results), strings.Join(failed, "; "))
			}
			return nil
		},
	}
}
