package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// options are the global flags of trw.
type options struct {
	trace  string
	format string
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "trw",
		Short:         "trw - scan, parse, match and rewrite TeREx expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(opts.format) {
				return fmt.Errorf("unknown output format %q, use one of %v", opts.format, formats)
			}
			level := tracing.TraceLevelFromString(opts.trace)
			tracer().SetTraceLevel(level)
			tracing.Select("trewrite.scanner").SetTraceLevel(level)
			tracer().Debugf("trace level is %s", opts.trace)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.trace, "trace", "Error", "Trace level [Debug|Info|Error]")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "text", "Output format [text|tree|ascii]")
	root.AddCommand(
		newLexCmd(),
		newParseCmd(opts),
		newMatchCmd(),
		newApplyCmd(opts),
		newRunCmd(),
	)
	return root
}
