// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// This CLI utility converts markdown documents into HTML.
//
// Usage:
//   marknode [command]
//
// Available Commands:
//   blocks      Print the type of every block in a markdown document
//   help        Help about any command
//   html        HTML output generator for markdown documents
//   tree        Dump the node tree of a markdown document
//
// Flags:
//   -h, --help           help for marknode
//       --trace          trace level [debug|info|error] (default "error")
//
// Use "marknode [command] --help" for more information about a command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"akhil.cc/marknode/gen/html"
	"akhil.cc/marknode/parser"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var traceKeys = []string{"marknode.parser", "marknode.gen"}

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

// input opens the file named by the first argument, or standard input.
func input(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return os.Stdin, nil
	}
	return os.Open(args[0])
}

// setupTracing routes the parser and generator tracers to the standard
// logger. Until a selector is installed, tracing.Select hands out tracers
// that drop everything.
func setupTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func setTraceLevel(s string) error {
	level := tracing.LevelError
	switch strings.ToLower(s) {
	case "debug":
		level = tracing.LevelDebug
	case "info":
		level = tracing.LevelInfo
	case "error":
	default:
		return fmt.Errorf("unknown trace level %q", s)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}

// prefixFlagErrors makes flag errors carry the same prefix as run errors.
func prefixFlagErrors(cmd *cobra.Command, tag string) {
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(tag, err)
		}
		return nil
	})
}

func htmlCommand() *cobra.Command {
	var outputfile, filter string
	var timeout time.Duration
	prefixHTML := "(HTML) "
	cmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "HTML output generator for markdown documents",
		Long: `This command converts a markdown document into HTML.
The document is split into blocks on blank lines; every block becomes
one element inside a single <div>. Text is not escaped. A malformed
document produces no output.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(args)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			defer src.Close()
			root, err := parser.Parse(src)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			out := os.Stdout
			if len(outputfile) != 0 {
				out, err = os.Create(outputfile)
				if err != nil {
					return prefix(prefixHTML, err)
				}
			}
			defer out.Close()
			ctx := context.Background()
			if timeout > -1 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			g := html.GenContext(ctx, root)
			g.Stdout = out
			g.Stderr = os.Stderr
			g.Filter = filter
			if err := g.Run(); err != nil {
				return prefix(prefixHTML, err)
			}
			return nil
		},
	}
	prefixFlagErrors(cmd, prefixHTML)
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	cmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "``shell command the HTML is piped through")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", -1, "``timeout used to halt the generator and its filter")
	// Set string version of default value to be zero-value to prevent it from being printed by FlagUsages.
	cmd.Flags().Lookup("timeout").DefValue = "0"
	return cmd
}

func treeCommand() *cobra.Command {
	prefixTree := "(tree) "
	cmd := &cobra.Command{
		Use:   "tree [input]",
		Short: "Dump the node tree of a markdown document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(args)
			if err != nil {
				return prefix(prefixTree, err)
			}
			defer src.Close()
			root, err := parser.Parse(src)
			if err != nil {
				return prefix(prefixTree, err)
			}
			opts := litter.Options{
				StripPackageNames: false,
				HidePrivateFields: true,
				Separator:         " ",
			}
			fmt.Println(opts.Sdump(root))
			return nil
		},
	}
	prefixFlagErrors(cmd, prefixTree)
	return cmd
}

func blocksCommand() *cobra.Command {
	prefixBlocks := "(blocks) "
	cmd := &cobra.Command{
		Use:   "blocks [input]",
		Short: "Print the type of every block in a markdown document",
		Long: `This command prints one line per block: its position,
its type and its first line, separated by tabs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(args)
			if err != nil {
				return prefix(prefixBlocks, err)
			}
			defer src.Close()
			b, err := io.ReadAll(src)
			if err != nil {
				return prefix(prefixBlocks, err)
			}
			for i, block := range parser.Segment(string(b)) {
				first, _, _ := strings.Cut(block, "\n")
				fmt.Printf("%d\t%v\t%s\n", i+1, parser.Classify(block), first)
			}
			return nil
		},
	}
	prefixFlagErrors(cmd, prefixBlocks)
	return cmd
}

func traceFlag(fs *pflag.FlagSet) *string {
	return fs.String("trace", "error", "``trace level [debug|info|error]")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "marknode",
		Short: "markdown to HTML conversion",
		Long:  `This CLI utility converts markdown documents into HTML.`,
	}
	if err := setupTracing(); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing:", err)
		os.Exit(1)
	}
	level := traceFlag(rootCmd.PersistentFlags())
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setTraceLevel(*level)
	}
	rootCmd.AddCommand(htmlCommand(), treeCommand(), blocksCommand())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
