// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Command dibeans builds a container from the registered sample types and
// prints the beans it created together with the fields it wired.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := options{format: formatText, parallelism: 1}

	cmd := &cobra.Command{
		Use:   "dibeans [root]",
		Short: "Build a container from the sample catalog and print its wiring",
		Long: `dibeans discovers the marked types registered under root, builds a
container from them and prints every bean with the fields it received.
The root defaults to the bundled sample packages.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.root = args[0]
			}
			return run(cmd.Context(), stdout, stderr, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", opts.format,
		fmt.Sprintf("output format (%s|%s)", formatText, formatYAML))
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log container events to stderr")
	flags.IntVarP(&opts.parallelism, "parallelism", "p", opts.parallelism,
		"number of beans built and wired concurrently")
	flags.BoolVar(&opts.allFields, "all-fields", false,
		"wire every field of the discovered beans, not only tagged ones")
	return cmd
}
