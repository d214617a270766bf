package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cssinline"
	"github.com/spf13/cobra"
)

var aggressive bool

var rootCmd = &cobra.Command{
	Use:   "cssinline [file]",
	Short: "Inline the computed styles of a rendered HTML document",
	Long: `cssinline reads an HTML document from a file (or stdin), rewrites it so
that its presentation no longer depends on class-based style rules, and
writes the resulting markup to stdout. Stylesheets and scripts are
stripped; the visual properties they contributed become minimal inline
declarations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("cannot open input: %w", err)
			}
			defer f.Close()
			in = f
		}
		return cssinline.Process(in, os.Stdout, aggressive)
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.Flags().BoolVarP(&aggressive, "aggressive", "a", false,
		"clear pre-existing inline styles and prune redundant declarations")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
