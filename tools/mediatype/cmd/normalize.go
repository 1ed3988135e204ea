package cmd

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/mensbeam/mime"
)

var showDiff bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize type...",
	Short: "Shows the canonical form of each media type argument",
	Args:  cobra.MinimumNArgs(1),
	Run:   RunNormalize,
}

func init() {
	normalizeCmd.Flags().BoolVar(&showDiff, "diff", false,
		"show a character diff between the input and its canonical form")
	rootCmd.AddCommand(normalizeCmd)
}

func RunNormalize(cmd *cobra.Command, args []string) {
	for _, arg := range args {
		mt := mime.ParseBytes([]byte(arg))
		if mt == nil {
			fmt.Printf("%s: unparsable\n", arg)
			continue
		}

		if showDiff {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(arg, mt.String(), false)
			fmt.Println(dmp.DiffPrettyText(diffs))
		} else {
			fmt.Println(mt)
		}
	}
}
