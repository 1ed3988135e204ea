package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mensbeam/mime"
)

var classifyCmd = &cobra.Command{
	Use:   "classify type...",
	Short: "Shows the MIME groups each media type argument belongs to",
	Args:  cobra.MinimumNArgs(1),
	Run:   RunClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func RunClassify(cmd *cobra.Command, args []string) {
	for _, arg := range args {
		mt := mime.ParseBytes([]byte(arg))
		if mt == nil {
			fmt.Printf("%s: unparsable\n", arg)
			continue
		}

		groups := make([]string, 0, 10)
		for name, is := range map[string]func() bool{
			"archive":     mt.IsArchive,
			"audio-video": mt.IsAudioVideo,
			"font":        mt.IsFont,
			"html":        mt.IsHTML,
			"image":       mt.IsImage,
			"javascript":  mt.IsJavaScript,
			"json":        mt.IsJSON,
			"scriptable":  mt.IsScriptable,
			"xml":         mt.IsXML,
			"zip-based":   mt.IsZipBased,
		} {
			if is() {
				groups = append(groups, name)
			}
		}
		sort.Strings(groups)

		if len(groups) == 0 {
			fmt.Printf("%s: no groups\n", mt.Essence())
			continue
		}
		fmt.Printf("%s: %s\n", mt.Essence(), strings.Join(groups, ", "))
	}
}
