package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mensbeam/mime"
)

var localTypes []string

var negotiateCmd = &cobra.Command{
	Use:   "negotiate accept...",
	Short: "Picks the best local type for the given Accept header values",
	Args:  cobra.MinimumNArgs(1),
	RunE:  RunNegotiate,
}

func init() {
	negotiateCmd.Flags().StringArrayVarP(&localTypes, "local", "l", nil,
		"supported media type, most preferred first (repeatable)")
	_ = negotiateCmd.MarkFlagRequired("local")
	rootCmd.AddCommand(negotiateCmd)
}

func RunNegotiate(cmd *cobra.Command, args []string) error {
	best, err := mime.Negotiate(localTypes, args...)
	if err != nil {
		return err
	}

	if best == "" {
		fmt.Println("no acceptable type")
		return nil
	}
	fmt.Println(best)
	return nil
}
