package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "mediatype",
	Short: "Tools for inspecting media type parsing and negotiation",
}

func Execute() error {
	return rootCmd.Execute()
}
