package main

import (
	"github.com/spf13/cobra"

	"github.com/mensbeam/mime/tools/mediatype/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
