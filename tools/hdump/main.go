package main

import (
	"github.com/spf13/cobra"

	"github.com/go-mime/headerparams/tools/hdump/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
