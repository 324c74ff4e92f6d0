package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "hdump",
	Short: "Tools for inspecting parameterized header values",
}

func Execute() error {
	return rootCmd.Execute()
}
