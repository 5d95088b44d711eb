package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "continuo",
	Short: "Figured bass realization",
	Long:  `Realizes figured bass progressions into four voices.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
