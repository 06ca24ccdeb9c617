package main

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/junglivre/nomoject/internal/ui"
	"github.com/junglivre/nomoject/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		short, _ := cmd.Flags().GetBool("short")
		if short {
			fmt.Println(version.Version)
			return
		}

		if !ui.Plain() {
			figure.NewColorFigure("Nomoject", "small", "cyan", true).Print()
			fmt.Println()
		}
		fmt.Println(version.String())
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version number")
}
