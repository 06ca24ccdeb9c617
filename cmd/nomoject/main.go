package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	langFlag  string
	storeFile string
	verbose   bool
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "nomoject",
	Short: "Hide internal PCI devices from the Windows Eject menu",
	Long: `Nomoject finds PCI devices that Windows offers to "Safely Remove",
such as SATA controllers and network adapters, and writes a registry file
that marks the selected ones as non-removable.

The registry file can be imported right away, or installed as a startup
task that re-applies it every boot, since drivers may reset the value.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is %ProgramData%\\nomoject\\config.yaml)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "message language: en or pt_BR (default detected from the system)")
	rootCmd.PersistentFlags().StringVar(&storeFile, "store-file", "", "read devices from a YAML registry tree instead of the live registry")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show informational output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "show debug output")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
