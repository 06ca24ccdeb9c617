package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/locale"
	"github.com/junglivre/nomoject/internal/regfile"
	"github.com/junglivre/nomoject/internal/ui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.reg>",
	Short: "Show the device keys a registry file changes",
	Long: `Decode a registry file (UTF-16 or UTF-8) and list each key it writes
together with the Capabilities value it sets.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")
		s := newSession()

		blocks, err := regfile.ReadFile(args[0])
		if err != nil {
			fatalf("Error reading %s: %v", args[0], err)
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(blocks); err != nil {
				fatalf("Error encoding JSON: %v", err)
			}
			return
		}

		fmt.Printf("%-14s %s\n", s.text(locale.MsgColumnCapabilities), s.text(locale.MsgColumnKey))
		fmt.Println(strings.Repeat("-", 96))
		hidden := 0
		for _, b := range blocks {
			caps := "-"
			if v, ok := b.DWORD(device.ValueCapabilities); ok {
				caps = fmt.Sprintf("%d", v)
				if v == device.CapabilityHidden {
					hidden++
				}
			}
			fmt.Printf("%-14s %s\n", caps, b.Key)
		}
		fmt.Println()
		fmt.Printf("%s, %s\n", s.text(locale.MsgKeyCount, len(blocks)), ui.Info.Sprint(s.text(locale.MsgHiddenCount, hidden)))
	},
}

func init() {
	inspectCmd.Flags().Bool("json", false, "Output as JSON")
}
