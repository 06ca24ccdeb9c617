package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/locale"
	"github.com/junglivre/nomoject/internal/ui"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List PCI devices shown in the Eject menu",
	Long: `Scan the PCI enumeration key for devices whose Capabilities value
marks them as removable, and list them with their registry location.

Numbers in the first column are the indices accepted by
"nomoject generate --select".`,
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")
		s := newSession()

		records := s.scan()

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(records); err != nil {
				fatalf("Error encoding JSON: %v", err)
			}
			return
		}

		printRecords(s, records)
	},
}

func init() {
	scanCmd.Flags().Bool("json", false, "Output as JSON")
}

// scan runs a scan behind a spinner and exits on a registry access failure.
func (s *session) scan() []device.Record {
	scanner := s.scanner()

	stop := startSpinner(s.text(locale.MsgLoadingDevices))
	records, err := scanner.Scan()
	stop()

	if err != nil {
		var accessErr *device.AccessError
		if errors.As(err, &accessErr) {
			s.log.Debugf("%v", accessErr)
			fatalf("%s %s", ui.Error.Sprint(ui.MarkFail), s.text(locale.MsgRegistryAccess, accessErr.Err))
		}
		fatalf("%s: %v", s.text(locale.MsgErrorLoading), err)
	}
	s.log.Infof("scanned %s", scanner.Root())
	return records
}

func printRecords(s *session, records []device.Record) {
	if len(records) == 0 {
		fmt.Println(s.text(locale.MsgNoDevices))
		return
	}

	fmt.Printf("%-4s %-40s %-24s %s\n", "#",
		s.text(locale.MsgColumnDevice), s.text(locale.MsgColumnVendor), s.text(locale.MsgColumnInstance))
	fmt.Println(strings.Repeat("-", 96))
	for i, r := range records {
		fmt.Printf("%-4d %-40s %-24s %s\n", i+1, truncate(r.Description, 40), r.VendorKey, r.InstanceKey)
	}
	fmt.Println()
	fmt.Println(ui.Info.Sprint(s.text(locale.MsgFoundDevices, len(records))))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
