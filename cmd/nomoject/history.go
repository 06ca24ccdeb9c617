package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/junglivre/nomoject/internal/history"
	"github.com/junglivre/nomoject/internal/locale"
	"github.com/junglivre/nomoject/internal/ui"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show generated registry files and task actions",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		jsonOut, _ := cmd.Flags().GetBool("json")

		s, db := openHistory()
		defer db.Close()

		artifacts, err := db.RecentArtifacts(limit)
		if err != nil {
			fatalf("Error: %v", err)
		}
		events, err := db.RecentTaskEvents(limit)
		if err != nil {
			fatalf("Error: %v", err)
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			out := map[string]any{
				"artifacts":   artifacts,
				"task_events": events,
			}
			if err := enc.Encode(out); err != nil {
				fatalf("Error encoding JSON: %v", err)
			}
			return
		}

		if len(artifacts) == 0 && len(events) == 0 {
			fmt.Println(s.text(locale.MsgNoHistory))
			return
		}

		fmt.Printf("=== %s ===\n", s.text(locale.MsgHistoryFiles))
		printArtifacts(s, artifacts)
		fmt.Println()
		fmt.Printf("=== %s ===\n", s.text(locale.MsgHistoryActions))
		printEvents(s, events)
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one generated registry file with its devices",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatalf("Error: invalid id %q", args[0])
		}

		s, db := openHistory()
		defer db.Close()

		a, err := db.GetArtifact(id)
		if err != nil {
			db.Close()
			fatalf("Error: %v", err)
		}
		if a == nil {
			db.Close()
			fatalf("Error: no registry file with id %d", id)
		}

		printField(s, locale.MsgLabelID, strconv.FormatInt(a.ID, 10))
		printField(s, locale.MsgLabelRun, a.RunID)
		printField(s, locale.MsgLabelFile, ui.Path.Sprint(a.Path))
		printField(s, locale.MsgLabelWritten,
			fmt.Sprintf("%s (%s)", a.CreatedAt.Local().Format("2006-01-02 15:04:05"), humanize.Time(a.CreatedAt)))
		printField(s, locale.MsgLabelSize, humanize.Bytes(uint64(a.SizeBytes)))
		fmt.Println()

		fmt.Printf("%-4s %-40s %s\n", "#", s.text(locale.MsgColumnDevice), s.text(locale.MsgColumnKey))
		fmt.Println(strings.Repeat("-", 96))
		for _, d := range a.Devices {
			fmt.Printf("%-4d %-40s %s\n", d.Position+1, truncate(d.Description, 40), d.KeyPath)
		}

		events, err := db.TaskEventsByRun(a.RunID)
		if err != nil {
			db.Close()
			fatalf("Error: %v", err)
		}
		if len(events) > 0 {
			fmt.Println()
			printEvents(s, events)
		}
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of entries to show")
	historyCmd.Flags().Bool("json", false, "Output as JSON")
	historyCmd.AddCommand(historyShowCmd)
}

func openHistory() (*session, *history.DB) {
	s := newSession()
	if !s.cfg.HistoryEnabled() {
		fatalf("History is disabled in the config (history.enabled: false)")
	}
	db, err := history.New(s.cfg.HistoryPath())
	if err != nil {
		fatalf("Error opening history: %v", err)
	}
	return s, db
}

// printField prints one "Label: value" line of a detail view.
func printField(s *session, label locale.Key, value string) {
	fmt.Printf("%-12s %s\n", s.text(label)+":", value)
}

func printArtifacts(s *session, artifacts []*history.Artifact) {
	if len(artifacts) == 0 {
		fmt.Println(s.text(locale.MsgNone))
		return
	}
	fmt.Printf("%-5s %-16s %-13s %-10s %s\n", s.text(locale.MsgLabelID), s.text(locale.MsgColumnWhen),
		s.text(locale.MsgColumnDevices), s.text(locale.MsgColumnSize), s.text(locale.MsgColumnFile))
	fmt.Println(strings.Repeat("-", 80))
	for _, a := range artifacts {
		fmt.Printf("%-5d %-16s %-13d %-10s %s\n",
			a.ID, humanize.Time(a.CreatedAt), a.DeviceCount, humanize.Bytes(uint64(a.SizeBytes)), a.Path)
	}
}

func printEvents(s *session, events []*history.TaskEvent) {
	if len(events) == 0 {
		fmt.Println(s.text(locale.MsgNone))
		return
	}
	fmt.Printf("%-16s %-8s %-8s %-24s %s\n", s.text(locale.MsgColumnWhen), s.text(locale.MsgColumnAction),
		s.text(locale.MsgColumnStatus), s.text(locale.MsgColumnTask), s.text(locale.MsgColumnDetail))
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range events {
		status := e.Status
		switch e.Status {
		case history.StatusFailed:
			status = ui.Error.Sprint(status)
		default:
			status = ui.Success.Sprint(status)
		}
		detail := e.Detail
		if detail == "" {
			detail = e.ArtifactPath
		}
		fmt.Printf("%-16s %-8s %-8s %-24s %s\n", humanize.Time(e.Timestamp), e.Action, status, e.TaskName, detail)
	}
}
