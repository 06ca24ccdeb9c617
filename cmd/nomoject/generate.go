package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/history"
	"github.com/junglivre/nomoject/internal/locale"
	"github.com/junglivre/nomoject/internal/regfile"
	"github.com/junglivre/nomoject/internal/task"
	"github.com/junglivre/nomoject/internal/tui"
	"github.com/junglivre/nomoject/internal/ui"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a registry file that hides selected devices",
	Long: `Generate a .reg file setting Capabilities to 2 for the selected devices,
which removes them from the Eject menu once imported.

Without --select or --all an interactive checklist is shown. Keys:
  space/x   toggle device        a   toggle all
  r         rescan               l   switch language
  enter     generate             q   quit

After writing, the file can be applied:
  --apply     open it with the default handler (Registry Editor import)
  --schedule  install a startup task that imports it at every boot
  --run-now   start the startup task immediately

With none of these flags on a terminal, you are asked instead.`,
	Example: `  # Pick devices interactively
  nomoject generate

  # Hide devices 1 and 3 from "nomoject scan" and schedule the fix
  nomoject generate --select 1,3 -o C:\fix\hide.reg --schedule --run-now`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		selectSpec, _ := cmd.Flags().GetString("select")
		all, _ := cmd.Flags().GetBool("all")
		apply, _ := cmd.Flags().GetBool("apply")
		schedule, _ := cmd.Flags().GetBool("schedule")
		runNow, _ := cmd.Flags().GetBool("run-now")

		s := newSession()
		tty := interactive()

		var selected []device.Record
		switch {
		case selectSpec != "" || all:
			records := s.scan()
			fmt.Println(ui.Info.Sprint(s.text(locale.MsgFoundDevices, len(records))))
			if all {
				selected = records
			} else {
				indices, err := parseSelection(selectSpec, len(records))
				if err != nil {
					fatalf("Error: %v", err)
				}
				selected = pick(records, indices)
			}
		case tty:
			selected = s.choose()
		default:
			fatalf("Error: no terminal for the device checklist; use --select or --all")
		}

		if output == "" {
			output = s.cfg.Output.Path
			if tty && len(selected) > 0 {
				output = s.promptPath(output)
			}
		}

		path, err := regfile.Write(selected, output)
		if errors.Is(err, regfile.ErrNoSelection) {
			s.log.Warnf("%s", s.text(locale.MsgSelectAtLeastOne))
			return
		}
		if err != nil {
			var writeErr *regfile.WriteError
			if errors.As(err, &writeErr) {
				err = writeErr.Err
			}
			fatalf("%s %s", ui.Error.Sprint(ui.MarkFail), s.text(locale.MsgSaveFailed, err))
		}
		fmt.Printf("%s %s\n", ui.Success.Sprint(ui.MarkOK), s.text(locale.MsgGenerated, ui.Path.Sprint(path)))

		db := s.history()
		if db != nil {
			defer db.Close()
		}
		runID := history.NewRunID()
		s.recordArtifact(db, runID, path, selected)

		if !apply && !schedule && !runNow && tty {
			apply, schedule, runNow = s.askFollowUp()
		}

		failed := false
		if schedule {
			if !s.installTask(db, runID, path) {
				failed = true
				runNow = false
			}
		}
		if runNow && !s.runTask(db, runID) {
			failed = true
		}
		if apply && !s.applyArtifact(db, runID, path) {
			failed = true
		}
		if failed {
			if db != nil {
				db.Close()
			}
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "registry file to write (default from config, nomoject.reg)")
	generateCmd.Flags().String("select", "", "devices to hide by scan index, e.g. 1,3 or 2-4")
	generateCmd.Flags().Bool("all", false, "hide every removable device found")
	generateCmd.Flags().Bool("apply", false, "import the file now with the default handler")
	generateCmd.Flags().Bool("schedule", false, "install a startup task that imports the file at boot")
	generateCmd.Flags().Bool("run-now", false, "start the startup task immediately")
}

// choose runs the checklist and returns the confirmed selection. The
// session adopts a language picked inside the checklist.
func (s *session) choose() []device.Record {
	// The checklist owns the screen; scan logs are shown once it exits.
	log, held := s.log.Hold()
	scanner := s.scannerWith(log)

	m, err := tui.Run(scanner.Scan, s.loc)
	held.Flush(os.Stderr)
	if err != nil {
		fatalf("Error running device checklist: %v", err)
	}
	s.loc = m.Locale()

	if !m.Confirmed() {
		fmt.Println(s.text(locale.MsgCancelled))
		os.Exit(0)
	}
	return m.Selection()
}

func (s *session) promptPath(def string) string {
	prompt := promptui.Prompt{
		Label:     s.text(locale.MsgSavePrompt),
		Default:   def,
		AllowEdit: true,
	}
	path, err := prompt.Run()
	if err != nil {
		fmt.Println(s.text(locale.MsgCancelled))
		os.Exit(0)
	}
	if path == "" {
		return def
	}
	return path
}

// askFollowUp offers the startup task first; declining it offers an
// immediate import instead.
func (s *session) askFollowUp() (apply, schedule, runNow bool) {
	if confirm(s.text(locale.MsgAskCreateTask)) {
		return false, true, confirm(s.text(locale.MsgAskRunNow))
	}
	return confirm(s.text(locale.MsgAskApplyNow)), false, false
}

func confirm(label string) bool {
	prompt := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := prompt.Run()
	return err == nil
}

func (s *session) recordArtifact(db *history.DB, runID, path string, records []device.Record) {
	if db == nil {
		return
	}
	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	if err := db.RecordArtifact(history.NewArtifact(runID, path, size, records)); err != nil {
		s.log.Warnf("%v", err)
	}
}

func (s *session) installTask(db *history.DB, runID, path string) bool {
	copied, err := s.scheduler().Install(path)
	s.recordEvent(db, runID, history.ActionInstall, err, copied)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", ui.Error.Sprint(ui.MarkFail), s.text(locale.MsgTaskCreateFailed, err))
		return false
	}
	fmt.Printf("%s %s\n", ui.Success.Sprint(ui.MarkOK), s.text(locale.MsgTaskCreated))
	return true
}

func (s *session) runTask(db *history.DB, runID string) bool {
	err := s.scheduler().RunNow()
	s.recordEvent(db, runID, history.ActionRun, err, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", ui.Error.Sprint(ui.MarkFail), s.text(locale.MsgTaskStartFailed, err))
		return false
	}
	fmt.Printf("%s %s\n", ui.Success.Sprint(ui.MarkOK), s.text(locale.MsgTaskStarted))
	return true
}

func (s *session) applyArtifact(db *history.DB, runID, path string) bool {
	fmt.Printf("%s %s\n", ui.Info.Sprint(ui.MarkNext), s.text(locale.MsgApplying))
	err := task.ApplyNow(path, nil)
	s.recordEvent(db, runID, history.ActionApply, err, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", ui.Error.Sprint(ui.MarkFail), s.text(locale.MsgApplyFailed, err))
		return false
	}
	return true
}
