package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/junglivre/nomoject/internal/history"
	"github.com/junglivre/nomoject/internal/locale"
	"github.com/junglivre/nomoject/internal/regfile"
	"github.com/junglivre/nomoject/internal/task"
	"github.com/junglivre/nomoject/internal/ui"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the startup task that re-applies a registry file",
	Long: `The startup task imports a registry file silently at every boot,
as SYSTEM with the highest privileges. All task commands need an elevated
prompt.`,
}

var taskInstallCmd = &cobra.Command{
	Use:   "install <file.reg>",
	Short: "Copy a registry file to the utilities folder and schedule it at startup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()
		if _, err := os.Stat(args[0]); err != nil {
			fatalf("Error: %v", err)
		}

		db := s.history()
		if db != nil {
			defer db.Close()
		}

		if !s.installTask(db, "", args[0]) {
			exitClosing(db)
		}
	},
}

var taskRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the startup task now",
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()

		db := s.history()
		if db != nil {
			defer db.Close()
		}

		if !s.runTask(db, "") {
			exitClosing(db)
		}
	},
}

var taskRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the startup task",
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()

		db := s.history()
		if db != nil {
			defer db.Close()
		}

		err := s.scheduler().Remove()
		s.recordEvent(db, "", history.ActionRemove, err, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s\n", ui.Error.Sprint(ui.MarkFail), s.text(locale.MsgTaskRemoveFailed, err))
			exitClosing(db)
		}
		fmt.Printf("%s %s\n", ui.Success.Sprint(ui.MarkOK), s.text(locale.MsgTaskRemoved))
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the schtasks commands the task uses",
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()
		utils := s.cfg.Task.UtilsDir
		if utils == "" {
			utils = task.DefaultUtilsDir()
		}
		artifact := filepath.Join(utils, filepath.Base(regfile.NormalizePath(s.cfg.Output.Path)))

		printField(s, locale.MsgLabelName, s.cfg.Task.Name)
		printField(s, locale.MsgLabelFolder, ui.Path.Sprint(utils))
		printField(s, locale.MsgLabelAction, task.ImportCommand(artifact))
		fmt.Println()
		fmt.Println(ui.Command.Sprint(commandLine("schtasks", task.CreateArgs(s.cfg.Task.Name, artifact))))
		fmt.Println(ui.Command.Sprint(commandLine("schtasks", task.RunArgs(s.cfg.Task.Name))))
		fmt.Println(ui.Command.Sprint(commandLine("schtasks", task.DeleteArgs(s.cfg.Task.Name))))
	},
}

func init() {
	taskCmd.AddCommand(taskInstallCmd)
	taskCmd.AddCommand(taskRunCmd)
	taskCmd.AddCommand(taskRemoveCmd)
	taskCmd.AddCommand(taskShowCmd)
}

// exitClosing closes db, when open, and exits with status 1.
func exitClosing(db *history.DB) {
	if db != nil {
		db.Close()
	}
	os.Exit(1)
}

// commandLine renders name and args for display, quoting arguments that
// contain spaces or quotes.
func commandLine(name string, args []string) string {
	parts := []string{name}
	for _, a := range args {
		if strings.ContainsAny(a, " \"") {
			a = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
