package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/junglivre/nomoject/internal/config"
	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/elevate"
	"github.com/junglivre/nomoject/internal/history"
	"github.com/junglivre/nomoject/internal/locale"
	"github.com/junglivre/nomoject/internal/logging"
	"github.com/junglivre/nomoject/internal/task"
	"github.com/mattn/go-isatty"
)

// session holds what every command derives from flags and config.
type session struct {
	cfg *config.Config
	loc locale.Locale
	log logging.Logger
}

func newSession() *session {
	log := logging.Logger{Verbose: verbose, Debug: debug}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fatalf("Error loading config: %v", err)
	}
	if storeFile != "" {
		cfg.Registry.StoreFile = storeFile
	}

	loc, err := resolveLocale(langFlag, cfg.Language)
	if err != nil {
		fatalf("Error: %v", err)
	}
	log.Debugf("language %s, registry root %s", loc, cfg.Registry.Root)

	return &session{cfg: cfg, loc: loc, log: log}
}

// resolveLocale prefers the --lang flag, then the config, then the system
// language. A bad flag is an error; a bad config value falls back to
// detection.
func resolveLocale(flag, configured string) (locale.Locale, error) {
	if flag != "" {
		loc, err := locale.Parse(flag)
		if err != nil {
			return "", fmt.Errorf("invalid --lang %q: %w", flag, err)
		}
		return loc, nil
	}
	if configured != "" {
		if loc, err := locale.Parse(configured); err == nil {
			return loc, nil
		}
	}
	return locale.Detect(), nil
}

func (s *session) text(key locale.Key, args ...any) string {
	if len(args) == 0 {
		return locale.Localize(key, s.loc)
	}
	return locale.Localizef(s.loc, key, args...)
}

// scanner opens the configured store. The live registry needs an elevated
// process; a simulated tree does not.
func (s *session) scanner() *device.Scanner {
	return s.scannerWith(s.log)
}

func (s *session) scannerWith(log logging.Logger) *device.Scanner {
	if !s.cfg.Simulated() {
		s.requireElevation()
	}
	store, err := s.cfg.OpenStore()
	if err != nil {
		fatalf("Error opening registry store: %v", err)
	}
	if s.cfg.Simulated() {
		s.log.Infof("reading simulated registry from %s", s.cfg.Registry.StoreFile)
	}
	return device.NewScanner(store, s.cfg.Registry.Root, log)
}

func (s *session) scheduler() *task.Scheduler {
	s.requireElevation()
	return task.NewScheduler(s.cfg.Task.Name, s.cfg.Task.UtilsDir, s.log)
}

func (s *session) requireElevation() {
	if err := elevate.Require(); err != nil {
		s.log.Debugf("elevation check: %v", err)
		fatalf("%s", s.text(locale.MsgNotElevated))
	}
}

// history opens the history database, or returns nil when it is disabled
// or cannot be opened. History never blocks the main operation.
func (s *session) history() *history.DB {
	if !s.cfg.HistoryEnabled() {
		return nil
	}
	db, err := history.New(s.cfg.HistoryPath())
	if err != nil {
		s.log.Warnf("history unavailable: %v", err)
		return nil
	}
	return db
}

// recordEvent logs a task action to db if it is open.
func (s *session) recordEvent(db *history.DB, runID, action string, err error, artifactPath string) {
	if db == nil {
		return
	}
	e := &history.TaskEvent{
		RunID:        runID,
		TaskName:     s.cfg.Task.Name,
		Action:       action,
		Status:       history.StatusOK,
		ArtifactPath: artifactPath,
	}
	if action == history.ActionRun || action == history.ActionApply {
		e.Status = history.StatusStarted
	}
	if err != nil {
		e.Status = history.StatusFailed
		e.Detail = err.Error()
	}
	if err := db.RecordTaskEvent(e); err != nil {
		s.log.Warnf("%v", err)
	}
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// startSpinner shows message with a spinner on terminals when verbose output
// is off. The returned func stops it.
func startSpinner(message string) func() {
	if verbose || debug || !isTerminal(os.Stdout) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()
	return s.Stop
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
