package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-attendance-monitor/internal/analyzer"
	"github.com/penwyp/go-attendance-monitor/internal/config"
	"github.com/penwyp/go-attendance-monitor/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug   bool
	logJSON bool

	// Inputs
	configFile     string
	teacher        string
	rosterFile     string
	attendanceFile string

	// Output related
	outputFormat string
	timezone     string
	sortBy       string

	// Filtering
	skipWaitingRoom bool

	rootCmd = &cobra.Command{
		Use:   "go-attendance-monitor [teacher-name] [flags]",
		Short: "Class attendance reconciliation tool",
		Long: `go-attendance-monitor is a command-line tool for reconciling a class roster against a meeting attendance export.

Participant names in the export are matched to the roster word by word, tolerating accents and letter case.
The session window is the span of the teacher's connections, and each student's attendance is reported
as the percentage of that window they were connected.

Examples:
  go-attendance-monitor "Prof Diaz" --roster students.txt --attendance participants.csv
  go-attendance-monitor --teacher "Prof Diaz" -r students.txt -a participants.csv --output json
  go-attendance-monitor --config class.yaml --sort percentage
  go-attendance-monitor --config class.yaml --timezone America/Bogota --skip-waiting-room`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
)

const (
	defaultLogFile = "~/.go-attendance-monitor/logs/app.log"
)

func init() {
	addFlags(rootCmd)
}

func addFlags(cmd *cobra.Command) {
	// Input configuration
	cmd.PersistentFlags().StringVar(&configFile, "config", "",
		"YAML configuration file")
	cmd.Flags().StringVarP(&teacher, "teacher", "t", "",
		"Teacher name as written in the attendance export")
	cmd.Flags().StringVarP(&rosterFile, "roster", "r", "",
		"Roster file with one student name per line")
	cmd.Flags().StringVarP(&attendanceFile, "attendance", "a", "",
		"Meeting attendance export (CSV)")

	// Filtering and ordering
	cmd.Flags().BoolVar(&skipWaitingRoom, "skip-waiting-room", false,
		"Ignore rows spent in the waiting room")
	cmd.Flags().StringVar(&sortBy, "sort", config.DefaultSort,
		"Result order (roster, name, percentage)")

	// Output configuration
	cmd.Flags().StringVarP(&outputFormat, "output", "o", config.DefaultOutput,
		"Output format (table, json, csv, summary)")
	cmd.Flags().StringVar(&outputFormat, "format", "",
		"Alias for --output")
	cmd.Flags().StringVar(&timezone, "timezone", config.DefaultTimezone,
		"Timezone of the export timestamps (e.g., America/Bogota, UTC)")

	// System and debugging
	cmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	cmd.PersistentFlags().BoolVar(&logJSON, "log-json", false,
		"Write log entries as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Determine log level based on debug flag
	logLevel := "info"
	if cfg.Debug {
		logLevel = "debug"
	}
	logFormat := util.FormatText
	if logJSON {
		logFormat = util.FormatJSON
	}

	// Initialize logging
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = defaultLogFile
	}
	logFile = expandPath(logFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(logLevel, logFile, cfg.Debug, logFormat); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer util.CloseLogger()

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return err
	}

	// Create and run analyzer
	a := analyzer.New(cfg)
	util.WithFields(util.Field{Key: "run_id", Value: a.RunID()})
	util.LogDebugf("Configuration:\n%s", cfg)
	return a.Run()
}

// buildConfig loads the optional config file and overlays the flags the user set.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(expandOptional(configFile))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("teacher") {
		cfg.Teacher = teacher
	}
	if len(args) > 0 {
		cfg.Teacher = args[0]
	}
	if flags.Changed("roster") {
		cfg.RosterFile = rosterFile
	}
	if flags.Changed("attendance") {
		cfg.AttendanceFile = attendanceFile
	}

	// Handle format alias
	if flags.Changed("output") || flags.Changed("format") {
		cfg.OutputFormat = outputFormat
	}
	if flags.Changed("timezone") {
		cfg.Timezone = timezone
	}
	if flags.Changed("sort") {
		cfg.SortBy = sortBy
	}
	if flags.Changed("skip-waiting-room") {
		cfg.SkipWaitingRoom = skipWaitingRoom
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}

	cfg.RosterFile = expandOptional(cfg.RosterFile)
	cfg.AttendanceFile = expandOptional(cfg.AttendanceFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func expandOptional(path string) string {
	if path == "" {
		return ""
	}
	return expandPath(path)
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
