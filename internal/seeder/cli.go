package seeder

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/roster/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seed_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the seeder.
func ShowHelp() {
	os.Stdout.WriteString(`Roster Seeder
=============

A concurrent tool for populating a running roster service with persons,
groups, memberships, and assignment grades, then verifying the standings
the service reports for each group.

Usage:
  go run cmd/seed/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -persons int
        Number of persons to create (default 200)
  -groups int
        Number of groups to create (default 10)
  -members int
        Number of members per group (default 20)
  -assignment string
        Assignment name to grade (default "Assignment 1")
  -top int
        Number of standings entries to fetch per group (default 10)
  -workers int
        Number of concurrent workers (default 2x CPU count)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for the generated plan (default: seed_plan_TIMESTAMP.json)
  -log string
        Log file for seeder output (default: seed_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help
`)
}
