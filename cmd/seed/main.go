package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/roster/internal/seeder"
)

// Default configuration constants.
const (
	defaultNumPersons      = 200
	defaultNumGroups       = 10
	defaultMembersPerGroup = 20
	defaultTopN            = 10
	defaultWorkers         = 2 // multiplier for runtime.NumCPU()
	defaultTimeout         = 30 * time.Second
	defaultRunTimeout      = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numPersons = flag.Int("persons", defaultNumPersons, "Number of persons to create")
		numGroups  = flag.Int("groups", defaultNumGroups, "Number of groups to create")
		members    = flag.Int("members", defaultMembersPerGroup, "Number of members per group")
		assignment = flag.String("assignment", "Assignment 1", "Assignment name to grade")
		topN       = flag.Int("top", defaultTopN, "Number of standings entries to fetch per group")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Output file for the generated plan (default: seed_plan_TIMESTAMP.json)")
		logFile    = flag.String("log", "", "Log file for seeder output (default: seed_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seeder.ShowHelp()
		return
	}

	// Setup logging
	if err := seeder.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create seeder configuration
	config := &seeder.Config{
		BaseURL:         *baseURL,
		NumPersons:      *numPersons,
		NumGroups:       *numGroups,
		MembersPerGroup: *members,
		Assignment:      *assignment,
		TopN:            *topN,
		Workers:         *workers,
		Timeout:         *timeout,
		OutputFile:      *outputFile,
		LogFile:         *logFile,
		Verbose:         *verbose,
	}

	// Run the seeder
	if err := seeder.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seeding failed: " + err.Error() + "\n")
		return
	}
}
