package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/roster/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// HTTP status code constants.
const (
	statusOK = 200
)

// Run executes a complete seeding run against a live service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting roster seeder",
		logger.String("baseURL", config.BaseURL),
		logger.Int("persons", config.NumPersons),
		logger.Int("groups", config.NumGroups),
		logger.Int("membersPerGroup", config.MembersPerGroup),
		logger.String("assignment", config.Assignment),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate the plan
	plan := generatePlan(ctx, config)

	// Step 3: Create persons and groups, then wire memberships. These go
	// in sequence because grades depend on them existing.
	if err := createEntities(ctx, config, plan, stats); err != nil {
		return fmt.Errorf("entity creation failed: %w", err)
	}

	// Step 4: Submit grades concurrently
	if err := submitGrades(ctx, config, plan.Grades, stats); err != nil {
		return fmt.Errorf("grade submission failed: %w", err)
	}

	// Step 5: Fetch and verify standings per group
	if err := verifyStandings(ctx, config, plan, stats); err != nil {
		return fmt.Errorf("standings verification failed: %w", err)
	}

	// Step 6: Save the plan to file
	if err := savePlanToFile(ctx, config, plan); err != nil {
		logger.Get().Warn(ctx, "failed to save plan to file", logger.Error(err))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "seeding completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the endpoint serves Prometheus metrics)
	if resp.StatusCode != statusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// createEntities creates every person and group in the plan and adds each
// group's members to it.
func createEntities(ctx context.Context, config *Config, plan *Plan, stats *Stats) error {
	client := newHTTPClient(config.Timeout)

	for _, name := range plan.Persons {
		if err := postCommand(ctx, client, config.BaseURL, "/persons", map[string]string{"name": name}); err != nil {
			return fmt.Errorf("failed to create person %s: %w", name, err)
		}
		stats.PersonsCreated++
	}
	logger.Get().Info(ctx, "persons created", logger.Int("count", stats.PersonsCreated))

	for groupName, members := range plan.Groups {
		if err := postCommand(ctx, client, config.BaseURL, "/groups", map[string]interface{}{"name": groupName}); err != nil {
			return fmt.Errorf("failed to create group %s: %w", groupName, err)
		}
		stats.GroupsCreated++

		for _, member := range members {
			path := "/groups/" + groupName + "/members"
			if err := postCommand(ctx, client, config.BaseURL, path, map[string]string{"person_name": member}); err != nil {
				return fmt.Errorf("failed to add %s to %s: %w", member, groupName, err)
			}
			stats.MembersAdded++
		}
	}
	logger.Get().Info(ctx, "groups created",
		logger.Int("groups", stats.GroupsCreated),
		logger.Int("members", stats.MembersAdded))

	return nil
}

// savePlanToFile saves the generated plan to a JSON file.
func savePlanToFile(ctx context.Context, config *Config, plan *Plan) error {
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "seed_plan_" + timestamp + ".json"
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := os.WriteFile(filename, data, logFilePermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "plan saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final seeding statistics.
func displayFinalStats(stats *Stats) {
	var gradesPerSecond float64
	if stats.Duration > 0 {
		gradesPerSecond = float64(stats.GradesSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("personsCreated", stats.PersonsCreated),
		logger.Int("groupsCreated", stats.GroupsCreated),
		logger.Int("membersAdded", stats.MembersAdded),
		logger.Int("gradesSubmitted", stats.GradesSubmitted),
		logger.Int("gradesSuccessful", stats.GradesSuccessful),
		logger.Int("gradesFailed", stats.GradesFailed),
		logger.Int("standingsFetched", stats.StandingsFetched),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("gradesPerSecond", gradesPerSecond))
}
