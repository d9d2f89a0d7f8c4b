package seeder

import "time"

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL         string        // Base URL of the service
	NumPersons      int           // Number of persons to create
	NumGroups       int           // Number of groups to create
	MembersPerGroup int           // Number of members assigned to each group
	Assignment      string        // Assignment name graded across all groups
	TopN            int           // Number of standings entries to fetch per group
	Workers         int           // Number of concurrent workers
	Timeout         time.Duration // HTTP request timeout
	OutputFile      string        // Output file for the generated plan
	LogFile         string        // Log file for seeder output
	Verbose         bool          // Enable verbose logging
}

// GradePlan is one grade to submit.
type GradePlan struct {
	PersonName     string  `json:"person_name"`
	GroupName      string  `json:"group_name"`
	AssignmentName string  `json:"assignment_name"`
	Score          float64 `json:"score"`
}

// Plan is everything a seeding run will create.
type Plan struct {
	Persons []string            `json:"persons"`
	Groups  map[string][]string `json:"groups"` // group name -> member names
	Grades  []GradePlan         `json:"grades"`
}

// Entry mirrors a standings entry returned by the service.
type Entry struct {
	Rank       int     `json:"rank"`
	PersonName string  `json:"person_name"`
	Score      float64 `json:"score"`
}

// standingsResponse mirrors GET /standings/{group}/{assignment}.
type standingsResponse struct {
	GroupName  string  `json:"group_name"`
	Assignment string  `json:"assignment"`
	Entries    []Entry `json:"entries"`
}

// feedbackResponse mirrors a successful command response.
type feedbackResponse struct {
	Feedback string `json:"feedback"`
}

// Stats tracks the outcome of a seeding run.
type Stats struct {
	PersonsCreated   int
	GroupsCreated    int
	MembersAdded     int
	GradesSubmitted  int
	GradesSuccessful int
	GradesFailed     int
	StandingsFetched int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
