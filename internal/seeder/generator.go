package seeder

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
	"github.com/okian/roster/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	scoreBandDivisor   = 4
)

// Constants for score generation bands.
const (
	strugglingMin   = 0.0
	strugglingRange = 40.0
	passingMin      = 40.0
	passingRange    = 35.0
	strongMin       = 75.0
	strongRange     = 20.0
	topMin          = 95.0
	topRange        = 5.0
)

// Score band cases.
const (
	caseStruggling = 0
	casePassing    = 1
	caseStrong     = 2
	caseTop        = 3
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomInt returns a random int in [0, max) using crypto/rand.
func getRandomInt(max int64) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(max))
	return int(n.Int64())
}

// generateScore draws a score from one of four bands so standings have
// visible spread instead of uniform noise.
func generateScore() float64 {
	switch getRandomInt(scoreBandDivisor) {
	case caseStruggling:
		return strugglingMin + getRandomFloat()*strugglingRange
	case casePassing:
		return passingMin + getRandomFloat()*passingRange
	case caseStrong:
		return strongMin + getRandomFloat()*strongRange
	case caseTop:
		return topMin + getRandomFloat()*topRange
	default:
		return passingMin
	}
}

// generatePlan builds the full set of persons, groups, memberships, and
// grades for a run. Names carry a UUID suffix so repeated runs against the
// same service never collide.
func generatePlan(ctx context.Context, config *Config) *Plan {
	logger.Get().Info(ctx, "generating seed plan",
		logger.Int("persons", config.NumPersons),
		logger.Int("groups", config.NumGroups),
		logger.Int("membersPerGroup", config.MembersPerGroup))

	plan := &Plan{
		Persons: make([]string, config.NumPersons),
		Groups:  make(map[string][]string, config.NumGroups),
	}

	for i := 0; i < config.NumPersons; i++ {
		plan.Persons[i] = "person-" + uuid.New().String()
	}

	membersPerGroup := config.MembersPerGroup
	if membersPerGroup > config.NumPersons {
		membersPerGroup = config.NumPersons
	}

	for g := 0; g < config.NumGroups; g++ {
		groupName := "group-" + uuid.New().String()

		// Pick distinct members for this group.
		chosen := make(map[int]struct{}, membersPerGroup)
		members := make([]string, 0, membersPerGroup)
		for len(members) < membersPerGroup {
			idx := getRandomInt(int64(config.NumPersons))
			if _, ok := chosen[idx]; ok {
				continue
			}
			chosen[idx] = struct{}{}
			members = append(members, plan.Persons[idx])
		}
		plan.Groups[groupName] = members

		for _, member := range members {
			plan.Grades = append(plan.Grades, GradePlan{
				PersonName:     member,
				GroupName:      groupName,
				AssignmentName: config.Assignment,
				Score:          generateScore(),
			})
		}
	}

	logger.Get().Info(ctx, "seed plan ready", logger.Int("grades", len(plan.Grades)))
	return plan
}
