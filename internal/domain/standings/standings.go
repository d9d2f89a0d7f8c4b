// Package standings ranks a group's members by their score on one
// assignment.
package standings

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/roster/internal/domain/model"
)

// Entry is one ranked row: a member and their recorded score.
type Entry struct {
	Rank       int
	PersonName string
	Score      float64
}

// Ordering: score DESC, then person name ASC (deterministic). Members without
// a recorded score for the assignment are excluded rather than ranked at
// zero.

// Compute returns the ranked standings of group for assignment. Ranks are
// dense starting at 1; members sharing a score share a rank.
func Compute(ctx context.Context, group *model.Group, assignment string) ([]Entry, error) {
	if group == nil {
		return nil, ErrNilGroup
	}
	if assignment == "" {
		return nil, ErrBlankAssignment
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("standings cancelled: %w", err)
	}

	entries := make([]Entry, 0, len(group.Members()))
	for _, d := range group.Members() {
		score, ok := d.Grade(assignment)
		if !ok {
			continue
		}
		entries = append(entries, Entry{PersonName: d.Person().Name(), Score: score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PersonName < entries[j].PersonName
	})

	rank := 0
	for i := range entries {
		if i == 0 || entries[i].Score != entries[i-1].Score {
			rank++
		}
		entries[i].Rank = rank
	}
	return entries, nil
}

// Top truncates entries to at most n rows. A non-positive n yields an empty
// slice.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 {
		return nil
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
