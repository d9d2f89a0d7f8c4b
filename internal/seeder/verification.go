package seeder

import (
	"context"
	"fmt"

	"github.com/okian/roster/pkg/logger"
)

// verifyStandings fetches the standings for every seeded group and checks
// the ordering invariants the service promises: scores descend, ranks are
// dense, and tied scores share a rank.
func verifyStandings(ctx context.Context, config *Config, plan *Plan, stats *Stats) error {
	client := newHTTPClient(config.Timeout)

	for groupName, members := range plan.Groups {
		entries, err := fetchStandings(ctx, client, config, groupName)
		if err != nil {
			return fmt.Errorf("failed to fetch standings for %s: %w", groupName, err)
		}
		stats.StandingsFetched++

		if err := checkEntries(groupName, entries, len(members), config.TopN); err != nil {
			return err
		}
	}

	logger.Get().Info(ctx, "standings verified", logger.Int("groups", stats.StandingsFetched))
	return nil
}

// checkEntries validates one group's standings.
func checkEntries(groupName string, entries []Entry, memberCount, topN int) error {
	limit := memberCount
	if topN > 0 && topN < limit {
		limit = topN
	}
	if len(entries) > limit {
		return fmt.Errorf("group %s: got %d entries, expected at most %d", groupName, len(entries), limit)
	}

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]

		if cur.Score > prev.Score {
			return fmt.Errorf("group %s: scores not descending at position %d (%f > %f)",
				groupName, i, cur.Score, prev.Score)
		}
		if cur.Score == prev.Score && cur.Rank != prev.Rank {
			return fmt.Errorf("group %s: tied scores at position %d have ranks %d and %d",
				groupName, i, prev.Rank, cur.Rank)
		}
		if cur.Score < prev.Score && cur.Rank != prev.Rank+1 {
			return fmt.Errorf("group %s: rank not dense at position %d (rank %d follows %d)",
				groupName, i, cur.Rank, prev.Rank)
		}
	}

	if len(entries) > 0 && entries[0].Rank != 1 {
		return fmt.Errorf("group %s: first entry has rank %d, expected 1", groupName, entries[0].Rank)
	}
	return nil
}
