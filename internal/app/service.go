// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/roster/internal/adapters/repository"
	"github.com/okian/roster/internal/adapters/snapshot"
	"github.com/okian/roster/internal/domain/command"
	"github.com/okian/roster/internal/domain/standings"
	"github.com/okian/roster/internal/domain/types"
	"github.com/okian/roster/pkg/logger"
	"github.com/okian/roster/pkg/metrics"
)

// defaultMaxStandingsLimit caps GET /standings?limit.
const defaultMaxStandingsLimit = 100

// Service implements the API dependencies for the address book system.
// Writes hold the mutex exclusively; the read paths hold it shared, so a
// command never mutates entity internals while a request is walking them.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     *repository.MemStore
	snapshots *snapshot.Store

	// Configuration
	snapshotPath      string
	maxStandingsLimit int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSnapshotPath enables SQLite persistence at path. An empty path keeps
// the session fully in memory.
func WithSnapshotPath(path string) Option {
	return func(s *Service) {
		s.snapshotPath = path
	}
}

// WithMaxStandingsLimit caps the number of standings rows a caller may
// request.
func WithMaxStandingsLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxStandingsLimit = limit
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxStandingsLimit: defaultMaxStandingsLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the store and, when configured, loads the last snapshot.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting address book service...")
	s.store = repository.NewMemStore(ctx)

	if s.snapshotPath != "" {
		snaps, err := snapshot.Open(ctx, s.snapshotPath)
		if err != nil {
			return fmt.Errorf("start service: %w", err)
		}
		s.snapshots = snaps

		started := time.Now()
		persons, groups, err := snaps.Load(ctx)
		if err != nil {
			return fmt.Errorf("start service: %w", err)
		}
		s.store.Reset(ctx, persons, groups)
		metrics.ObserveSnapshotLoad(time.Since(started))
		s.logger.Info(ctx, "snapshot loaded",
			logger.String("path", s.snapshotPath),
			logger.Int("persons", len(persons)),
			logger.Int("groups", len(groups)),
		)
	}

	s.refreshGauges(ctx)
	s.started = true
	s.logger.Info(ctx, "address book service started")
	return nil
}

// Stop saves a final snapshot when persistence is configured and releases
// resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx := context.Background()
	s.logger.Info(ctx, "stopping address book service...")

	if s.snapshots != nil {
		started := time.Now()
		// Persist the canonical collections, not the display views, so an
		// active filter never drops entities from the snapshot.
		if err := s.snapshots.Save(ctx, s.store.Persons(ctx), s.store.Groups(ctx)); err != nil {
			s.logger.Error(ctx, "snapshot save failed", logger.Error(err))
		} else {
			metrics.ObserveSnapshotSave(time.Since(started))
		}
		if err := s.snapshots.Close(); err != nil {
			s.logger.Error(ctx, "snapshot close failed", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(ctx, "address book service stopped")
}

// Execute applies one command against the store. Command application is
// serialized: one command runs to completion before the next begins, which
// keeps the core's single-writer contract even under concurrent callers.
func (s *Service) Execute(ctx context.Context, cmd command.Command) (command.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := cmd.Execute(ctx, s.store)
	if err != nil {
		metrics.RecordCommandFailure(cmd.Word(), command.KindOf(err).String())
		s.logger.Debug(ctx, "command failed",
			logger.String("command", cmd.Word()),
			logger.Error(err),
		)
		return command.Result{}, err
	}

	metrics.RecordCommand(cmd.Word())
	if cmd.Word() == command.GradeAssignmentWord {
		metrics.RecordGrade()
	}
	s.refreshGauges(ctx)
	s.logger.Debug(ctx, "command executed",
		logger.String("command", cmd.Word()),
		logger.String("feedback", res.Feedback()),
	)
	return res, nil
}

// Persons returns the person display view.
func (s *Service) Persons(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	persons := s.store.FilteredPersons(ctx)
	out := make([]string, len(persons))
	for i, p := range persons {
		out[i] = p.Name()
	}
	return out
}

// Groups returns the group display view with members, tags, and grades.
func (s *Service) Groups(ctx context.Context) []types.GroupView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := s.store.FilteredGroups(ctx)
	out := make([]types.GroupView, len(groups))
	for i, g := range groups {
		view := types.GroupView{Name: g.Name()}
		for _, t := range g.Tags() {
			view.Tags = append(view.Tags, t.Label())
		}
		for _, d := range g.Members() {
			view.Members = append(view.Members, types.MemberView{
				PersonName: d.Person().Name(),
				Grades:     d.Grades(),
			})
		}
		out[i] = view
	}
	return out
}

// Standings returns the ranked scores of a group's members for one
// assignment, capped at limit rows.
func (s *Service) Standings(ctx context.Context, groupName, assignment string, limit int) ([]types.StandingsEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit < 1 || limit > s.maxStandingsLimit {
		limit = s.maxStandingsLimit
	}
	group, err := s.store.Group(ctx, groupName)
	if err != nil {
		return nil, fmt.Errorf("standings: %w", err)
	}
	entries, err := standings.Compute(ctx, group, assignment)
	if err != nil {
		return nil, fmt.Errorf("standings: %w", err)
	}
	entries = standings.Top(entries, limit)

	out := make([]types.StandingsEntry, len(entries))
	for i, e := range entries {
		out[i] = types.StandingsEntry{
			Rank:       e.Rank,
			PersonName: e.PersonName,
			Score:      e.Score,
		}
	}
	return out, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"snapshot_path": s.snapshotPath,
	}
	if s.started {
		persons, groups := s.store.Counts(ctx)
		stats["persons"] = persons
		stats["groups"] = groups
	}
	return stats
}

// Store exposes the underlying model store, mainly for tests that assert on
// state the read paths do not surface.
func (s *Service) Store() *repository.MemStore {
	return s.store
}

func (s *Service) refreshGauges(ctx context.Context) {
	persons, groups := s.store.Counts(ctx)
	metrics.UpdatePersonsTotal(persons)
	metrics.UpdateGroupsTotal(groups)
}
