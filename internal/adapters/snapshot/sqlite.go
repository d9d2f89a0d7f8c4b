// Package snapshot persists the address book to a SQLite file. The core
// gives no persistence guarantees of its own; the service calls Save on
// shutdown and Load on start, and a session with no snapshot path configured
// runs fully in memory.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/okian/roster/internal/domain/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS persons (
	name     TEXT PRIMARY KEY,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS book_groups (
	name     TEXT PRIMARY KEY,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS group_tags (
	group_name TEXT NOT NULL,
	tag        TEXT NOT NULL,
	PRIMARY KEY (group_name, tag)
);
CREATE TABLE IF NOT EXISTS group_members (
	group_name  TEXT NOT NULL,
	person_name TEXT NOT NULL,
	position    INTEGER NOT NULL,
	PRIMARY KEY (group_name, person_name)
);
CREATE TABLE IF NOT EXISTS grades (
	group_name  TEXT NOT NULL,
	person_name TEXT NOT NULL,
	assignment  TEXT NOT NULL,
	score       REAL NOT NULL,
	PRIMARY KEY (group_name, person_name, assignment)
);
`

// defaultBusyTimeoutMS bounds how long SQLite waits on a locked database.
const defaultBusyTimeoutMS = 5000

// Store is a SQLite-backed snapshot of the full address book state.
type Store struct {
	db            *sql.DB
	path          string
	busyTimeoutMS int
}

// Open opens or creates the snapshot database at path and ensures the
// schema.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	s := &Store{path: path, busyTimeoutMS: defaultBusyTimeoutMS}
	for _, opt := range opts {
		opt(s)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", s.busyTimeoutMS)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	s.db = db
	return s, nil
}

// Save replaces the stored snapshot with the given state in one transaction.
func (s *Store) Save(ctx context.Context, persons []*model.Person, groups []*model.Group) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"grades", "group_members", "group_tags", "book_groups", "persons"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("%w: clear %s: %v", ErrSave, table, err)
		}
	}

	for i, p := range persons {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO persons (name, position) VALUES (?, ?)`, p.Name(), i); err != nil {
			return fmt.Errorf("%w: person %s: %v", ErrSave, p.Name(), err)
		}
	}
	for i, g := range groups {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO book_groups (name, position) VALUES (?, ?)`, g.Name(), i); err != nil {
			return fmt.Errorf("%w: group %s: %v", ErrSave, g.Name(), err)
		}
		for _, t := range g.Tags() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO group_tags (group_name, tag) VALUES (?, ?)`, g.Name(), t.Label()); err != nil {
				return fmt.Errorf("%w: tag %s: %v", ErrSave, t.Label(), err)
			}
		}
		for j, d := range g.Members() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO group_members (group_name, person_name, position) VALUES (?, ?, ?)`,
				g.Name(), d.Person().Name(), j); err != nil {
				return fmt.Errorf("%w: member %s: %v", ErrSave, d.Person().Name(), err)
			}
			for assignment, score := range d.Grades() {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO grades (group_name, person_name, assignment, score) VALUES (?, ?, ?, ?)`,
					g.Name(), d.Person().Name(), assignment, score); err != nil {
					return fmt.Errorf("%w: grade %s: %v", ErrSave, assignment, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}

// Load rebuilds the full address book state from the stored snapshot. Member
// details reference the same Person values returned in the persons slice.
func (s *Store) Load(ctx context.Context) ([]*model.Person, []*model.Group, error) {
	persons, byName, err := s.loadPersons(ctx)
	if err != nil {
		return nil, nil, err
	}
	groups, err := s.loadGroups(ctx, byName)
	if err != nil {
		return nil, nil, err
	}
	return persons, groups, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close snapshot store: %w", err)
	}
	return nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) loadPersons(ctx context.Context) ([]*model.Person, map[string]*model.Person, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM persons ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: persons: %v", ErrLoad, err)
	}
	defer func() { _ = rows.Close() }()

	var persons []*model.Person
	byName := make(map[string]*model.Person)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, nil, fmt.Errorf("%w: scan person: %v", ErrLoad, err)
		}
		p, err := model.NewPerson(name)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: person %q: %v", ErrLoad, name, err)
		}
		persons = append(persons, p)
		byName[name] = p
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: persons: %v", ErrLoad, err)
	}
	return persons, byName, nil
}

func (s *Store) loadGroups(ctx context.Context, byName map[string]*model.Person) ([]*model.Group, error) {
	names, err := s.groupNames(ctx)
	if err != nil {
		return nil, err
	}

	var groups []*model.Group
	for _, name := range names {
		tags, err := s.groupTags(ctx, name)
		if err != nil {
			return nil, err
		}
		members, err := s.groupMembers(ctx, name, byName)
		if err != nil {
			return nil, err
		}
		g, err := model.NewGroup(name, members, tags)
		if err != nil {
			return nil, fmt.Errorf("%w: group %q: %v", ErrLoad, name, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (s *Store) groupNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM book_groups ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: groups: %v", ErrLoad, err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: scan group: %v", ErrLoad, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: groups: %v", ErrLoad, err)
	}
	return names, nil
}

func (s *Store) groupTags(ctx context.Context, group string) ([]model.Tag, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag FROM group_tags WHERE group_name = ? ORDER BY tag`, group)
	if err != nil {
		return nil, fmt.Errorf("%w: tags of %q: %v", ErrLoad, group, err)
	}
	defer func() { _ = rows.Close() }()

	var tags []model.Tag
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("%w: scan tag: %v", ErrLoad, err)
		}
		t, err := model.NewTag(label)
		if err != nil {
			return nil, fmt.Errorf("%w: tag %q: %v", ErrLoad, label, err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: tags of %q: %v", ErrLoad, group, err)
	}
	return tags, nil
}

func (s *Store) groupMembers(ctx context.Context, group string, byName map[string]*model.Person) ([]*model.GroupMemberDetail, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT person_name FROM group_members WHERE group_name = ? ORDER BY position`, group)
	if err != nil {
		return nil, fmt.Errorf("%w: members of %q: %v", ErrLoad, group, err)
	}
	defer func() { _ = rows.Close() }()

	var members []*model.GroupMemberDetail
	for rows.Next() {
		var personName string
		if err := rows.Scan(&personName); err != nil {
			return nil, fmt.Errorf("%w: scan member: %v", ErrLoad, err)
		}
		person, ok := byName[personName]
		if !ok {
			return nil, fmt.Errorf("%w: member %q of %q has no person row", ErrLoad, personName, group)
		}
		d := model.NewGroupMemberDetail(person)
		if err := s.loadGrades(ctx, group, personName, d); err != nil {
			return nil, err
		}
		members = append(members, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: members of %q: %v", ErrLoad, group, err)
	}
	return members, nil
}

func (s *Store) loadGrades(ctx context.Context, group, person string, d *model.GroupMemberDetail) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT assignment, score FROM grades WHERE group_name = ? AND person_name = ?`, group, person)
	if err != nil {
		return fmt.Errorf("%w: grades of %q: %v", ErrLoad, person, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var assignment string
		var score float64
		if err := rows.Scan(&assignment, &score); err != nil {
			return fmt.Errorf("%w: scan grade: %v", ErrLoad, err)
		}
		d.GradeAssignment(assignment, score)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: grades of %q: %v", ErrLoad, person, err)
	}
	return nil
}
