package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	app "github.com/okian/roster/internal/app"
	"github.com/okian/roster/internal/domain/command"
	"github.com/okian/roster/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

// mustExecute runs cmd through svc and fails the test on error.
func mustExecute(t *testing.T, svc *app.Service, cmd command.Command, err error) command.Result {
	t.Helper()
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	res, err := svc.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("execute %s: %v", cmd.Word(), err)
	}
	return res
}

func TestServiceLifecycle(t *testing.T) {
	convey.Convey("Given a new service", t, func() {
		ctx := context.Background()
		svc := app.New()

		convey.Convey("When starting it", func() {
			err := svc.Start(ctx)
			defer svc.Stop()

			convey.Convey("Then it should report started with empty state", func() {
				convey.So(err, convey.ShouldBeNil)
				stats := svc.GetStats()
				convey.So(stats["started"], convey.ShouldBeTrue)
				convey.So(stats["persons"], convey.ShouldEqual, 0)
				convey.So(stats["groups"], convey.ShouldEqual, 0)
			})

			convey.Convey("And starting again should be a no-op", func() {
				convey.So(svc.Start(ctx), convey.ShouldBeNil)
			})
		})

		convey.Convey("When stopping without starting", func() {
			convey.So(func() { svc.Stop() }, convey.ShouldNotPanic)
		})
	})
}

func TestServiceExecute(t *testing.T) {
	convey.Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := app.New()
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		convey.Convey("When running a full command sequence", func() {
			cmd, err := command.NewAddPerson("Alice Pauline")
			mustExecute(t, svc, cmd, err)
			cmd2, err := command.NewAddGroup("CS2103T", nil)
			mustExecute(t, svc, cmd2, err)
			cmd3, err := command.NewAddToGroup("Alice Pauline", "CS2103T")
			mustExecute(t, svc, cmd3, err)
			cmd4, err := command.NewGradeAssignment("Alice Pauline", "CS2103T", "Assignment 1", 95.0)
			res := mustExecute(t, svc, cmd4, err)

			convey.Convey("Then the read views should reflect every step", func() {
				convey.So(res.Feedback(), convey.ShouldContainSubstring, "Graded Assignment Assignment 1")

				persons := svc.Persons(ctx)
				convey.So(persons, convey.ShouldResemble, []string{"Alice Pauline"})

				groups := svc.Groups(ctx)
				convey.So(len(groups), convey.ShouldEqual, 1)
				convey.So(groups[0].Name, convey.ShouldEqual, "CS2103T")
				convey.So(len(groups[0].Members), convey.ShouldEqual, 1)
				convey.So(groups[0].Members[0].PersonName, convey.ShouldEqual, "Alice Pauline")
				convey.So(groups[0].Members[0].Grades["Assignment 1"], convey.ShouldEqual, 95.0)
			})
		})

		convey.Convey("When a command fails", func() {
			cmd, err := command.NewGradeAssignment("Nobody", "CS2103T", "Assignment 1", 95.0)
			convey.So(err, convey.ShouldBeNil)

			_, err = svc.Execute(ctx, cmd)

			convey.Convey("Then the typed error should pass through unchanged", func() {
				convey.So(command.KindOf(err), convey.ShouldEqual, command.KindNotFound)
				convey.So(err.Error(), convey.ShouldEqual, "Person not found: Nobody")
			})
		})
	})
}

func TestServiceStandings(t *testing.T) {
	convey.Convey("Given a service with graded members", t, func() {
		ctx := context.Background()
		svc := app.New(app.WithMaxStandingsLimit(2))
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		for _, name := range []string{"Alice", "Benson", "Carl"} {
			cmd, err := command.NewAddPerson(name)
			mustExecute(t, svc, cmd, err)
		}
		cmd, err := command.NewAddGroup("CS2103T", nil)
		mustExecute(t, svc, cmd, err)
		scores := map[string]float64{"Alice": 70.0, "Benson": 95.0, "Carl": 40.0}
		for _, name := range []string{"Alice", "Benson", "Carl"} {
			join, err := command.NewAddToGroup(name, "CS2103T")
			mustExecute(t, svc, join, err)
			grade, err := command.NewGradeAssignment(name, "CS2103T", "Assignment 1", scores[name])
			mustExecute(t, svc, grade, err)
		}

		convey.Convey("When fetching standings within the cap", func() {
			entries, err := svc.Standings(ctx, "CS2103T", "Assignment 1", 2)

			convey.Convey("Then the ranked rows should come back in order", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(entries), convey.ShouldEqual, 2)
				convey.So(entries[0].PersonName, convey.ShouldEqual, "Benson")
				convey.So(entries[0].Rank, convey.ShouldEqual, 1)
				convey.So(entries[1].PersonName, convey.ShouldEqual, "Alice")
				convey.So(entries[1].Rank, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When the requested limit exceeds the cap", func() {
			entries, err := svc.Standings(ctx, "CS2103T", "Assignment 1", 50)

			convey.Convey("Then the cap should apply", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(entries), convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When the group does not exist", func() {
			_, err := svc.Standings(ctx, "CS9999", "Assignment 1", 2)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestServiceSnapshotPersistence(t *testing.T) {
	convey.Convey("Given a service with a snapshot path", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "roster.db")

		svc := app.New(app.WithSnapshotPath(path))
		convey.So(svc.Start(ctx), convey.ShouldBeNil)

		cmd, err := command.NewAddPerson("Alice Pauline")
		mustExecute(t, svc, cmd, err)
		cmd2, err := command.NewAddGroup("CS2103T", nil)
		mustExecute(t, svc, cmd2, err)
		cmd3, err := command.NewAddToGroup("Alice Pauline", "CS2103T")
		mustExecute(t, svc, cmd3, err)
		cmd4, err := command.NewGradeAssignment("Alice Pauline", "CS2103T", "Assignment 1", 95.0)
		mustExecute(t, svc, cmd4, err)

		convey.Convey("When stopping and starting a fresh service on the same path", func() {
			svc.Stop()

			restarted := app.New(app.WithSnapshotPath(path))
			convey.So(restarted.Start(ctx), convey.ShouldBeNil)
			defer restarted.Stop()

			convey.Convey("Then the full state should survive the restart", func() {
				convey.So(restarted.Persons(ctx), convey.ShouldResemble, []string{"Alice Pauline"})

				groups := restarted.Groups(ctx)
				convey.So(len(groups), convey.ShouldEqual, 1)
				convey.So(groups[0].Members[0].Grades["Assignment 1"], convey.ShouldEqual, 95.0)

				entries, err := restarted.Standings(ctx, "CS2103T", "Assignment 1", 10)
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(entries), convey.ShouldEqual, 1)
				convey.So(entries[0].Score, convey.ShouldEqual, 95.0)
			})
		})
	})
}

func TestServiceSnapshotFailure(t *testing.T) {
	convey.Convey("Given a snapshot path pointing at a missing directory", t, func() {
		ctx := context.Background()
		svc := app.New(app.WithSnapshotPath(filepath.Join(t.TempDir(), "missing", "nested", "roster.db")))

		convey.Convey("When starting", func() {
			err := svc.Start(ctx)

			convey.Convey("Then startup should fail instead of running stateless", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func setupModelGroup(t *testing.T) (*model.Group, *model.Person) {
	t.Helper()
	p, err := model.NewPerson("Alice")
	if err != nil {
		t.Fatalf("new person: %v", err)
	}
	g, err := model.NewGroup("CS2103T", nil, nil)
	if err != nil {
		t.Fatalf("new group: %v", err)
	}
	return g, p
}

// Exercises Execute against the read views from multiple goroutines. The
// grade overwrites mutate member grade maps, so any missing read lock shows
// up under the race detector.
func TestServiceConcurrentReadsDuringWrites(t *testing.T) {
	ctx := context.Background()
	svc := app.New()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer svc.Stop()

	cmd, err := command.NewAddPerson("Alice Pauline")
	mustExecute(t, svc, cmd, err)
	cmd2, err := command.NewAddGroup("CS2103T", nil)
	mustExecute(t, svc, cmd2, err)
	cmd3, err := command.NewAddToGroup("Alice Pauline", "CS2103T")
	mustExecute(t, svc, cmd3, err)

	const iterations = 500

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			grade, err := command.NewGradeAssignment("Alice Pauline", "CS2103T", "Assignment 1", float64(i))
			if err != nil {
				t.Errorf("build grade: %v", err)
				return
			}
			if _, err := svc.Execute(ctx, grade); err != nil {
				t.Errorf("execute grade: %v", err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			for _, g := range svc.Groups(ctx) {
				for _, m := range g.Members {
					_ = m.Grades["Assignment 1"]
				}
			}
			_ = svc.Persons(ctx)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			if _, err := svc.Standings(ctx, "CS2103T", "Assignment 1", 10); err != nil {
				t.Errorf("standings: %v", err)
				return
			}
			_ = svc.GetStats()
		}
	}()

	wg.Wait()
}

func TestServiceSnapshotIgnoresFilters(t *testing.T) {
	convey.Convey("Given a persisted service with an active display filter", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "roster.db")

		svc := app.New(app.WithSnapshotPath(path))
		convey.So(svc.Start(ctx), convey.ShouldBeNil)

		for _, name := range []string{"Alice Pauline", "Benson Meier"} {
			cmd, err := command.NewAddPerson(name)
			mustExecute(t, svc, cmd, err)
		}
		for _, name := range []string{"CS2103T", "CS2101"} {
			cmd, err := command.NewAddGroup(name, nil)
			mustExecute(t, svc, cmd, err)
		}
		cmd, err := command.NewAddToGroup("Alice Pauline", "CS2103T")
		mustExecute(t, svc, cmd, err)
		grade, err := command.NewGradeAssignment("Alice Pauline", "CS2103T", "Assignment 1", 95.0)
		mustExecute(t, svc, grade, err)

		// Hide everything from the display views before stopping.
		svc.Store().SetPersonFilter(ctx, func(p *model.Person) bool { return false })
		svc.Store().SetGroupFilter(ctx, func(g *model.Group) bool { return false })
		convey.So(svc.Persons(ctx), convey.ShouldBeEmpty)
		convey.So(svc.Groups(ctx), convey.ShouldBeEmpty)

		convey.Convey("When stopping and restarting on the same path", func() {
			svc.Stop()

			restarted := app.New(app.WithSnapshotPath(path))
			convey.So(restarted.Start(ctx), convey.ShouldBeNil)
			defer restarted.Stop()

			convey.Convey("Then the snapshot should hold the canonical state", func() {
				convey.So(restarted.Persons(ctx), convey.ShouldResemble, []string{"Alice Pauline", "Benson Meier"})

				groups := restarted.Groups(ctx)
				convey.So(len(groups), convey.ShouldEqual, 2)
				convey.So(groups[0].Name, convey.ShouldEqual, "CS2103T")
				convey.So(groups[0].Members[0].Grades["Assignment 1"], convey.ShouldEqual, 95.0)
				convey.So(groups[1].Name, convey.ShouldEqual, "CS2101")
			})
		})
	})
}

func TestServiceStoreAccess(t *testing.T) {
	convey.Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := app.New()
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		convey.Convey("When reaching the underlying store", func() {
			g, p := setupModelGroup(t)
			convey.So(svc.Store().AddPerson(ctx, p), convey.ShouldBeNil)
			convey.So(svc.Store().AddGroup(ctx, g), convey.ShouldBeNil)

			convey.Convey("Then the service views should see the data", func() {
				convey.So(svc.Persons(ctx), convey.ShouldResemble, []string{"Alice"})
				convey.So(len(svc.Groups(ctx)), convey.ShouldEqual, 1)
			})
		})
	})
}
