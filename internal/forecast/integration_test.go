package forecast_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sp496/inventory-planning/internal/db"
	"github.com/sp496/inventory-planning/internal/forecast"
	"github.com/sp496/inventory-planning/internal/schedule"
	"github.com/sp496/inventory-planning/internal/tabread"
)

const (
	testPort     = 15433
	testDB       = "forecasttest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

func TestMain(m *testing.M) {
	if os.Getenv("SKIP_PG_TESTS") != "" {
		os.Exit(m.Run())
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}
	os.Exit(code)
}

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDSN == "" {
		t.Skip("postgres tests skipped")
	}
	ctx := context.Background()
	pool, err := db.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := db.ApplyMigrations(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

func generateFixture(t *testing.T) *schedule.Forecast {
	t.Helper()
	cfg := writeInputs(t)
	subjects, err := tabread.ReadSubjects(cfg.SubjectsPath, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	plans, err := tabread.ReadPlans(cfg.PlansPath, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	h := schedule.Horizon{Now: fixedNow(), MonthsAhead: 12}
	return schedule.Generate(subjects.Patients, plans.Entries, h, nil)
}

func TestSaveRun_RoundTrip(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	f := generateFixture(t)
	if len(f.Visits) == 0 {
		t.Fatal("fixture produced no visits")
	}

	runID := uuid.New()
	copied, err := forecast.SaveRun(ctx, pool, zerolog.Nop(), runID, 12, f)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if copied != int64(len(f.Visits)) {
		t.Errorf("copied %d rows, want %d", copied, len(f.Visits))
	}

	n, err := forecast.CountRunVisits(ctx, pool, runID)
	if err != nil {
		t.Fatalf("CountRunVisits: %v", err)
	}
	if n != int64(len(f.Visits)) {
		t.Errorf("persisted %d rows, want %d", n, len(f.Visits))
	}

	// The DB rollup must agree with the in-memory one.
	got, err := forecast.DemandByDrug(ctx, pool, runID)
	if err != nil {
		t.Fatalf("DemandByDrug: %v", err)
	}
	want := f.DrugSummary()
	if len(got) != len(want) {
		t.Fatalf("DemandByDrug returned %d drugs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("drug %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSaveRun_UnknownRunEmpty(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	n, err := forecast.CountRunVisits(ctx, pool, uuid.New())
	if err != nil {
		t.Fatalf("CountRunVisits: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 visits for unknown run, got %d", n)
	}
}
