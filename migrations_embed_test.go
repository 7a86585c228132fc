package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"food-app/services"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMigrationNamesSorted(t *testing.T) {
	names, err := migrationNames()
	if err != nil {
		t.Fatalf("migrationNames: %v", err)
	}
	if len(names) < 2 {
		t.Fatalf("expected schema and seed migrations, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("migrations out of order: %s before %s", names[i-1], names[i])
		}
	}
}

// The seed rows must be a subset of the builtin catalog so both sources agree.
func TestSeedMatchesBuiltinCatalog(t *testing.T) {
	c, err := services.BuiltinCatalog()
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []int{1, 2, 4, 6, 8, 10} {
		if _, ok := c.ByID(id); !ok {
			t.Errorf("seeded id %d missing from builtin catalog", id)
		}
	}
}

func TestSampleCatalogFileLoads(t *testing.T) {
	c, err := services.LoadCatalogYAML("catalog.yaml")
	if err != nil {
		t.Fatalf("load catalog.yaml: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("catalog.yaml has no items")
	}
}

type fakeTx struct {
	pgx.Tx
	execs      []string
	failOn     string
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return pgconn.CommandTag{}, errors.New("boom")
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeBeginner struct{ tx *fakeTx }

func (f fakeBeginner) Begin(context.Context) (pgx.Tx, error) { return f.tx, nil }

func TestRunMigrationIsAtomic(t *testing.T) {
	tests := []struct {
		name       string
		failOn     string
		wantErr    bool
		wantCommit bool
	}{
		{"applied and recorded", "", false, true},
		{"migration fails", "CREATE TABLE", true, false},
		{"record fails", "schema_migrations", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTx{failOn: tt.failOn}
			err := runMigration(context.Background(), fakeBeginner{tx}, "001_x.sql", "CREATE TABLE x (id INT)")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tx.committed != tt.wantCommit || tx.rolledBack == tt.wantCommit {
				t.Errorf("committed=%v rolledBack=%v", tx.committed, tx.rolledBack)
			}
		})
	}
}
