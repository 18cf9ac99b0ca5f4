package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestExtractUpMigration(t *testing.T) {
	script := "-- +migrate Up\nCREATE TABLE a (id INT);\n-- +migrate Down\nDROP TABLE a;\n"
	if got := ExtractUpMigration(script); got != "\nCREATE TABLE a (id INT);\n" {
		t.Fatalf("unexpected up section %q", got)
	}
	if got := ExtractUpMigration("CREATE TABLE b (id INT);"); got != "CREATE TABLE b (id INT);" {
		t.Fatalf("script without markers should pass through, got %q", got)
	}
}

func TestSplitStatements(t *testing.T) {
	script := `
-- users first
CREATE TABLE users (id TEXT);

CREATE INDEX idx ON users(id);
-- trailing comment
`
	want := []string{"CREATE TABLE users (id TEXT)", "CREATE INDEX idx ON users(id)"}
	if diff := cmp.Diff(want, SplitStatements(script)); diff != "" {
		t.Fatalf("statements mismatch (-want +got):\n%s", diff)
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	if !IsAlreadyExistsError(errors.New(`table "users" already exists`)) {
		t.Fatal("expected already exists to be tolerated")
	}
	if IsAlreadyExistsError(errors.New("syntax error")) {
		t.Fatal("syntax errors must not be tolerated")
	}
}

func TestApplyMigrationsRunsEachFileOnce(t *testing.T) {
	ctx := context.Background()
	db, dialect, err := Open(ctx, "sqlite", "file:"+filepath.Join(t.TempDir(), "m.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	fsys := fstest.MapFS{
		"test/002_more.sql": {Data: []byte("-- +migrate Up\nALTER TABLE things ADD COLUMN name TEXT;\n-- +migrate Down\n")},
		"test/001_init.sql": {Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY);")},
		"test/README.md":    {Data: []byte("not a migration")},
	}

	applied, err := ApplyMigrations(ctx, db, dialect, fsys, "test")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"001_init.sql", "002_more.sql"}, applied); diff != "" {
		t.Fatalf("applied mismatch (-want +got):\n%s", diff)
	}

	applied, err = ApplyMigrations(ctx, db, dialect, fsys, "test")
	if err != nil {
		t.Fatal(err)
	}
	if len(applied) != 0 {
		t.Fatalf("second run applied %v", applied)
	}

	if _, err := db.ExecContext(ctx, `INSERT INTO things (id, name) VALUES ('1', 'x')`); err != nil {
		t.Fatalf("schema not in place: %v", err)
	}
}

func TestApplyMigrationsRequiresDB(t *testing.T) {
	var db *sql.DB
	if _, err := ApplyMigrations(context.Background(), db, DialectSQLite, fstest.MapFS{}, "."); err == nil {
		t.Fatal("expected an error without a database")
	}
}
