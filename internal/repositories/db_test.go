package repositories

import "testing"

func TestDialectRebind(t *testing.T) {
	query := `UPDATE places SET title = ?, price = ? WHERE id = ?`
	cases := []struct {
		dialect Dialect
		want    string
	}{
		{DialectPostgres, `UPDATE places SET title = $1, price = $2 WHERE id = $3`},
		{DialectMySQL, query},
		{DialectSQLite, query},
	}
	for _, tc := range cases {
		if got := tc.dialect.Rebind(query); got != tc.want {
			t.Fatalf("%s: Rebind = %q, want %q", tc.dialect, got, tc.want)
		}
	}
}

func TestParseDialect(t *testing.T) {
	for driver, want := range map[string]Dialect{
		"mariadb": DialectMySQL, "pgx": DialectPostgres, " SQLite3 ": DialectSQLite,
	} {
		got, err := ParseDialect(driver)
		if err != nil || got != want {
			t.Fatalf("ParseDialect(%q) = %q, %v; want %q", driver, got, err, want)
		}
	}
	if _, err := ParseDialect("oracle"); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}
