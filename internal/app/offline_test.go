package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"aadhira_hotel/internal/app"
)

func TestOfflineTable_OrderAndDefault(t *testing.T) {
	tbl, err := app.ParseOfflineTable([]byte(`
room: rooms reply
reservation: reservation reply
default: fallback reply
`))
	if err != nil {
		t.Fatal(err)
	}
	// both keys occur; the first in file order wins
	if got, ok := tbl.Lookup("Is a ROOM reservation possible?"); !ok || got != "rooms reply" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	if got, ok := tbl.Lookup("nothing relevant"); ok || got != "fallback reply" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	// "default" is only a fallback, never a keyword
	if got, ok := tbl.Lookup("what is the default?"); ok || got != "fallback reply" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	if n := len(tbl.Entries()); n != 2 {
		t.Fatalf("expected 2 entries, got %d", n)
	}
}

func TestOfflineTable_Invalid(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"no default": {"pool: open daily\n", app.ErrOfflineNoDefault},
		"duplicate":  {"pool: a\nPool: b\ndefault: c\n", app.ErrOfflineMalformed},
		"sequence":   {"- a\n- b\n", app.ErrOfflineMalformed},
		"nested":     {"pool:\n  hours: 7\ndefault: c\n", app.ErrOfflineMalformed},
		"empty":      {"pool: ''\ndefault: c\n", app.ErrOfflineMalformed},
		"garbage":    {"pool: [unclosed\n", app.ErrOfflineMalformed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := app.ParseOfflineTable([]byte(tc.in))
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadOfflineTable(t *testing.T) {
	tbl, err := app.LoadOfflineTable("")
	if err != nil {
		t.Fatalf("embedded table: %v", err)
	}
	if got, ok := tbl.Lookup("where do I park? parking?"); !ok || got == "" {
		t.Fatalf("embedded parking entry missing")
	}
	if got, ok := tbl.Lookup("zzz"); ok || got == "" {
		t.Fatal("embedded default missing")
	}

	path := filepath.Join(t.TempDir(), "offline.yaml")
	if err := os.WriteFile(path, []byte("gym: open 24h\ndefault: hi\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	tbl, err = app.LoadOfflineTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := tbl.Lookup("gym hours"); got != "open 24h" {
		t.Fatalf("got %q", got)
	}

	if _, err := app.LoadOfflineTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
