package main

import "testing"

func TestParseStorage(t *testing.T) {
	for _, name := range []string{"inmem", "file", "diskv"} {
		dsn := ""
		if name != "inmem" {
			dsn = t.TempDir()
		}
		s, err := parseStorage(name, dsn)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s.inventory == nil {
			t.Errorf("%s: nil inventory storage", name)
		}
	}
	if _, err := parseStorage("bogus", ""); err == nil {
		t.Error("expected error for unknown storage")
	}
}
