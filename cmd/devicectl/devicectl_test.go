package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/micromdm/nanodevice/device"

	"github.com/fatih/color"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	cmd := newRootCmd("test")
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestResolve(t *testing.T) {
	out, err := run(t, "", "resolve", "iPhone14,2", "banana")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"iPhone 13 Pro", "A15 Bionic", "lidar", "banana"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestResolveJSONSimulator(t *testing.T) {
	out, err := run(t, "", "resolve", "--json", "--simulator-model", "iPad13,1", "arm64")
	if err != nil {
		t.Fatal(err)
	}
	var infos []device.Info
	if err := json.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 {
		t.Fatalf("have: %d infos, want: 1", len(infos))
	}
	if have, want := infos[0].Name, "Simulator (iPad Air (4th generation))"; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
}

func TestResolveBadPlatform(t *testing.T) {
	if _, err := run(t, "", "resolve", "--platform", "palmos", "iPhone14,2"); err == nil {
		t.Error("expected error")
	}
}

func TestCatalogGroup(t *testing.T) {
	out, err := run(t, "", "catalog", "--group", "vision")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Apple Vision Pro") {
		t.Errorf("expected Apple Vision Pro in output:\n%s", out)
	}
	if _, err = run(t, "", "catalog", "--group", "toasters"); err == nil {
		t.Error("expected error for unknown group")
	}
}

func TestGroups(t *testing.T) {
	out, err := run(t, "", "groups")
	if err != nil {
		t.Fatal(err)
	}
	if have, want := strings.Count(out, "\n"), len(device.GroupNames()); have != want {
		t.Errorf("lines: have: %v, want: %v", have, want)
	}
}

func TestBatteryCompare(t *testing.T) {
	for _, test := range []struct {
		a, b string
		want string
	}{
		{"charging:40", "unplugged:80", "charging:40 < unplugged:80"},
		{"full", "charging:100", "full > charging:100"},
		{"charging:50", "unplugged:50", "ordered equally but not equal"},
	} {
		out, err := run(t, "", "battery", "compare", test.a, test.b)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, test.want) {
			t.Errorf("expected %q in output: %q", test.want, out)
		}
	}
	if _, err := run(t, "", "battery", "compare", "empty", "full"); err == nil {
		t.Error("expected error")
	}
}

func TestCPUCompare(t *testing.T) {
	out, err := run(t, "", "cpu", "compare", "A15 Bionic", "M1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<") {
		t.Errorf("expected A15 Bionic < M1: %q", out)
	}
}

func TestInventory(t *testing.T) {
	doc, err := os.ReadFile("testdata/inventory.json")
	if err != nil {
		t.Fatal(err)
	}
	rows, err := parseInventory(doc, device.NewResolver(device.WithLookupEnv(nil)))
	if err != nil {
		t.Fatal(err)
	}
	if have, want := len(rows), 3; have != want {
		t.Fatalf("rows: have: %v, want: %v", have, want)
	}
	for i, want := range []string{"iPhone 13 Pro", "iPad99,9", "Simulator (iOS)"} {
		if have := rows[i].Name; have != want {
			t.Errorf("row %d: have: %v, want: %v", i, have, want)
		}
	}

	out, err := run(t, string(doc), "inventory", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "stored as iPhone 12") {
		t.Errorf("expected stale stored model in output:\n%s", out)
	}

	if _, err := parseInventory([]byte("[1, 2]"), device.NewResolver()); err == nil {
		t.Error("expected error for non-object")
	}
}
