package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandStructure(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != "sortable" {
		t.Errorf("root.Use = %q, want %q", root.Use, "sortable")
	}

	want := map[string]bool{"demo": false, "check": false, "completion": false}
	for _, cmd := range root.Commands() {
		name := strings.Fields(cmd.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}
}

func TestCheckCommandValidPreset(t *testing.T) {
	path := writePreset(t, `
[sortable]
axis = "y"
press_delay_ms = 150
`)

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"check", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out.String(), "is valid") {
		t.Errorf("output missing validity line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "press_delay") {
		t.Errorf("output missing resolved options:\n%s", out.String())
	}
}

func TestCheckCommandInvalidPreset(t *testing.T) {
	path := writePreset(t, "[sortable]\ndistance = 5\npress_delay_ms = 100\n")

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"check", path})

	if err := root.Execute(); err == nil {
		t.Fatal("check accepted a conflicting preset")
	}
}
