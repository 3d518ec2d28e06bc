package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Nuclino/sortable/pkg/errors"
	"github.com/Nuclino/sortable/pkg/geom"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
[sortable]
axis = "xy"
distance = 4
press_threshold = 0
lock_to_container_edges = true
lock_offset = ["0%", "100%"]
transition_ms = 0
hide_ghost = false

[demo]
items = ["one", "two", "three", "four"]
columns = 2
`)

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}

	opts, err := p.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Axis != geom.AxisXY {
		t.Errorf("Axis = %v, want xy", opts.Axis)
	}
	if opts.Distance != 4 {
		t.Errorf("Distance = %v, want 4", opts.Distance)
	}
	if opts.PressThreshold != 0 {
		t.Errorf("PressThreshold = %v, want explicit 0", opts.PressThreshold)
	}
	if !opts.LockToContainerEdges {
		t.Error("LockToContainerEdges = false")
	}
	if len(opts.LockOffset) != 2 || opts.LockOffset[1] != "100%" {
		t.Errorf("LockOffset = %v, want [0%%, 100%%]", opts.LockOffset)
	}
	if opts.TransitionDuration != 0 {
		t.Errorf("TransitionDuration = %v, want explicit 0", opts.TransitionDuration)
	}
	if opts.HideSortableGhost {
		t.Error("HideSortableGhost = true, want explicit false")
	}
	if got := p.Items(); len(got) != 4 || got[0] != "one" {
		t.Errorf("Items = %v", got)
	}
	if p.Columns() != 2 {
		t.Errorf("Columns = %d, want 2", p.Columns())
	}
}

func TestPresetDefaults(t *testing.T) {
	p := &Preset{}

	opts, err := p.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Axis != geom.AxisY {
		t.Errorf("Axis = %v, want y", opts.Axis)
	}
	if opts.PressThreshold != 5 {
		t.Errorf("PressThreshold = %v, want default 5", opts.PressThreshold)
	}
	if opts.TransitionDuration != 300*time.Millisecond {
		t.Errorf("TransitionDuration = %v, want default 300ms", opts.TransitionDuration)
	}
	if !opts.HideSortableGhost {
		t.Error("HideSortableGhost = false, want default true")
	}
	if len(p.Items()) == 0 {
		t.Error("Items() empty, want default set")
	}
	if p.Columns() != 0 {
		t.Errorf("Columns = %d, want 0", p.Columns())
	}
}

func TestLoadPresetErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.Code
	}{
		{
			name:     "conflicting thresholds",
			content:  "[sortable]\ndistance = 5\npress_delay_ms = 200\n",
			wantCode: errors.ErrCodeConflictingOptions,
		},
		{
			name:     "bad axis",
			content:  "[sortable]\naxis = \"diagonal\"\n",
			wantCode: errors.ErrCodeInvalidAxis,
		},
		{
			name:     "bad lock offset",
			content:  "[sortable]\nlock_offset = [\"wide\"]\n",
			wantCode: errors.ErrCodeInvalidLockOffset,
		},
		{
			name:     "not toml",
			content:  "{\"axis\": \"y\"}",
			wantCode: errors.ErrCodeInvalidOption,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writePreset(t, tc.content)
			_, err := LoadPreset(path)
			if err == nil {
				t.Fatal("LoadPreset = nil error")
			}
			if got := errors.GetCode(err); got != tc.wantCode {
				t.Errorf("GetCode(err) = %v, want %v", got, tc.wantCode)
			}
		})
	}
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("LoadPreset = nil error for missing file")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidOption {
		t.Errorf("GetCode(err) = %v, want %v", got, errors.ErrCodeInvalidOption)
	}
}
