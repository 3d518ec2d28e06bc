package cli

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Nuclino/sortable/pkg/errors"
	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/sortable"
)

// =============================================================================
// Preset Schema
// =============================================================================

// Preset is the on-disk configuration for a demo run: a [sortable] table
// mapping onto engine options and a [demo] table describing the item set.
type Preset struct {
	Sortable PresetOptions `toml:"sortable"`
	Demo     PresetDemo    `toml:"demo"`
}

// PresetOptions mirrors sortable.Options in TOML-friendly form. Pointer
// fields distinguish "absent" from "zero" so presets only override what they
// mention.
type PresetOptions struct {
	Axis                       string   `toml:"axis"`
	LockAxis                   string   `toml:"lock_axis"`
	Distance                   float64  `toml:"distance"`
	PressDelayMS               int      `toml:"press_delay_ms"`
	PressThreshold             *float64 `toml:"press_threshold"`
	LockToContainerEdges       bool     `toml:"lock_to_container_edges"`
	LockOffset                 []string `toml:"lock_offset"`
	TransitionMS               *int     `toml:"transition_ms"`
	HelperClass                string   `toml:"helper_class"`
	HideGhost                  *bool    `toml:"hide_ghost"`
	UseDragHandle              bool     `toml:"use_drag_handle"`
	UseWindowAsScrollContainer bool     `toml:"use_window_as_scroll_container"`
}

// PresetDemo configures the demo item set.
type PresetDemo struct {
	Items   []string `toml:"items"`
	Columns int      `toml:"columns"`
}

// defaultItems seeds the demo when a preset names none.
var defaultItems = []string{
	"Inbox", "Today", "Upcoming", "Someday", "Archive", "Trash",
}

// =============================================================================
// Loading
// =============================================================================

// LoadPreset reads and validates a preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOption, err, "read preset %s", path)
	}

	var p Preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOption, err, "parse preset %s", path)
	}
	if _, err := p.Options(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Options resolves the preset into validated engine options.
func (p *Preset) Options() (sortable.Options, error) {
	opts := sortable.DefaultOptions()

	axis, err := geom.ParseAxis(p.Sortable.Axis)
	if err != nil {
		return sortable.Options{}, errors.Wrap(errors.ErrCodeInvalidAxis, err, "preset axis")
	}
	opts.Axis = axis
	opts.LockAxis = p.Sortable.LockAxis
	opts.Distance = p.Sortable.Distance
	opts.PressDelay = time.Duration(p.Sortable.PressDelayMS) * time.Millisecond
	opts.LockToContainerEdges = p.Sortable.LockToContainerEdges
	opts.HelperClass = p.Sortable.HelperClass
	opts.UseDragHandle = p.Sortable.UseDragHandle
	opts.UseWindowAsScrollContainer = p.Sortable.UseWindowAsScrollContainer

	if len(p.Sortable.LockOffset) > 0 {
		opts.LockOffset = p.Sortable.LockOffset
	}
	if p.Sortable.PressThreshold != nil {
		opts.PressThreshold = *p.Sortable.PressThreshold
	}
	if p.Sortable.TransitionMS != nil {
		opts.TransitionDuration = time.Duration(*p.Sortable.TransitionMS) * time.Millisecond
	}
	if p.Sortable.HideGhost != nil {
		opts.HideSortableGhost = *p.Sortable.HideGhost
	}

	if err := opts.Validate(); err != nil {
		return sortable.Options{}, err
	}
	return opts, nil
}

// Items returns the demo item labels, falling back to the default set.
func (p *Preset) Items() []string {
	if len(p.Demo.Items) > 0 {
		return p.Demo.Items
	}
	return defaultItems
}

// Columns returns the grid column count for two-axis presets. Zero means a
// plain list.
func (p *Preset) Columns() int {
	if p.Demo.Columns > 0 {
		return p.Demo.Columns
	}
	return 0
}
