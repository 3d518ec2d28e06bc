package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host/memhost"
	"github.com/Nuclino/sortable/pkg/registry"
	"github.com/Nuclino/sortable/pkg/sortable"
)

const (
	// demoTick pumps the in-memory clock so press-delay timers and
	// autoscroll run inside the bubbletea event loop.
	demoTick = 50 * time.Millisecond

	// demoHeaderLines is the number of view lines above the item area;
	// mouse rows below it map directly onto document-space units.
	demoHeaderLines = 3

	demoListWidth = 36
	demoCellWidth = 14
)

// demoCommand creates the demo command running the interactive TUI.
func (c *CLI) demoCommand() *cobra.Command {
	var presetPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive drag-to-reorder demo",
		Long: `Run the interactive drag-to-reorder demo.

Press and hold an item with the mouse, drag it across its siblings, and
release to commit the new order. Engine behavior is configured through a
TOML preset file; without one, a default vertical list is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := &Preset{}
			if presetPath != "" {
				p, err := LoadPreset(presetPath)
				if err != nil {
					return err
				}
				preset = p
			}
			return c.runDemo(cmd, preset)
		},
	}

	cmd.Flags().StringVarP(&presetPath, "preset", "p", "", "TOML preset file")

	return cmd
}

func (c *CLI) runDemo(cmd *cobra.Command, preset *Preset) error {
	m, err := newDemoModel(c, preset)
	if err != nil {
		return err
	}
	defer m.zones.Close()

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, StyleTitle.Render("Final order"))
	for i, label := range m.labels {
		fmt.Fprintf(out, "  %2d. %s\n", i+1, StyleValue.Render(label))
	}
	fmt.Fprintln(out, StyleDim.Render(fmt.Sprintf("%d commit(s)", m.commits)))
	return nil
}

// =============================================================================
// Model
// =============================================================================

type demoTickMsg time.Time

// demoModel is the bubbletea model driving one sortable container. Mouse
// events are translated to document-space pointer events and fed straight
// into the gesture state machine; the in-memory clock is pumped on a fixed
// tick.
type demoModel struct {
	cli   *CLI
	zones *zone.Manager

	surface   *memhost.Surface
	manager   *registry.Manager
	container *memhost.Node
	sorter    *sortable.Sorter

	// nodes, refs, and labels share ordering: position i is the item
	// currently at index i.
	nodes  []*memhost.Node
	refs   []*registry.Ref
	labels []string

	columns int // 0 for a single row or column
	axis    geom.Axis

	commits    int
	lastCommit *sortable.Commit
}

func newDemoModel(c *CLI, preset *Preset) (*demoModel, error) {
	opts, err := preset.Options()
	if err != nil {
		return nil, err
	}

	labels := preset.Items()
	columns := preset.Columns()
	if opts.Axis == geom.AxisXY && columns == 0 {
		columns = 3
	}

	m := &demoModel{
		cli:     c,
		zones:   zone.New(),
		surface: memhost.NewSurface(geom.Size{Width: 400, Height: 200}, geom.Size{Width: 400, Height: 200}),
		manager: registry.NewManager(),
		labels:  append([]string(nil), labels...),
		columns: columns,
		axis:    opts.Axis,
	}

	m.container = m.surface.NewNode("container", "ul").SetBounds(m.containerBounds(len(labels)))
	m.surface.Root().AppendChild(m.container)

	for i := range m.labels {
		node := m.surface.NewNode(fmt.Sprintf("item-%d", i), "li").SetBounds(m.slot(i))
		m.container.AppendChild(node)
		ref := &registry.Ref{Element: node, Index: i}
		m.manager.Add(registry.DefaultCollection, ref)
		m.nodes = append(m.nodes, node)
		m.refs = append(m.refs, ref)
	}

	opts.Logger = c.Logger
	opts.OnSortEnd = m.applyCommit

	sorter, err := sortable.New(m.surface, m.manager, m.container, opts)
	if err != nil {
		return nil, err
	}
	m.sorter = sorter
	return m, nil
}

// slot returns the document-space bounds of index i. One terminal cell is
// one document unit.
func (m *demoModel) slot(i int) geom.Rect {
	switch {
	case m.columns > 0:
		return geom.Rect{
			X:     float64(i%m.columns) * demoCellWidth,
			Y:     float64(i / m.columns),
			Width: demoCellWidth, Height: 1,
		}
	case m.axis == geom.AxisX:
		return geom.Rect{X: float64(i) * demoCellWidth, Width: demoCellWidth, Height: 1}
	default:
		return geom.Rect{Y: float64(i), Width: demoListWidth, Height: 1}
	}
}

func (m *demoModel) containerBounds(n int) geom.Rect {
	switch {
	case m.columns > 0:
		rows := (n + m.columns - 1) / m.columns
		return geom.Rect{Width: float64(m.columns) * demoCellWidth, Height: float64(rows)}
	case m.axis == geom.AxisX:
		return geom.Rect{Width: float64(n) * demoCellWidth, Height: 1}
	default:
		return geom.Rect{Width: demoListWidth, Height: float64(n)}
	}
}

// applyCommit reorders the model's item arrays and re-lays the slots out.
func (m *demoModel) applyCommit(c sortable.Commit) {
	m.commits++
	m.lastCommit = &c

	if c.NewIndex != c.OldIndex {
		m.labels = geom.Move(m.labels, c.OldIndex, c.NewIndex)
		m.nodes = geom.Move(m.nodes, c.OldIndex, c.NewIndex)
		m.refs = geom.Move(m.refs, c.OldIndex, c.NewIndex)
	}
	for i, node := range m.nodes {
		node.SetBounds(m.slot(i))
		m.refs[i].Index = i
	}
}

// =============================================================================
// tea.Model
// =============================================================================

func (m *demoModel) Init() tea.Cmd {
	return demoTickCmd()
}

func demoTickCmd() tea.Cmd {
	return tea.Tick(demoTick, func(t time.Time) tea.Msg {
		return demoTickMsg(t)
	})
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case demoTickMsg:
		m.surface.Advance(demoTick)
		return m, demoTickCmd()

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

// docPos maps a terminal mouse position to document space, targeting the
// center of the hovered cell.
func (m *demoModel) docPos(msg tea.MouseMsg) geom.Point {
	return geom.Point{
		X: float64(msg.X) + 0.5,
		Y: float64(msg.Y-demoHeaderLines) + 0.5,
	}
}

func (m *demoModel) handleMouse(msg tea.MouseMsg) {
	pos := m.docPos(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		button := sortable.ButtonLeft
		if msg.Button == tea.MouseButtonRight {
			button = sortable.ButtonRight
		}
		var target *memhost.Node
		for _, node := range m.nodes {
			if m.zones.Get(node.ID()).InBounds(msg) {
				target = node
				break
			}
		}
		if target == nil {
			return
		}
		m.sorter.HandlePress(sortable.PointerEvent{Position: pos, Target: target, Button: button})

	case tea.MouseActionMotion:
		m.sorter.HandleMove(sortable.PointerEvent{Position: pos})

	case tea.MouseActionRelease:
		m.sorter.HandleRelease(sortable.PointerEvent{Position: pos})
	}
}

// =============================================================================
// View
// =============================================================================

// demoEntry is one item resolved to its effective document position for
// rendering.
type demoEntry struct {
	label   string
	id      string
	pos     geom.Point
	dragged bool
	shifted bool
	ghost   bool
}

func (m *demoModel) entries() []demoEntry {
	activeRef := m.manager.ActiveRef()

	var sess sortable.SessionInfo
	if info, err := m.sorter.Session(); err == nil {
		sess = info
	}

	out := make([]demoEntry, 0, len(m.nodes))
	for i, node := range m.nodes {
		e := demoEntry{
			label: m.labels[i],
			id:    node.ID(),
			pos:   node.Bounds().Origin(),
		}
		switch {
		case activeRef != nil && activeRef.Element == node:
			e.pos = e.pos.Add(sess.Translate)
			e.dragged = true
			e.ghost = !node.Visible()
		default:
			e.pos = e.pos.Add(m.refs[i].Translate)
			e.shifted = !m.refs[i].Translate.IsZero()
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].pos.Y != out[b].pos.Y {
			return out[a].pos.Y < out[b].pos.Y
		}
		return out[a].pos.X < out[b].pos.X
	})
	return out
}

func (m *demoModel) renderEntry(e demoEntry, width int) string {
	style := styleItem
	switch {
	case e.dragged && e.ghost:
		style = styleGhost
	case e.dragged:
		style = styleHelper
	case e.shifted:
		style = styleShifted
	}
	cell := fmt.Sprintf(" %-*s", width-1, e.label)
	return m.zones.Mark(e.id, style.Render(cell))
}

func (m *demoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(StyleDim.Render("  drag items to reorder"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n\n")

	entries := m.entries()
	if m.columns > 0 || m.axis == geom.AxisX {
		cols := m.columns
		if cols == 0 {
			cols = len(entries)
		}
		for start := 0; start < len(entries); start += cols {
			end := start + cols
			if end > len(entries) {
				end = len(entries)
			}
			cells := make([]string, 0, cols)
			for _, e := range entries[start:end] {
				cells = append(cells, m.renderEntry(e, demoCellWidth))
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			b.WriteString("\n")
		}
	} else {
		for _, e := range entries {
			b.WriteString(m.renderEntry(e, demoListWidth))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.lastCommit != nil {
		b.WriteString(styleLabel.Render(
			fmt.Sprintf("last commit: %d -> %d  (%d total)",
				m.lastCommit.OldIndex, m.lastCommit.NewIndex, m.commits)))
	} else {
		b.WriteString(styleLabel.Render("no commits yet"))
	}
	b.WriteString("\n")

	return m.zones.Scan(b.String())
}
