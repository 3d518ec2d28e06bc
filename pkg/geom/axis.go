package geom

import "fmt"

// Axis selects which translation axes a sortable container operates on.
type Axis int

const (
	// AxisY is a vertical list (the default).
	AxisY Axis = iota
	// AxisX is a horizontal list.
	AxisX
	// AxisXY is a grid with reflow on both axes.
	AxisXY
)

// ParseAxis converts the configuration strings "x", "y", and "xy" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y", "":
		return AxisY, nil
	case "xy":
		return AxisXY, nil
	}
	return AxisY, fmt.Errorf("unknown axis %q (want \"x\", \"y\", or \"xy\")", s)
}

// X reports whether horizontal translation is enabled.
func (a Axis) X() bool { return a == AxisX || a == AxisXY }

// Y reports whether vertical translation is enabled.
func (a Axis) Y() bool { return a == AxisY || a == AxisXY }

// String returns the configuration form of the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisXY:
		return "xy"
	default:
		return "y"
	}
}
