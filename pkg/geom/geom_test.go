package geom

import (
	"reflect"
	"testing"
)

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		top    float64
		right  float64
		bottom float64
		left   float64
	}{
		{
			name: "positive extents",
			rect: Rect{X: 10, Y: 20, Width: 30, Height: 40},
			top:  20, right: 40, bottom: 60, left: 10,
		},
		{
			name: "negative width",
			rect: Rect{X: 10, Y: 20, Width: -30, Height: 40},
			top:  20, right: 10, bottom: 60, left: -20,
		},
		{
			name: "negative height",
			rect: Rect{X: 10, Y: 20, Width: 30, Height: -40},
			top:  -20, right: 40, bottom: 20, left: 10,
		},
		{
			name: "zero rect",
			rect: Rect{},
			top:  0, right: 0, bottom: 0, left: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Top(); got != tt.top {
				t.Errorf("Top() = %v, want %v", got, tt.top)
			}
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
			if got := tt.rect.Left(); got != tt.left {
				t.Errorf("Left() = %v, want %v", got, tt.left)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	if !r.Contains(Point{X: 0, Y: 0}) {
		t.Error("Contains(top-left) = false, want true")
	}
	if r.Contains(Point{X: 10, Y: 10}) {
		t.Error("Contains(bottom-right) = true, want false")
	}
	if !r.Contains(Point{X: 5, Y: 9.9}) {
		t.Error("Contains(interior) = false, want true")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		from, to int
		want     []int
	}{
		{name: "forward", in: []int{0, 1, 2, 3, 4}, from: 1, to: 3, want: []int{0, 2, 3, 1, 4}},
		{name: "backward", in: []int{0, 1, 2, 3, 4}, from: 3, to: 1, want: []int{0, 3, 1, 2, 4}},
		{name: "same index", in: []int{0, 1, 2}, from: 1, to: 1, want: []int{0, 1, 2}},
		{name: "to end", in: []int{0, 1, 2}, from: 0, to: 2, want: []int{1, 2, 0}},
		{name: "out of range", in: []int{0, 1, 2}, from: 0, to: 5, want: []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Move(tt.in, tt.from, tt.to)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Move(%v, %d, %d) = %v, want %v", tt.in, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestInsetsSpans(t *testing.T) {
	i := Insets{Top: 4, Right: 6, Bottom: 10, Left: 2}

	if got := i.SpanX(); got != 8 {
		t.Errorf("SpanX() = %v, want 8", got)
	}
	// Vertical margins collapse: the larger edge wins.
	if got := i.SpanY(); got != 10 {
		t.Errorf("SpanY() = %v, want 10", got)
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{in: "x", want: AxisX},
		{in: "y", want: AxisY},
		{in: "", want: AxisY},
		{in: "xy", want: AxisXY},
		{in: "z", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAxis(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAxis(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAxisEnablement(t *testing.T) {
	if AxisX.Y() || !AxisX.X() {
		t.Error("AxisX should enable x only")
	}
	if AxisY.X() || !AxisY.Y() {
		t.Error("AxisY should enable y only")
	}
	if !AxisXY.X() || !AxisXY.Y() {
		t.Error("AxisXY should enable both axes")
	}
}
