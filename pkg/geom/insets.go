package geom

// Insets describes the margins around an element, one value per edge.
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// SpanX returns the combined horizontal margin.
func (i Insets) SpanX() float64 {
	return i.Left + i.Right
}

// SpanY returns the effective vertical margin between stacked siblings.
// Adjacent vertical margins collapse, so the larger of the two wins rather
// than their sum.
func (i Insets) SpanY() float64 {
	if i.Top > i.Bottom {
		return i.Top
	}
	return i.Bottom
}
