package sortable

import (
	"math"
	"strconv"
	"strings"

	"github.com/Nuclino/sortable/pkg/errors"
	"github.com/Nuclino/sortable/pkg/geom"
)

// LockOffset is one parsed lock offset: a pixel distance or a percentage of
// the dragged element's size.
type LockOffset struct {
	Value   float64
	Percent bool
}

// ParseLockOffset parses a lock offset string. Accepted forms are a bare
// number ("10"), a pixel suffix ("10px"), and a percent suffix ("50%").
// Non-finite values and any other form are configuration errors.
func ParseLockOffset(raw string) (LockOffset, error) {
	s := strings.TrimSpace(raw)
	percent := false
	switch {
	case strings.HasSuffix(s, "%"):
		percent = true
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return LockOffset{}, errors.New(errors.ErrCodeInvalidLockOffset,
			"malformed lock offset %q (want e.g. \"10px\", \"50%%\", or a number)", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return LockOffset{}, errors.New(errors.ErrCodeInvalidLockOffset,
			"lock offset %q is not finite", raw)
	}
	return LockOffset{Value: v, Percent: percent}, nil
}

// Pixels resolves the offset against the dragged element's extents,
// returning a per-axis pixel offset. Percentages scale with the respective
// axis extent.
func (o LockOffset) Pixels(size geom.Size) geom.Point {
	if o.Percent {
		return geom.Point{
			X: o.Value * size.Width / 100,
			Y: o.Value * size.Height / 100,
		}
	}
	return geom.Point{X: o.Value, Y: o.Value}
}

// parseLockOffsets resolves the configured lock offset list into a
// (min, max) pair. An empty list defaults to 50% on both ends; a single
// entry applies to both; a pair maps to (min, max).
func parseLockOffsets(raw []string) (LockOffset, LockOffset, error) {
	switch len(raw) {
	case 0:
		o := LockOffset{Value: 50, Percent: true}
		return o, o, nil
	case 1:
		o, err := ParseLockOffset(raw[0])
		if err != nil {
			return LockOffset{}, LockOffset{}, err
		}
		return o, o, nil
	case 2:
		lo, err := ParseLockOffset(raw[0])
		if err != nil {
			return LockOffset{}, LockOffset{}, err
		}
		hi, err := ParseLockOffset(raw[1])
		if err != nil {
			return LockOffset{}, LockOffset{}, err
		}
		return lo, hi, nil
	}
	return LockOffset{}, LockOffset{}, errors.New(errors.ErrCodeInvalidLockOffset,
		"lock offset takes at most a [min, max] pair, got %d values", len(raw))
}
