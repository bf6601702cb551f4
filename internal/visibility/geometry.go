package visibility

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is an axis-aligned box in host units (pixels in a browser, cells in a
// terminal).
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns the lower edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Right returns the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Area returns Width*Height, or 0 for inverted boxes.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// intersect returns the overlap of r and o and whether they touch at all.
// Edge-adjacent boxes touch with a zero-area overlap.
func (r Rect) intersect(o Rect) (Rect, bool) {
	top := max(r.Top, o.Top)
	left := max(r.Left, o.Left)
	bottom := min(r.Bottom(), o.Bottom())
	right := min(r.Right(), o.Right())
	if bottom < top || right < left {
		return Rect{}, false
	}
	return Rect{Top: top, Left: left, Width: right - left, Height: bottom - top}, true
}

// Length is one root-margin component.
type Length struct {
	Value   float64
	Percent bool
}

func (l Length) resolve(basis float64) float64 {
	if l.Percent {
		return basis * l.Value / 100
	}
	return l.Value
}

func (l Length) String() string {
	unit := "px"
	if l.Percent {
		unit = "%"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + unit
}

// Margin grows (positive) or shrinks (negative) the viewport before
// intersections are computed.
type Margin struct {
	Top, Right, Bottom, Left Length
}

// ParseMargin reads CSS margin shorthand with one to four px or % lengths.
// Unitless zero is accepted.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Margin{}, nil
	}
	if len(fields) > 4 {
		return Margin{}, fmt.Errorf("root margin %q: expected at most 4 lengths", s)
	}

	lengths := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("root margin %q: %w", s, err)
		}
		lengths[i] = l
	}

	switch len(lengths) {
	case 1:
		return Margin{lengths[0], lengths[0], lengths[0], lengths[0]}, nil
	case 2:
		return Margin{lengths[0], lengths[1], lengths[0], lengths[1]}, nil
	case 3:
		return Margin{lengths[0], lengths[1], lengths[2], lengths[1]}, nil
	default:
		return Margin{lengths[0], lengths[1], lengths[2], lengths[3]}, nil
	}
}

func parseLength(s string) (Length, error) {
	var l Length
	num := s
	switch {
	case strings.HasSuffix(s, "%"):
		l.Percent = true
		num = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q", s)
	}
	if !l.Percent && !strings.HasSuffix(s, "px") && v != 0 {
		return Length{}, fmt.Errorf("length %q needs a px or %% unit", s)
	}
	l.Value = v
	return l, nil
}

// Apply returns root adjusted by the margin. Vertical percentages resolve
// against the root height, horizontal ones against its width.
func (m Margin) Apply(root Rect) Rect {
	top := m.Top.resolve(root.Height)
	bottom := m.Bottom.resolve(root.Height)
	left := m.Left.resolve(root.Width)
	right := m.Right.resolve(root.Width)

	return Rect{
		Top:    root.Top - top,
		Left:   root.Left - left,
		Width:  root.Width + left + right,
		Height: root.Height + top + bottom,
	}
}

func (m Margin) String() string {
	return strings.Join([]string{m.Top.String(), m.Right.String(), m.Bottom.String(), m.Left.String()}, " ")
}
