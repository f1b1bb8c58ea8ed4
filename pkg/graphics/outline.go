package graphics

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Outline describes the silhouette a styled component presents to the host
// view for clipping and shadow casting.
type Outline struct {
	// Bounds is the outline rectangle in the component's local coordinates.
	Bounds Rect
	// CornerRadius rounds the outline corners. Zero means sharp corners.
	CornerRadius float64
	// Alpha is the outline opacity used for shadow strength (0-1).
	Alpha float64
}

// OutlineProvider computes a component's outline from its laid-out size.
//
// Providers are queried whenever the component's size changes, so they
// should be cheap and must not retain the sizes they are given.
type OutlineProvider interface {
	Outline(size Size) Outline
}

// RoundedOutline is an OutlineProvider producing a rounded rectangle that
// matches the component's bounds.
type RoundedOutline struct {
	CornerRadius float64
}

func (p RoundedOutline) Outline(size Size) Outline {
	return Outline{
		Bounds:       RectFromLTWH(0, 0, size.Width, size.Height),
		CornerRadius: p.CornerRadius,
		Alpha:        1,
	}
}
