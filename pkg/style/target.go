package style

import "github.com/go-drift/stylekit/pkg/graphics"

// ClickHandler is invoked when the styled component is clicked.
type ClickHandler func()

// LongClickHandler is invoked on a long click. It reports whether the
// event was consumed.
type LongClickHandler func() bool

// Target is the mutable object a chain's assignments are applied to,
// typically a host view or a mounted component.
//
// Target exposes one setter per style field. Setters take effect
// immediately and unconditionally; conflict resolution between repeated
// assignments is the chain's concern, not the target's.
type Target interface {
	// SetBackground sets the drawable painted behind the component's
	// content. A nil drawable clears the background.
	SetBackground(d graphics.Drawable)

	// SetForeground sets the drawable painted over the component's
	// content. A nil drawable clears the foreground.
	SetForeground(d graphics.Drawable)

	// SetOnClick registers the component's click handler.
	SetOnClick(h ClickHandler)

	// SetOnLongClick registers the component's long-click handler.
	SetOnLongClick(h LongClickHandler)

	// SetWrapInView forces the component to mount inside its own host view
	// even when it could otherwise draw directly into its parent.
	SetWrapInView()

	// SetViewTag sets the host view's unkeyed tag.
	SetViewTag(tag any)

	// SetViewTags sets the host view's keyed tags.
	SetViewTags(tags map[string]any)

	// SetOutlineProvider sets the provider that computes the component's
	// clipping and shadow outline.
	SetOutlineProvider(p graphics.OutlineProvider)

	// SetAlpha sets the component's opacity, from 0 (transparent) to 1.
	SetAlpha(alpha float64)

	// SetElevation sets the component's elevation in pixels, which controls
	// shadow casting and stacking order.
	SetElevation(elevation float64)
}
