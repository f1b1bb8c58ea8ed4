// Package styletest provides test doubles for style application.
package styletest

import (
	"fmt"

	"github.com/go-drift/stylekit/pkg/graphics"
	"github.com/go-drift/stylekit/pkg/style"
)

// RecordingTarget is a style.Target that records every setter call in
// order and keeps the final value of each field. Use it to assert both
// what a chain applies and the order it applies it in.
//
// The zero value is ready to use. RecordingTarget is not safe for
// concurrent use; like a real host view it expects a single owner.
type RecordingTarget struct {
	// Calls lists every setter invocation in order, formatted like
	// "alpha=0.8" or "wrapInView".
	Calls []string

	Background      graphics.Drawable
	Foreground      graphics.Drawable
	OnClick         style.ClickHandler
	OnLongClick     style.LongClickHandler
	WrappedInView   bool
	ViewTag         any
	ViewTags        map[string]any
	OutlineProvider graphics.OutlineProvider
	Alpha           float64
	Elevation       float64

	// HasAlpha and HasElevation report whether the float fields were ever
	// set, distinguishing an applied zero from the zero value.
	HasAlpha     bool
	HasElevation bool
}

var _ style.Target = (*RecordingTarget)(nil)

func (t *RecordingTarget) record(format string, args ...any) {
	t.Calls = append(t.Calls, fmt.Sprintf(format, args...))
}

func (t *RecordingTarget) SetBackground(d graphics.Drawable) {
	t.Background = d
	t.record("background=%v", d)
}

func (t *RecordingTarget) SetForeground(d graphics.Drawable) {
	t.Foreground = d
	t.record("foreground=%v", d)
}

func (t *RecordingTarget) SetOnClick(h style.ClickHandler) {
	t.OnClick = h
	t.record("onClick")
}

func (t *RecordingTarget) SetOnLongClick(h style.LongClickHandler) {
	t.OnLongClick = h
	t.record("onLongClick")
}

func (t *RecordingTarget) SetWrapInView() {
	t.WrappedInView = true
	t.record("wrapInView")
}

func (t *RecordingTarget) SetViewTag(tag any) {
	t.ViewTag = tag
	t.record("viewTag=%v", tag)
}

func (t *RecordingTarget) SetViewTags(tags map[string]any) {
	t.ViewTags = tags
	t.record("viewTags(%d)", len(tags))
}

func (t *RecordingTarget) SetOutlineProvider(p graphics.OutlineProvider) {
	t.OutlineProvider = p
	t.record("outlineProvider=%v", p)
}

func (t *RecordingTarget) SetAlpha(alpha float64) {
	t.Alpha = alpha
	t.HasAlpha = true
	t.record("alpha=%g", alpha)
}

func (t *RecordingTarget) SetElevation(elevation float64) {
	t.Elevation = elevation
	t.HasElevation = true
	t.record("elevation=%g", elevation)
}
