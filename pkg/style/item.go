package style

import (
	"fmt"

	"github.com/go-drift/stylekit/pkg/errors"
	"github.com/go-drift/stylekit/pkg/graphics"
)

// Item is a single style attribute assignment: a field identifier paired
// with the value to assign.
//
// Item is a closed sum. Its only implementations are ObjectItem and
// FloatItem; the unexported method keeps the set closed so every item a
// chain can hold is covered by the dispatch in this package.
type Item interface {
	// apply performs this item's assignment on t.
	apply(t Target)

	// String describes the assignment for debug output.
	String() string
}

// ObjectField identifies an object-valued style field.
type ObjectField int

const (
	// FieldBackground is the background drawable (value: graphics.Drawable).
	FieldBackground ObjectField = iota
	// FieldForeground is the foreground drawable (value: graphics.Drawable).
	FieldForeground
	// FieldOnClick is the click handler (value: ClickHandler).
	FieldOnClick
	// FieldOnLongClick is the long-click handler (value: LongClickHandler).
	FieldOnLongClick
	// FieldWrapInView forces mounting in a host view (value: ignored).
	FieldWrapInView
	// FieldViewTag is the host view's unkeyed tag (value: any).
	FieldViewTag
	// FieldViewTags are the host view's keyed tags (value: map[string]any).
	FieldViewTags
	// FieldOutlineProvider is the outline provider
	// (value: graphics.OutlineProvider).
	FieldOutlineProvider
)

func (f ObjectField) String() string {
	switch f {
	case FieldBackground:
		return "background"
	case FieldForeground:
		return "foreground"
	case FieldOnClick:
		return "onClick"
	case FieldOnLongClick:
		return "onLongClick"
	case FieldWrapInView:
		return "wrapInView"
	case FieldViewTag:
		return "viewTag"
	case FieldViewTags:
		return "viewTags"
	case FieldOutlineProvider:
		return "outlineProvider"
	default:
		return fmt.Sprintf("ObjectField(%d)", int(f))
	}
}

// FloatField identifies a float-valued style field.
type FloatField int

const (
	// FieldAlpha is the component opacity, 0 to 1.
	FieldAlpha FloatField = iota
	// FieldElevation is the component elevation in pixels.
	FieldElevation
)

func (f FloatField) String() string {
	switch f {
	case FieldAlpha:
		return "alpha"
	case FieldElevation:
		return "elevation"
	default:
		return fmt.Sprintf("FloatField(%d)", int(f))
	}
}

// ObjectItem assigns an object value to an object-valued field.
//
// Value's dynamic type must match the field: see the ObjectField constants.
// The fluent Chain methods construct items with the right types; prefer
// them over literal ObjectItem values.
type ObjectItem struct {
	Field ObjectField
	Value any
}

func (it ObjectItem) apply(t Target) {
	switch it.Field {
	case FieldBackground:
		t.SetBackground(asDrawable(it.Value))
	case FieldForeground:
		t.SetForeground(asDrawable(it.Value))
	case FieldOnClick:
		t.SetOnClick(asClickHandler(it.Value))
	case FieldOnLongClick:
		t.SetOnLongClick(asLongClickHandler(it.Value))
	case FieldWrapInView:
		t.SetWrapInView()
	case FieldViewTag:
		t.SetViewTag(it.Value)
	case FieldViewTags:
		t.SetViewTags(asViewTags(it.Value))
	case FieldOutlineProvider:
		t.SetOutlineProvider(asOutlineProvider(it.Value))
	default:
		// Not reachable through this package's constructors.
		panic(&errors.FieldError{Kind: "object", Field: int(it.Field)})
	}
}

func (it ObjectItem) String() string {
	if it.Field == FieldWrapInView {
		return it.Field.String()
	}
	return fmt.Sprintf("%s=%v", it.Field, it.Value)
}

// FloatItem assigns a float value to a float-valued field.
type FloatItem struct {
	Field FloatField
	Value float64
}

func (it FloatItem) apply(t Target) {
	switch it.Field {
	case FieldAlpha:
		t.SetAlpha(it.Value)
	case FieldElevation:
		t.SetElevation(it.Value)
	default:
		// Not reachable through this package's constructors.
		panic(&errors.FieldError{Kind: "float", Field: int(it.Field)})
	}
}

func (it FloatItem) String() string {
	return fmt.Sprintf("%s=%g", it.Field, it.Value)
}

// The asX helpers preserve nil values across the any-typed Item.Value
// field: a nil Value must reach the setter as a typed nil, while a value
// of the wrong dynamic type must fail loudly rather than apply as nil.

func asDrawable(v any) graphics.Drawable {
	if v == nil {
		return nil
	}
	return v.(graphics.Drawable)
}

func asClickHandler(v any) ClickHandler {
	if v == nil {
		return nil
	}
	return v.(ClickHandler)
}

func asLongClickHandler(v any) LongClickHandler {
	if v == nil {
		return nil
	}
	return v.(LongClickHandler)
}

func asViewTags(v any) map[string]any {
	if v == nil {
		return nil
	}
	return v.(map[string]any)
}

func asOutlineProvider(v any) graphics.OutlineProvider {
	if v == nil {
		return nil
	}
	return v.(graphics.OutlineProvider)
}
