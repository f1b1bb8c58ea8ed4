package style

import (
	"testing"

	"github.com/go-drift/stylekit/pkg/errors"
	"github.com/go-drift/stylekit/pkg/graphics"
)

// nullTarget discards every assignment. The dispatch tests only care about
// reaching (or not reaching) a setter.
type nullTarget struct{}

func (nullTarget) SetBackground(graphics.Drawable)             {}
func (nullTarget) SetForeground(graphics.Drawable)             {}
func (nullTarget) SetOnClick(ClickHandler)                     {}
func (nullTarget) SetOnLongClick(LongClickHandler)             {}
func (nullTarget) SetWrapInView()                              {}
func (nullTarget) SetViewTag(any)                              {}
func (nullTarget) SetViewTags(map[string]any)                  {}
func (nullTarget) SetOutlineProvider(graphics.OutlineProvider) {}
func (nullTarget) SetAlpha(float64)                            {}
func (nullTarget) SetElevation(float64)                        {}

func TestObjectField_String(t *testing.T) {
	cases := map[ObjectField]string{
		FieldBackground:      "background",
		FieldForeground:      "foreground",
		FieldOnClick:         "onClick",
		FieldOnLongClick:     "onLongClick",
		FieldWrapInView:      "wrapInView",
		FieldViewTag:         "viewTag",
		FieldViewTags:        "viewTags",
		FieldOutlineProvider: "outlineProvider",
		ObjectField(99):      "ObjectField(99)",
	}
	for field, want := range cases {
		if got := field.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestFloatField_String(t *testing.T) {
	cases := map[FloatField]string{
		FieldAlpha:     "alpha",
		FieldElevation: "elevation",
		FloatField(42): "FloatField(42)",
	}
	for field, want := range cases {
		if got := field.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestItem_String(t *testing.T) {
	if got := (FloatItem{Field: FieldAlpha, Value: 0.8}).String(); got != "alpha=0.8" {
		t.Errorf("expected %q, got %q", "alpha=0.8", got)
	}
	if got := (ObjectItem{Field: FieldViewTag, Value: "card"}).String(); got != "viewTag=card" {
		t.Errorf("expected %q, got %q", "viewTag=card", got)
	}
	if got := (ObjectItem{Field: FieldWrapInView}).String(); got != "wrapInView" {
		t.Errorf("expected %q, got %q", "wrapInView", got)
	}
}

func TestObjectItem_UnknownFieldPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for out-of-range object field")
		}
		fe, ok := r.(*errors.FieldError)
		if !ok {
			t.Fatalf("expected *errors.FieldError panic value, got %T", r)
		}
		if fe.Kind != "object" || fe.Field != 99 {
			t.Errorf("expected object/99, got %s/%d", fe.Kind, fe.Field)
		}
	}()
	Chain{}.Append(ObjectItem{Field: ObjectField(99)}).ApplyTo(nullTarget{})
}

func TestFloatItem_UnknownFieldPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for out-of-range float field")
		}
		if _, ok := r.(*errors.FieldError); !ok {
			t.Fatalf("expected *errors.FieldError panic value, got %T", r)
		}
	}()
	Chain{}.Append(FloatItem{Field: FloatField(42), Value: 1}).ApplyTo(nullTarget{})
}
