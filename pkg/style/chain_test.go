package style_test

import (
	"reflect"
	"testing"

	"github.com/go-drift/stylekit/pkg/graphics"
	"github.com/go-drift/stylekit/pkg/style"
	"github.com/go-drift/stylekit/pkg/styletest"
)

// items flattens a chain's traversal into a slice for order assertions.
func items(c style.Chain) []style.Item {
	var out []style.Item
	c.ForEach(func(it style.Item) {
		out = append(out, it)
	})
	return out
}

func alphaItem(v float64) style.Item {
	return style.FloatItem{Field: style.FieldAlpha, Value: v}
}

func elevationItem(v float64) style.Item {
	return style.FloatItem{Field: style.FieldElevation, Value: v}
}

func TestChain_ZeroValueIsEmpty(t *testing.T) {
	var c style.Chain
	if !c.IsEmpty() {
		t.Error("zero-value chain should be empty")
	}
	if got := items(c); len(got) != 0 {
		t.Errorf("expected no items, got %v", got)
	}

	target := &styletest.RecordingTarget{}
	c.ApplyTo(target)
	if len(target.Calls) != 0 {
		t.Errorf("applying the empty chain should make no calls, got %v", target.Calls)
	}
}

func TestChain_AppendExtendsTraversal(t *testing.T) {
	c := style.Chain{}.Alpha(0.5).Elevation(2)
	extended := c.Append(alphaItem(0.8))

	want := append(items(c), alphaItem(0.8))
	if got := items(extended); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestChain_AppendNilIsIdentity(t *testing.T) {
	c := style.Chain{}.Alpha(0.5)
	if got := c.Append(nil); got != c {
		t.Error("Append(nil) should return the receiver unchanged")
	}

	var empty style.Chain
	if got := empty.Append(nil); got != empty {
		t.Error("Append(nil) on the empty chain should stay empty")
	}
}

func TestChain_ConcatOrdersLeftBeforeRight(t *testing.T) {
	a := style.Chain{}.Alpha(0.1).Elevation(1)
	b := style.Chain{}.Alpha(0.2)

	want := append(items(a), items(b)...)
	if got := items(a.Concat(b)); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestChain_ConcatEmptyIsIdentity(t *testing.T) {
	c := style.Chain{}.Alpha(0.5)
	var empty style.Chain

	if got := c.Concat(empty); got != c {
		t.Error("Concat(empty) should return the receiver unchanged")
	}
	if got := empty.Concat(c); got != c {
		t.Error("empty.Concat(c) should return c unchanged")
	}
	if got := empty.Concat(empty); !got.IsEmpty() {
		t.Error("concatenating two empty chains should stay empty")
	}
}

func TestChain_ConcatIsAssociative(t *testing.T) {
	a := style.Chain{}.Alpha(0.1)
	b := style.Chain{}.Elevation(2).Alpha(0.2)
	c := style.Chain{}.Elevation(3)

	left := a.Concat(b).Concat(c)
	right := a.Concat(b.Concat(c))
	if !reflect.DeepEqual(items(left), items(right)) {
		t.Errorf("expected identical traversal, got %v vs %v", items(left), items(right))
	}
}

func TestChain_LastWriteWins(t *testing.T) {
	s := style.Chain{}.Alpha(0.5).Elevation(2)
	extended := s.Alpha(0.8)

	target := &styletest.RecordingTarget{}
	extended.ApplyTo(target)

	if target.Alpha != 0.8 {
		t.Errorf("expected alpha 0.8, got %g", target.Alpha)
	}
	if target.Elevation != 2 {
		t.Errorf("expected elevation 2, got %g", target.Elevation)
	}
}

func TestChain_LastWriteWinsMatchesSingleAssignment(t *testing.T) {
	twice := style.Chain{}.ViewTag("first").Elevation(1).ViewTag("second")
	once := style.Chain{}.Elevation(1).ViewTag("second")

	a := &styletest.RecordingTarget{}
	twice.ApplyTo(a)
	b := &styletest.RecordingTarget{}
	once.ApplyTo(b)

	if a.ViewTag != b.ViewTag || a.Elevation != b.Elevation {
		t.Errorf("expected the later assignment to determine final state: %v vs %v", a, b)
	}
}

func TestChain_ConcatLastWriteWins(t *testing.T) {
	s := style.Chain{}.Alpha(0.5).Elevation(2)
	s2 := style.Chain{}.Alpha(0.1)

	target := &styletest.RecordingTarget{}
	s.Concat(s2).ApplyTo(target)

	if target.Alpha != 0.1 {
		t.Errorf("expected right operand's alpha 0.1 to win, got %g", target.Alpha)
	}
	if target.Elevation != 2 {
		t.Errorf("expected elevation 2 inherited from left operand, got %g", target.Elevation)
	}
}

func TestChain_StructuralSharing(t *testing.T) {
	base := style.Chain{}.Alpha(0.5)
	before := items(base)

	c1 := base.Elevation(1)
	c2 := base.Elevation(2).WrapInView()

	if got := items(base); !reflect.DeepEqual(got, before) {
		t.Errorf("base chain changed after appends: %v vs %v", got, before)
	}
	if got := base.Len(); got != 1 {
		t.Errorf("expected base length 1, got %d", got)
	}
	if c1.Len() != 2 || c2.Len() != 3 {
		t.Errorf("expected divergent lengths 2 and 3, got %d and %d", c1.Len(), c2.Len())
	}
}

func TestChain_ApplyDispatchesEveryField(t *testing.T) {
	bg := graphics.ColorDrawable{Color: graphics.ColorWhite}
	fg := graphics.ColorDrawable{Color: graphics.ColorBlack}
	outline := graphics.RoundedOutline{CornerRadius: 8}
	tags := map[string]any{"id": 7}

	clicked := false
	c := style.Chain{}.
		Background(bg).
		Foreground(fg).
		OnClick(func() { clicked = true }).
		OnLongClick(func() bool { return true }).
		WrapInView().
		ViewTag("tag").
		ViewTags(tags).
		OutlineProvider(outline).
		Alpha(0.25).
		Elevation(6)

	target := &styletest.RecordingTarget{}
	c.ApplyTo(target)

	if target.Background != bg {
		t.Errorf("expected background %v, got %v", bg, target.Background)
	}
	if target.Foreground != fg {
		t.Errorf("expected foreground %v, got %v", fg, target.Foreground)
	}
	if target.OnClick == nil || target.OnLongClick == nil {
		t.Fatal("expected click handlers to be registered")
	}
	target.OnClick()
	if !clicked {
		t.Error("expected registered click handler to run")
	}
	if !target.OnLongClick() {
		t.Error("expected long-click handler to report consumed")
	}
	if !target.WrappedInView {
		t.Error("expected wrapInView to be set")
	}
	if target.ViewTag != "tag" {
		t.Errorf("expected view tag %q, got %v", "tag", target.ViewTag)
	}
	if !reflect.DeepEqual(target.ViewTags, tags) {
		t.Errorf("expected view tags %v, got %v", tags, target.ViewTags)
	}
	if target.OutlineProvider != outline {
		t.Errorf("expected outline provider %v, got %v", outline, target.OutlineProvider)
	}
	if target.Alpha != 0.25 || target.Elevation != 6 {
		t.Errorf("expected alpha 0.25 and elevation 6, got %g and %g", target.Alpha, target.Elevation)
	}
	if len(target.Calls) != 10 {
		t.Errorf("expected 10 setter calls, got %d: %v", len(target.Calls), target.Calls)
	}
}

func TestChain_NilDrawableClearsField(t *testing.T) {
	c := style.Chain{}.
		Background(graphics.ColorDrawable{Color: graphics.ColorRed}).
		Background(nil)

	target := &styletest.RecordingTarget{}
	c.ApplyTo(target)
	if target.Background != nil {
		t.Errorf("expected later nil background to clear the field, got %v", target.Background)
	}
}

func TestChain_ForEachHandlesLongChains(t *testing.T) {
	var c style.Chain
	const n = 200000
	for i := 0; i < n; i++ {
		c = c.Elevation(float64(i))
	}

	count := 0
	var last style.Item
	c.ForEach(func(it style.Item) {
		count++
		last = it
	})
	if count != n {
		t.Fatalf("expected %d items, got %d", n, count)
	}
	if !reflect.DeepEqual(last, elevationItem(n-1)) {
		t.Errorf("expected final item %v, got %v", elevationItem(n-1), last)
	}
}

func TestChain_NestedConcatTraversal(t *testing.T) {
	a := style.Chain{}.Alpha(0.1)
	b := style.Chain{}.Alpha(0.2)
	c := style.Chain{}.Alpha(0.3)
	d := style.Chain{}.Alpha(0.4)

	combined := a.Concat(b).Concat(c.Concat(d))
	want := []style.Item{alphaItem(0.1), alphaItem(0.2), alphaItem(0.3), alphaItem(0.4)}
	if got := items(combined); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestChain_ConcurrentReaders(t *testing.T) {
	c := style.Chain{}.Alpha(0.5).Elevation(2).ViewTag("shared")

	done := make(chan []style.Item, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- items(c)
		}()
	}
	want := items(c)
	for i := 0; i < 8; i++ {
		if got := <-done; !reflect.DeepEqual(got, want) {
			t.Errorf("concurrent traversal differs: %v vs %v", got, want)
		}
	}
}
