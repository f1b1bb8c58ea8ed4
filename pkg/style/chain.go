package style

import "github.com/go-drift/stylekit/pkg/graphics"

// Chain is an immutable, ordered sequence of style attribute assignments.
//
// The zero value is the empty chain. Append and Concat return new chains
// and never modify the receiver; the new chain shares structure with its
// operands rather than copying them.
type Chain struct {
	node *chainNode
}

// chainNode is one node of the persistent structure. Exactly one variant
// is populated:
//
//   - item node: item is set, prev is the (possibly nil) prefix
//   - combined node: left and right are both set
//
// A nil *chainNode is the empty chain. Nodes only reference strictly older
// nodes, so the structure is acyclic.
type chainNode struct {
	prev *chainNode
	item Item

	left  *chainNode
	right *chainNode
}

// IsEmpty reports whether the chain holds no assignments.
func (c Chain) IsEmpty() bool {
	return c.node == nil
}

// Append returns a new chain equal to the receiver followed by item.
// A nil item returns the receiver unchanged.
func (c Chain) Append(item Item) Chain {
	if item == nil {
		return c
	}
	return Chain{node: &chainNode{prev: c.node, item: item}}
}

// Concat returns a new chain equal to the receiver followed by other.
// Neither operand is traversed or copied; the result references both.
// An empty operand on either side returns the other unchanged.
func (c Chain) Concat(other Chain) Chain {
	if other.node == nil {
		return c
	}
	if c.node == nil {
		return other
	}
	return Chain{node: &chainNode{left: c.node, right: other.node}}
}

// ForEach calls visit for every item in the chain, in append order. For a
// combined chain every item of the left operand is visited before any item
// of the right operand, recursively.
//
// ForEach is the only way to read a chain's contents; there is no random
// access.
func (c Chain) ForEach(visit func(Item)) {
	if c.node == nil {
		return
	}
	// Items are collected back to front: an item node yields its item
	// before its prefix, a combined node yields its right operand before
	// its left. An explicit stack holds the left operands still pending,
	// so traversal depth is independent of the goroutine stack.
	var reversed []Item
	stack := []*chainNode{c.node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for n != nil {
			if n.item != nil {
				reversed = append(reversed, n.item)
				n = n.prev
			} else {
				stack = append(stack, n.left)
				n = n.right
			}
		}
	}
	for i := len(reversed) - 1; i >= 0; i-- {
		visit(reversed[i])
	}
}

// ApplyTo replays every assignment in the chain against t, in append
// order. Later assignments to a field overwrite earlier ones.
func (c Chain) ApplyTo(t Target) {
	c.ForEach(func(it Item) {
		it.apply(t)
	})
}

// Len returns the number of assignments in the chain. It traverses the
// whole chain; intended for tests and debug output.
func (c Chain) Len() int {
	n := 0
	c.ForEach(func(Item) { n++ })
	return n
}

// Fluent constructors. Each returns a new chain extending the receiver;
// the receiver is never modified.

// Background returns a copy of the chain that also sets the background
// drawable. A nil drawable clears the background.
func (c Chain) Background(d graphics.Drawable) Chain {
	return c.Append(ObjectItem{Field: FieldBackground, Value: d})
}

// Foreground returns a copy of the chain that also sets the foreground
// drawable. A nil drawable clears the foreground.
func (c Chain) Foreground(d graphics.Drawable) Chain {
	return c.Append(ObjectItem{Field: FieldForeground, Value: d})
}

// OnClick returns a copy of the chain that also registers a click handler.
func (c Chain) OnClick(h ClickHandler) Chain {
	return c.Append(ObjectItem{Field: FieldOnClick, Value: h})
}

// OnLongClick returns a copy of the chain that also registers a long-click
// handler.
func (c Chain) OnLongClick(h LongClickHandler) Chain {
	return c.Append(ObjectItem{Field: FieldOnLongClick, Value: h})
}

// WrapInView returns a copy of the chain that also forces the component to
// mount in its own host view.
func (c Chain) WrapInView() Chain {
	return c.Append(ObjectItem{Field: FieldWrapInView})
}

// ViewTag returns a copy of the chain that also sets the host view's
// unkeyed tag.
func (c Chain) ViewTag(tag any) Chain {
	return c.Append(ObjectItem{Field: FieldViewTag, Value: tag})
}

// ViewTags returns a copy of the chain that also sets the host view's
// keyed tags.
func (c Chain) ViewTags(tags map[string]any) Chain {
	return c.Append(ObjectItem{Field: FieldViewTags, Value: tags})
}

// OutlineProvider returns a copy of the chain that also sets the outline
// provider.
func (c Chain) OutlineProvider(p graphics.OutlineProvider) Chain {
	return c.Append(ObjectItem{Field: FieldOutlineProvider, Value: p})
}

// Alpha returns a copy of the chain that also sets the component opacity.
func (c Chain) Alpha(alpha float64) Chain {
	return c.Append(FloatItem{Field: FieldAlpha, Value: alpha})
}

// Elevation returns a copy of the chain that also sets the component
// elevation.
func (c Chain) Elevation(elevation float64) Chain {
	return c.Append(FloatItem{Field: FieldElevation, Value: elevation})
}
