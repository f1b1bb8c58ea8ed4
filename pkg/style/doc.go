// Package style provides the persistent style-attribute chain used to
// describe component styling.
//
// A Chain is an immutable, ordered sequence of style attribute assignments.
// Appending an attribute returns a new chain that shares its prefix with the
// original, so building a style with a fluent call chain is O(1) per step
// and a base style can be extended into divergent variants without copying:
//
//	base := style.Chain{}.
//	    Background(graphics.ColorDrawable{Color: graphics.ColorWhite}).
//	    Elevation(4)
//
//	card := base.Alpha(0.9)
//	dialog := base.Alpha(1).WrapInView()
//
// Two independently built chains combine with Concat, also in O(1); the
// right-hand side is traversed after the receiver, so its assignments win
// on conflicting fields.
//
// # Application
//
// Chains do nothing on their own. ApplyTo replays every assignment, in
// append order, against a Target: the capability interface a host component
// implements. Because assignments are replayed in order, the last assignment
// to a field determines its final value ("last write wins"); earlier
// assignments to the same field are overwritten, not merged.
//
// # Immutability and sharing
//
// No chain is ever mutated after construction. Chains are safe to share
// across goroutines without synchronization; applying a chain to a target
// is synchronous and carries no concurrency guarantee for the target
// itself. The target's owning thread is the caller's responsibility.
//
// The zero value of Chain is the empty chain and is ready to use.
package style
