// Package arena implements the slab allocator the parser builds its AST in:
// a growable sequence of optional slots addressed by a stable NodeId, with
// support for nested sub-arenas that share one backing store.
package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// NodeId is an opaque handle into an Arena. It is stable for the lifetime of
// the arena, copyable, and comparable. The zero value never denotes a live
// node — Insert always returns ids starting at 1.
type NodeId uint32

// IsValid reports whether id was ever returned by Insert.
func (id NodeId) IsValid() bool { return id != 0 }

// Arena is a growable pool of T, addressed by 1-based NodeId. Nodes are
// immutable once inserted; the only mutation is Take, which empties a slot
// to hand its value out by move (used by the optional "materialise to owned
// tree" collaborator described in the data model).
//
// The backing slice holds pointers rather than values so that Reference can
// hand out a second *Arena sharing the same storage: appends through either
// handle are visible through the other, and element addresses stay stable
// across growth.
type Arena[T any] struct {
	slots *[]*T
}

// New creates an empty arena. capHint sizes the initial backing storage;
// zero is fine and simply defers to Go's slice growth.
func New[T any](capHint uint) *Arena[T] {
	backing := make([]*T, 0, capHint)
	return &Arena[T]{slots: &backing}
}

// Insert appends node and returns its new NodeId.
func (a *Arena[T]) Insert(node T) NodeId {
	elem := new(T)
	*elem = node
	*a.slots = append(*a.slots, elem)
	n, err := safecast.Conv[uint32](len(*a.slots))
	if err != nil {
		panic(fmt.Errorf("arena: node count overflow: %w", err))
	}
	return NodeId(n)
}

// Get returns a pointer to the node at id. It panics if id is invalid or was
// already consumed by Take — callers are expected to uphold arena closure
// (every NodeId embedded in a returned AST resolves to a live slot).
func (a *Arena[T]) Get(id NodeId) *T {
	slot := a.slot(id)
	if *slot == nil {
		panic(fmt.Errorf("arena: node %d already taken", id))
	}
	return *slot
}

// Take moves the node at id out, leaving its slot empty. Further Get or Take
// calls on id panic.
func (a *Arena[T]) Take(id NodeId) T {
	slot := a.slot(id)
	if *slot == nil {
		panic(fmt.Errorf("arena: node %d already taken", id))
	}
	node := **slot
	*slot = nil
	return node
}

// Reference returns a sub-arena sharing this arena's backing storage.
// Inserts made through the returned handle land in the same pool and are
// visible through the original handle, so ids handed out from a nested
// parse (interpolation bodies, dynamic attributes) stay meaningful in one
// flat space.
func (a *Arena[T]) Reference() *Arena[T] {
	return &Arena[T]{slots: a.slots}
}

// Len returns the number of slots ever inserted (including taken ones).
func (a *Arena[T]) Len() int {
	return len(*a.slots)
}

// View returns an ordered, read-only snapshot of live slots, nil where a
// node was taken. It exists for the optional consumer mentioned in the data
// model that walks the arena to render a concrete tree for testing.
func (a *Arena[T]) View() []*T {
	out := make([]*T, len(*a.slots))
	copy(out, *a.slots)
	return out
}

func (a *Arena[T]) slot(id NodeId) **T {
	if !id.IsValid() || int(id) > len(*a.slots) {
		panic(fmt.Errorf("arena: node id %d out of range (len=%d)", id, len(*a.slots)))
	}
	return &(*a.slots)[id-1]
}
