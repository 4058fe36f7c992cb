package lists

import (
	"io"
	"iter"
)

// List owns a head slot. Every method stores the head returned by the engine
// functions back into the slot, so a stale head is never reused.
type List struct {
	head *Node
}

func NewList() *List {
	return new(List)
}

func (l *List) Head() *Node { return l.head }

func (l *List) Len() int { return Count(l.head) }

func (l *List) Sum() int { return Sum(l.head) }

func (l *List) Values() iter.Seq[int] { return Values(l.head) }

func (l *List) ToSlice() []int { return ToSlice(l.head) }

func (l *List) Print(w io.Writer) error { return Print(w, l.head) }

func (l *List) At(pos int) *Node { return SearchByPosition(l.head, pos) }

func (l *List) Last() *Node { return SearchLast(l.head) }

func (l *List) Previous(pos int) *Node { return SearchPrevious(l.head, pos) }

// Prepend inserts a new node holding v at the front.
func (l *List) Prepend(v int) *Node {
	n := NewNode(v)
	// a fresh node with a nil prev is always accepted
	l.head, _ = Insert(l.head, nil, n)
	return n
}

// Append inserts a new node holding v at the back.
func (l *List) Append(v int) *Node {
	n := NewNode(v)
	l.head, _ = Append(l.head, n)
	return n
}

// InsertAfter inserts a new node holding v after prev, or at the front when
// prev is nil.
func (l *List) InsertAfter(prev *Node, v int) (*Node, error) {
	n := NewNode(v)
	head, err := Insert(l.head, prev, n)
	if err != nil {
		return nil, err
	}
	l.head = head
	return n, nil
}

// InsertAt inserts v so that it lands at the 1-based position pos. Positions
// past the end append.
func (l *List) InsertAt(pos int, v int) (*Node, error) {
	return l.InsertAfter(l.Previous(pos), v)
}

// Delete removes curr, whose predecessor is prev (nil for the head).
func (l *List) Delete(prev, curr *Node) error {
	head, err := Delete(l.head, prev, curr)
	if err != nil {
		return err
	}
	l.head = head
	return nil
}

// DeleteAt removes the node at pos and returns its value. ok is false when pos
// is out of range.
func (l *List) DeleteAt(pos int) (v int, ok bool) {
	curr := l.At(pos)
	if curr == nil {
		return 0, false
	}
	v = curr.Value
	if err := l.Delete(l.Previous(pos), curr); err != nil {
		return 0, false
	}
	return v, true
}

// Clear releases every node.
func (l *List) Clear() {
	l.head = DeleteAll(l.head)
}

func (l *List) Reverse() error {
	head, err := Reverse(l.head)
	if err != nil {
		return err
	}
	l.head = head
	return nil
}
