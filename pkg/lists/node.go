package lists

import (
	"fmt"
	"io"
	"iter"
)

// Node is one element of a singly linked list. A list is entered through its
// head node; a nil head is the empty list.
type Node struct {
	Value int

	next     *Node
	linked   bool
	released bool
}

// NewNode allocates an unlinked node holding v.
func NewNode(v int) *Node {
	return &Node{Value: v}
}

// Next returns the successor of n, or nil at the tail.
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

// Released reports whether n was removed by Delete or DeleteAll.
func (n *Node) Released() bool { return n != nil && n.released }

func (n *Node) release() {
	n.next = nil
	n.linked = false
	n.released = true
}

func checkFresh(n *Node) error {
	switch {
	case n == nil:
		return invalidLink("new node is nil")
	case n.released:
		return invalidLink("new node was released")
	case n.linked || n.next != nil:
		return invalidLink("new node is already linked")
	}
	return nil
}

func checkHead(head *Node) error {
	if head.Released() {
		return invalidLink("head node was released")
	}
	return nil
}

func reachable(head, target *Node) bool {
	for curr := head; curr != nil; curr = curr.next {
		if curr == target {
			return true
		}
	}
	return false
}

// Insert links n in front of head when prev is nil, otherwise right after prev.
// The returned head replaces the one passed in.
func Insert(head, prev, n *Node) (*Node, error) {
	if err := checkFresh(n); err != nil {
		return head, err
	}
	if err := checkHead(head); err != nil {
		return head, err
	}
	if prev == nil {
		n.next = head
		n.linked = true
		return n, nil
	}
	if prev.released || !reachable(head, prev) {
		return head, invalidLink("previous node is not in the list")
	}
	n.next = prev.next
	prev.next = n
	n.linked = true
	return head, nil
}

// Append links n after the last node. There is no cached tail, so this walks
// the whole chain.
func Append(head, n *Node) (*Node, error) {
	if err := checkFresh(n); err != nil {
		return head, err
	}
	if err := checkHead(head); err != nil {
		return head, err
	}
	n.linked = true
	if head == nil {
		return n, nil
	}
	last := head
	for last.next != nil {
		last = last.next
	}
	last.next = n
	return head, nil
}

// Delete unlinks curr, whose predecessor is prev (nil when curr is the head),
// and releases it. curr must not be used afterwards.
func Delete(head, prev, curr *Node) (*Node, error) {
	if curr == nil {
		return head, invalidLink("node to delete is nil")
	}
	if curr.released {
		return head, invalidLink("node to delete was already released")
	}
	if prev == nil {
		if curr != head {
			return head, invalidLink("node to delete is not the head")
		}
		head = curr.next
	} else {
		if prev.next != curr || !reachable(head, prev) {
			return head, invalidLink("previous node does not link to the node to delete")
		}
		prev.next = curr.next
	}
	curr.release()
	return head, nil
}

// DeleteAll releases every node and returns the empty head.
func DeleteAll(head *Node) *Node {
	curr := head
	for curr != nil {
		next := curr.next
		curr.release()
		curr = next
	}
	return nil
}

// Values yields node values from head to tail. The sequence can be ranged over
// again to restart from head.
func Values(head *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		for curr := head; curr != nil; curr = curr.next {
			if !yield(curr.Value) {
				return
			}
		}
	}
}

// Print writes one value per line in traversal order.
func Print(w io.Writer, head *Node) error {
	for v := range Values(head) {
		if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
			return err
		}
	}
	return nil
}

func Count(head *Node) int {
	total := 0
	for curr := head; curr != nil; curr = curr.next {
		total++
	}
	return total
}

func Sum(head *Node) int {
	sum := 0
	for curr := head; curr != nil; curr = curr.next {
		sum += curr.Value
	}
	return sum
}

func ToSlice(head *Node) []int {
	res := make([]int, 0)
	for v := range Values(head) {
		res = append(res, v)
	}
	return res
}

// SearchByPosition returns the node at the 1-based position pos, or nil when
// pos is outside [1, Count(head)].
func SearchByPosition(head *Node, pos int) *Node {
	if pos < 1 {
		return nil
	}
	curr := head
	for i := 1; i < pos && curr != nil; i++ {
		curr = curr.next
	}
	return curr
}

// SearchLast returns the tail node, or nil for the empty list.
func SearchLast(head *Node) *Node {
	if head == nil {
		return nil
	}
	last := head
	for last.next != nil {
		last = last.next
	}
	return last
}

// SearchPrevious returns the node after which a node inserted at pos belongs:
// nil for pos <= 1, the node at pos-1 inside the list, and the tail beyond it.
func SearchPrevious(head *Node, pos int) *Node {
	if pos <= 1 {
		return nil
	}
	if pos <= Count(head) {
		return SearchByPosition(head, pos-1)
	}
	return SearchLast(head)
}

// Reverse relinks every node to point at its predecessor and returns the old
// tail as the new head. No nodes are allocated or released.
func Reverse(head *Node) (*Node, error) {
	if head == nil {
		return nil, ErrEmptyList
	}
	var prev *Node
	curr := head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	return prev, nil
}

// FromValues builds a fresh chain holding vs in order.
func FromValues(vs ...int) *Node {
	var head, last *Node
	for _, v := range vs {
		n := NewNode(v)
		n.linked = true
		if head == nil {
			head = n
		} else {
			last.next = n
		}
		last = n
	}
	return head
}
