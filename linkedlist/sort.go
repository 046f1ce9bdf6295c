package linkedlist

import "github.com/hasbyte1/go-containers/internal/node"

// Sort reorders the list in place so that compare(a, b) <= 0 holds for every
// adjacent pair. compare follows the [cmp.Compare] contract: negative when
// a < b, zero when equal, positive when a > b.
//
// Sort is a top-down merge sort that relinks nodes without copying values.
// It is stable: equal elements keep their relative order. It runs in
// O(n log n) time and O(log n) stack space.
func (l *List[T]) Sort(compare func(a, b T) int) {
	if l.size < 2 {
		return
	}
	l.head = mergeSort(l.head, compare)
}

func mergeSort[T any](head *node.Node[T], compare func(a, b T) int) *node.Node[T] {
	if head == nil || head.Next == nil {
		return head
	}
	front, back := split(head)
	return merge(mergeSort(front, compare), mergeSort(back, compare), compare)
}

// split cuts the chain at its midpoint. slow advances one node per step and
// fast two; when fast runs out, the node after slow starts the back half.
// For odd lengths the front half gets the extra node.
func split[T any](head *node.Node[T]) (front, back *node.Node[T]) {
	slow, fast := head, head.Next
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}
	back = slow.Next
	slow.Next = nil
	return head, back
}

// merge joins two ascending runs. On ties the node from a is taken first.
func merge[T any](a, b *node.Node[T], compare func(a, b T) int) *node.Node[T] {
	var sentinel node.Node[T]
	tail := &sentinel
	for a != nil && b != nil {
		if compare(b.Value, a.Value) < 0 {
			tail.Next = b
			b = b.Next
		} else {
			tail.Next = a
			a = a.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}
	return sentinel.Next
}
