package catalog

// tree is the ordered index: a plain, unbalanced binary search tree keyed
// by course number under byte-lexicographic string ordering. There is no
// rebalancing — average O(log n) insertion, O(n) for adversarial insertion
// order, which is an acceptable trade for an index this size.
//
// Equal keys descend right. A second insert under the same number becomes
// a right-descendant of the first, never replacing it, so duplicates of a
// number form a right-leaning chain and an in-order walk visits them
// consecutively in insertion order.
type tree struct {
	root *treeNode
	size int
}

// treeNode owns one course and its two child links exclusively. No parent
// or shared references.
type treeNode struct {
	course Course
	left   *treeNode
	right  *treeNode
}

// insert descends from the root to the first empty child slot and places
// a new node there. Insertion always succeeds.
func (t *tree) insert(c Course) {
	t.size++
	if t.root == nil {
		t.root = &treeNode{course: c}
		return
	}
	n := t.root
	for {
		if c.Number < n.course.Number {
			if n.left == nil {
				n.left = &treeNode{course: c}
				return
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = &treeNode{course: c}
				return
			}
			n = n.right
		}
	}
}

// height returns the number of nodes on the longest root-to-leaf path.
// Zero for an empty tree.
func (t *tree) height() int {
	return nodeHeight(t.root)
}

func nodeHeight(n *treeNode) int {
	if n == nil {
		return 0
	}
	l, r := nodeHeight(n.left), nodeHeight(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// inOrder returns a fresh iterator over the tree in ascending course-number
// order. The traversal is lazy — nodes are visited as the caller advances —
// and each call yields an independent, restartable enumeration.
func (t *tree) inOrder() Iterator {
	it := &treeIterator{}
	it.pushLeft(t.root)
	return it
}

// treeIterator walks the tree in-order using an explicit stack of nodes
// whose left subtrees have been fully descended.
type treeIterator struct {
	stack []*treeNode
}

func (it *treeIterator) pushLeft(n *treeNode) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

func (it *treeIterator) Next() (Course, bool) {
	if len(it.stack) == 0 {
		return Course{}, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	return n.course, true
}

func (it *treeIterator) Close() error {
	it.stack = nil
	return nil
}
