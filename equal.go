package baum

import "hash/maphash"

// Hasher may be implemented by content types which bring their own hash
// function. It has to be consistent with ==.
type Hasher interface {
	Hash() uint64
}

// voidContentHash is the hash value of absent content.
const voidContentHash uint64 = 1

var contentSeed = maphash.MakeSeed()

// Equal reports whether node and other are structurally equal: their contents
// are equal (or both absent), they have the same number of children, and
// their children are pairwise equal, in order.
//
// Parent links and capacities are not considered.
func (node *ArrayTree[T]) Equal(other *ArrayTree[T]) bool {
	if node == other {
		return true
	}
	if node == nil || other == nil {
		return false
	}
	if node.hasContent != other.hasContent {
		return false
	}
	if node.hasContent && node.content != other.content {
		return false
	}
	if node.children.len() != other.children.len() {
		return false
	}
	ochildren := other.children.view()
	for i, ch := range node.children.view() {
		if !ch.Equal(ochildren[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash value of the subtree rooted at node.
// Trees which are Equal have the same hash.
//
// The hash is seeded by the hash of node's content and folds in the hashes
// of all children with h = 31*h + hash(child). Content hashes are computed by
// content.Hash, if the content type implements Hasher, and with package
// hash/maphash otherwise. The latter are stable within a single process only.
func (node *ArrayTree[T]) Hash() uint64 {
	h := voidContentHash
	if node.hasContent {
		h = contentHash(node.content)
	}
	for _, ch := range node.children.view() {
		h = 31*h + ch.Hash()
	}
	return h
}

func contentHash[T comparable](content T) uint64 {
	if hasher, ok := any(content).(Hasher); ok {
		return hasher.Hash()
	}
	return maphash.Comparable(contentSeed, content)
}
