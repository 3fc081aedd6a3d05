package core

import "testing"

func leavesOf(n int) [][32]byte {
	out := make([][32]byte, n)
	for i := range out {
		out[i] = HashLeaf([]byte{byte(i + 1)})
	}
	return out
}

func TestMerkleSingleLeaf(t *testing.T) {
	leaves := leavesOf(1)
	tree := NewMerkleTree(leaves)
	root, ok := tree.Root()
	if !ok {
		t.Fatal("expected a root")
	}
	if root != leaves[0] {
		t.Errorf("root of single-leaf tree = %x, want leaf %x", root, leaves[0])
	}
	path, err := tree.Open(0)
	if err != nil {
		t.Fatalf("Open(0): %v", err)
	}
	if len(path) != 0 {
		t.Errorf("path length = %d, want 0", len(path))
	}
	if !VerifyMerkleProof(leaves[0], path, root) {
		t.Error("verification failed for single-leaf tree")
	}
}

func TestMerkleThreeLeaves(t *testing.T) {
	leaves := leavesOf(3)
	tree := NewMerkleTree(leaves)
	root, _ := tree.Root()

	for i := range leaves {
		path, err := tree.Open(i)
		if err != nil {
			t.Fatalf("Open(%d): %v", i, err)
		}
		if !VerifyMerkleProof(leaves[i], path, root) {
			t.Errorf("verification failed for leaf %d", i)
		}
	}

	// the last index's sibling at the leaf level equals itself.
	path, _ := tree.Open(2)
	if path[0].Sibling != leaves[2] || !path[0].OnRight {
		t.Errorf("expected leaf 2's sibling to be itself, on the right")
	}
}

func TestMerkleFourLeaves(t *testing.T) {
	leaves := leavesOf(4)
	tree := NewMerkleTree(leaves)
	root, _ := tree.Root()
	for i := range leaves {
		path, err := tree.Open(i)
		if err != nil {
			t.Fatalf("Open(%d): %v", i, err)
		}
		if !VerifyMerkleProof(leaves[i], path, root) {
			t.Errorf("verification failed for leaf %d", i)
		}
	}
}

func TestMerkleOpenOutOfRange(t *testing.T) {
	tree := NewMerkleTree(leavesOf(3))
	if _, err := tree.Open(3); err == nil {
		t.Error("expected ErrIndexOutOfRange")
	}
}

func TestMerkleEmptyTreeHasNoRoot(t *testing.T) {
	tree := NewMerkleTree(nil)
	if _, ok := tree.Root(); ok {
		t.Error("expected no root for empty tree")
	}
}

func TestMerkleVerifyRejectsWrongLeaf(t *testing.T) {
	leaves := leavesOf(4)
	tree := NewMerkleTree(leaves)
	root, _ := tree.Root()
	path, _ := tree.Open(1)
	if VerifyMerkleProof(leaves[2], path, root) {
		t.Error("verification should fail for mismatched leaf")
	}
}
