package Trees

import (
	"cmp"
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFromPreIn(t *testing.T) {
	pre := []int{10, 5, 3, 7, 15, 12, 18}
	in := []int{3, 5, 7, 10, 12, 15, 18}
	tree, err := FromPreIn[int, uint8](pre, in)
	if err != nil {
		t.Fatal(err)
	}
	if got := collect(tree.PostOrder); !slices.Equal(got, []int{3, 7, 5, 12, 18, 15, 10}) {
		t.Errorf("post-order is %v", got)
	}
	if got := collect(tree.PreOrder); !slices.Equal(got, pre) {
		t.Errorf("pre-order is %v", got)
	}
	if tree.Size() != 7 {
		t.Errorf("tree size is %d, want 7", tree.Size())
	}
	if err = tree.Check(); err != nil {
		t.Error(err)
	}
	// the rebuilt tree is a regular tree
	tree.Insert(11)
	tree.Erase(10)
	if got := tree.Values(); !slices.Equal(got, []int{3, 5, 7, 11, 12, 15, 18}) {
		t.Errorf("values are %v", got)
	}
}

func TestFromInPost(t *testing.T) {
	in := []int{3, 5, 7, 10, 12, 15, 18}
	post := []int{3, 7, 5, 12, 18, 15, 10}
	tree, err := FromInPost[int, uint8](in, post)
	if err != nil {
		t.Fatal(err)
	}
	if got := collect(tree.PreOrder); !slices.Equal(got, []int{10, 5, 3, 7, 15, 12, 18}) {
		t.Errorf("pre-order is %v", got)
	}
	if err = tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRebuild_RoundTrip(t *testing.T) {
	for range 20 {
		orig, _, _ := randomTree(t, rg.Intn(3000)+1, 10000)
		pre, in, post := collect(orig.PreOrder), orig.Values(), collect(orig.PostOrder)

		a, err := FromPreIn[int, uint32](pre, in)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(collect(a.PostOrder), post) {
			t.Errorf("tree rebuilt from pre-order has a different shape")
		}
		if err = a.Check(); err != nil {
			t.Error(err)
		}

		b, err := FromInPost[int, uint32](in, post)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(collect(b.PreOrder), pre) {
			t.Errorf("tree rebuilt from post-order has a different shape")
		}
		if err = b.Check(); err != nil {
			t.Error(err)
		}
	}
}

func TestRebuild_Degenerate(t *testing.T) {
	const n = 5000
	in := make([]int, n)
	for i := range in {
		in[i] = i
	}
	tree, err := FromPreIn[int, uint16](in, in)
	if err != nil {
		t.Fatal(err)
	}
	if tree.MaxDepth() != n-1 {
		t.Errorf("rebuilt chain has depth %d", tree.MaxDepth())
	}
	post := slices.Clone(in)
	slices.Reverse(post)
	if tree, err = FromInPost[int, uint16](in, post); err != nil {
		t.Fatal(err)
	} else if v, _ := tree.Minimum(); v != 0 || tree.MaxDepth() != n-1 {
		t.Errorf("rebuilt chain has depth %d", tree.MaxDepth())
	}
}

func TestRebuild_Empty(t *testing.T) {
	tree, err := FromPreIn[int, uint8](nil, []int{})
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Empty() {
		t.Errorf("tree from empty input isn't empty")
	}
	tree.Insert(1)
	if tree.Size() != 1 {
		t.Errorf("tree from empty input isn't usable")
	}
}

func TestRebuild_Invalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()

	for _, c := range []struct {
		name          string
		pre, in, post []int
	}{
		{"lengths differ", []int{1, 2}, []int{1, 2, 3}, []int{2, 1}},
		{"in-order unsorted", []int{1, 2, 3}, []int{1, 3, 2}, []int{3, 2, 1}},
		{"in-order repeats", []int{1, 1}, []int{1, 1}, []int{1, 1}},
		{"value missing", []int{1, 2, 4}, []int{1, 2, 3}, []int{4, 2, 1}},
		{"value out of place", []int{2, 3, 1}, []int{1, 2, 3}, []int{3, 1, 2}},
		{"value repeated", []int{2, 1, 1}, []int{1, 2, 3}, []int{1, 1, 2}},
	} {
		if tree, err := FromPreIn[int, uint8](c.pre, c.in); !errors.Is(err, ErrInvalidInput) || tree != nil {
			t.Errorf("%s: got %v", c.name, err)
		}
		if tree, err := FromInPost[int, uint8](c.in, c.post); !errors.Is(err, ErrInvalidInput) || tree != nil {
			t.Errorf("%s from post-order: got %v", c.name, err)
		}
	}
}

func TestRebuild_TooLarge(t *testing.T) {
	in := make([]int, 256)
	for i := range in {
		in[i] = i
	}
	if _, err := FromPreIn[int, uint8](in, in); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("256 values indexed by uint8 gave %v", err)
	}
	if _, err := FromPreIn[int, uint8](in[:255], in[:255]); err != nil {
		t.Errorf("255 values indexed by uint8 gave %v", err)
	}
}

func TestFromPreInC(t *testing.T) {
	desc := func(a, b testObject) int { return cmp.Compare(b.id, a.id) }
	obj := func(ids ...int) []testObject {
		s := make([]testObject, len(ids))
		for i, id := range ids {
			s[i] = testObject{id: id}
		}
		return s
	}
	tree, err := FromPreInC[testObject, uint](obj(5, 8, 9, 2), obj(9, 8, 5, 2), desc)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := tree.Minimum(); v.id != 9 {
		t.Errorf("minimum under descending order is %v", v)
	}
	if !tree.Has(testObject{id: 8}) {
		t.Errorf("tree doesn't have 8")
	}
	if _, err = FromInPostC[testObject, uint](obj(2, 5), obj(2, 5), desc); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ascending in-order under descending order gave %v", err)
	}
}
