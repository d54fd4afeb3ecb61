package Trees

import (
	"slices"
	"testing"
)

func TestIterator_Empty(t *testing.T) {
	tree := New[int, uint32](0)
	if tree.Begin() != tree.End() || tree.CBegin() != tree.CEnd() {
		t.Errorf("begin of empty tree isn't end")
	}
	if tree.End().Prev() != tree.End() {
		t.Errorf("prev of end of empty tree isn't end")
	}
	if tree.End().Next() != tree.End() {
		t.Errorf("next of end isn't end")
	}
}

func TestIterator_EndPanics(t *testing.T) {
	tree := Of[int, uint32](1)
	defer func() {
		if recover() == nil {
			t.Errorf("dereferencing end didn't panic")
		}
	}()
	_ = tree.End().Value()
}

func TestIterator_Walk(t *testing.T) {
	tree, content, _ := randomTree(t, 3000, 6000)
	keys := sortedKeys(content)
	var got []int
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		got = append(got, it.Value())
	}
	if !slices.Equal(got, keys) {
		t.Errorf("forward walk isn't the sorted keys")
	}
	got = got[:0]
	for it := tree.End().Prev(); it.Valid(); it = it.Prev() {
		got = append(got, it.Value())
	}
	slices.Reverse(got)
	if !slices.Equal(got, keys) {
		t.Errorf("backward walk isn't the reverse sorted keys")
	}
}

func TestIterator_Ends(t *testing.T) {
	tree := Of[int, uint16](10, 5, 15, 3, 7, 12, 18)
	last := tree.End().Prev()
	if last.Value() != 18 {
		t.Errorf("prev of end is %v, want 18", last.Value())
	}
	if last.Next() != tree.End() {
		t.Errorf("next of the largest isn't end")
	}
	if tree.Begin().Prev() != tree.End() {
		t.Errorf("prev of the smallest isn't end")
	}
	for it := tree.Begin(); it.Valid(); it = it.Next() {
		if it.Next().Prev() != it {
			t.Errorf("next then prev of %v doesn't come back", it.Value())
		}
	}
}

func TestIterator_EraseWhileIterating(t *testing.T) {
	tree := New[int, uint32](0)
	for i := range 1000 {
		tree.Insert(rg.Intn(100000)*2 + i%2)
	}
	var odd []int
	tree.Range(func(v int) bool {
		if v%2 == 1 {
			odd = append(odd, v)
		}
		return true
	})
	for it := tree.Begin(); it.Valid(); {
		if it.Value()%2 == 0 {
			it = tree.EraseAt(it)
		} else {
			it = it.Next()
		}
	}
	if !slices.Equal(tree.Values(), odd) {
		t.Errorf("erasing evens left %d values, want %d", tree.Size(), len(odd))
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestIterator_Ptr(t *testing.T) {
	tree := NewC[testObject, uint8](0, cmpTestObject)
	tree.Insert(testObject{1, "a"})
	tree.Insert(testObject{2, "b"})
	tree.Find(testObject{id: 2}).Ptr().name = "changed"
	if v := tree.Find(testObject{id: 2}).Value(); v.name != "changed" {
		t.Errorf("modification through Ptr lost, got %v", v)
	}
}

func TestConstIterator(t *testing.T) {
	tree := Of[int, uint16](2, 1, 3)
	var got []int
	for it := tree.CBegin(); it != tree.CEnd(); it = it.Next() {
		got = append(got, it.Value())
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("const walk is %v", got)
	}
	if c := tree.Find(3).Const(); c.Prev().Value() != 2 || !c.Valid() {
		t.Errorf("converted iterator isn't at 3")
	}
	if tree.CEnd().Prev().Value() != 3 {
		t.Errorf("prev of const end isn't 3")
	}
}

func TestBSTree_Seq(t *testing.T) {
	tree := Of[int, uint16](5, 2, 8, 1, 9)
	var got []int
	for v := range tree.All() {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2, 5, 8, 9}) {
		t.Errorf("All yields %v", got)
	}
	got = got[:0]
	for v := range tree.Backward() {
		if v < 5 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{9, 8, 5}) {
		t.Errorf("Backward yields %v", got)
	}
	if s := slices.Collect(New[int, uint8](0).All()); len(s) != 0 {
		t.Errorf("All of empty tree yields %v", s)
	}
}
