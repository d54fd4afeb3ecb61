package Trees

import (
	"fmt"

	Go_BST "github.com/g-m-twostay/go-bst"
)

// Check validates the structural invariants of the tree: every slot is either reachable from
// the root exactly once or on the free list, parent indexes match the links reaching them,
// subtree sizes add up, and in-order values are strictly ascending.
// The returned error wraps ErrCorrupt. Meant for tests and debugging.
// Time: O(n); Space: O(n)
func (u *BSTree[T, S]) Check() error {
	err := u.check()
	if err != nil {
		tracer().Errorf("tree check: %v", err)
	}
	return err
}

// Corrupt reports whether Check fails.
func (u *BSTree[T, S]) Corrupt() bool {
	return u.Check() != nil
}

func (u *BSTree[T, S]) check() error {
	if len(u.ifs) == 0 || u.ifs[0] != (info[S]{}) {
		return fmt.Errorf("%w: nil sentinel was written", ErrCorrupt)
	} else if len(u.vs) != len(u.ifs)-1 {
		return fmt.Errorf("%w: %d values for %d slots", ErrCorrupt, len(u.vs), len(u.ifs)-1)
	}
	seen := Go_BST.New(len(u.ifs))
	seen.Up(0)
	for a := u.free; a != 0; a = u.ifs[a].l {
		if int(a) >= len(u.ifs) || seen.Get(int(a)) {
			return fmt.Errorf("%w: free list revisits %d", ErrCorrupt, a)
		}
		seen.Up(int(a))
	}
	if u.root != 0 {
		if int(u.root) >= len(u.ifs) || seen.Get(int(u.root)) {
			return fmt.Errorf("%w: root %d is released", ErrCorrupt, u.root)
		} else if u.ifs[u.root].p != 0 {
			return fmt.Errorf("%w: root has parent %d", ErrCorrupt, u.ifs[u.root].p)
		}
		seen.Up(int(u.root))
	}
	for st := []S{u.root}; len(st) > 0; {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if curI == 0 {
			continue
		}
		cur := u.ifs[curI]
		for _, c := range [2]S{cur.l, cur.r} {
			if c == 0 {
				continue
			} else if int(c) >= len(u.ifs) || seen.Get(int(c)) {
				return fmt.Errorf("%w: slot %d is reached twice or released", ErrCorrupt, c)
			} else if u.ifs[c].p != curI {
				return fmt.Errorf("%w: slot %d has parent %d, want %d", ErrCorrupt, c, u.ifs[c].p, curI)
			}
			seen.Up(int(c))
			st = append(st, c)
		}
		if cur.sz != u.ifs[cur.l].sz+u.ifs[cur.r].sz+1 {
			return fmt.Errorf("%w: slot %d has size %d, want %d", ErrCorrupt, curI, cur.sz, u.ifs[cur.l].sz+u.ifs[cur.r].sz+1)
		}
	}
	if n := seen.Count(); n != len(u.ifs) {
		return fmt.Errorf("%w: %d slots are neither live nor released", ErrCorrupt, len(u.ifs)-n)
	}
	for i, j := u.minOf(u.root), S(0); i != 0; i, j = u.next(i), i {
		if j != 0 && u.Cmp(u.vs[j-1], u.vs[i-1]) >= 0 {
			return fmt.Errorf("%w: %v isn't before %v", ErrCorrupt, u.vs[j-1], u.vs[i-1])
		}
	}
	return nil
}
