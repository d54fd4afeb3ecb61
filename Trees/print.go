package Trees

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// Print the shape of the tree to w, children indented under their parent and tagged L or R.
// Time: O(n)
func (u *BSTree[T, S]) Print(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}

// String renders the tree like Print does.
func (u *BSTree[T, S]) String() string {
	if u.root == 0 {
		return treeprint.New().String()
	}
	type pending struct {
		i  S
		br treeprint.Tree
	}
	st := []pending{{u.root, treeprint.NewWithRoot(u.vs[u.root-1])}}
	root := st[0].br
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if l := u.ifs[top.i].l; l != 0 {
			st = append(st, pending{l, top.br.AddMetaBranch("L", u.vs[l-1])})
		}
		if r := u.ifs[top.i].r; r != 0 {
			st = append(st, pending{r, top.br.AddMetaBranch("R", u.vs[r-1])})
		}
	}
	return root.String()
}

// Dot writes the tree in Graphviz DOT format (for debugging purposes).
func (u *BSTree[T, S]) Dot(w io.Writer) error {
	var nodes, edges strings.Builder
	u.levels(func(i S, _ uint) {
		fmt.Fprintf(&nodes, "\t\"%d\" [label=\"%v\"];\n", i, u.vs[i-1])
		if l := u.ifs[i].l; l != 0 {
			fmt.Fprintf(&edges, "\t\"%d\" -> \"%d\" [label=L];\n", i, l)
		}
		if r := u.ifs[i].r; r != 0 {
			fmt.Fprintf(&edges, "\t\"%d\" -> \"%d\" [label=R];\n", i, r)
		}
	})
	_, err := fmt.Fprintf(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n%s%s}\n", nodes.String(), edges.String())
	return err
}
