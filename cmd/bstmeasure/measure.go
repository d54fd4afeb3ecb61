package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/petar/GoLLRB/llrb"
	"github.com/urfave/cli/v2"
)

func values(cctx *cli.Context, sorted bool) []int {
	rg := rand.New(rand.NewSource(cctx.Int64("seed")))
	all := make([]int, cctx.Int("n"))
	for i := range all {
		all[i] = rg.Int()
	}
	if sorted {
		slices.Sort(all)
	}
	return all
}

var cmdShape = &cli.Command{
	Name:  "shape",
	Usage: "compare the depth of a tree built from random or sorted values against a balanced one",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "sorted",
			Usage: "insert the values in ascending order",
		},
	}, sizeFlags...),
	Action: runShape,
}

func runShape(cctx *cli.Context) error {
	all := values(cctx, cctx.Bool("sorted"))
	if uint64(len(all)) > math.MaxUint32 {
		return fmt.Errorf("%d values don't fit in a tree indexed by uint32", len(all))
	}
	tree := Trees.New[int](uint32(len(all)))
	lb := llrb.New()
	for _, v := range all {
		tree.Insert(v)
		lb.ReplaceOrInsert(llrb.Int(v))
	}
	if err := tree.Check(); err != nil {
		return err
	}
	var lmax int
	for _, v := range all {
		if _, d := lb.GetHeight(llrb.Int(v)); d > lmax {
			lmax = d
		}
	}
	report("size", "%s", humanize.Comma(int64(tree.Size())))
	report("min depth", "%d", tree.MinDepth())
	report("max depth", "%d", tree.MaxDepth())
	report("average depth", "%f", tree.AverageDepth())
	report("llrb max depth", "%d", lmax)
	if n := tree.Size(); n > 1 && tree.MaxDepth() == uint(n-1) {
		bad.Println("the tree is a chain")
	}
	return nil
}

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "time erasing a growing share of a random tree, then querying it",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:    "steps",
			Usage:   "number of shares to measure",
			Value:   50,
			EnvVars: []string{"BST_STEPS"},
		},
	}, sizeFlags...),
	Action: runBench,
}

var sideEff bool

func runBench(cctx *cli.Context) error {
	testing.Init()
	all := values(cctx, false)
	steps := cctx.Int("steps")
	if steps < 2 || len(all) < steps {
		return fmt.Errorf("need at least 2 steps and as many values as steps")
	}
	rg := rand.New(rand.NewSource(cctx.Int64("seed")))
	var cs []float64
	var N int
	for i := 1; i < steps; i++ {
		rmvN := len(all) / steps * i
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				b.StopTimer()
				tree := Trees.New[int](uint32(len(all)))
				for _, v := range all {
					tree.Insert(v)
				}
				m := slices.Max(all[rmvN:])
				b.StartTimer()
				for _, v := range all[rmvN:] {
					tree.Erase(v)
				}
				for _, v := range all[:rmvN] {
					sideEff = tree.Has(v)
				}
				for range rmvN {
					sideEff = tree.Has(rg.Intn(m))
				}
			}
		})
		cs = append(cs, float64(br.T.Milliseconds()))
		N += br.N
		report(fmt.Sprintf("step %d", i), "%s erased, %s", humanize.Comma(int64(len(all)-rmvN)), br)
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(N)
	report("average", "%fms/op", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	report("stddev", "%fms/op", math.Sqrt(sum/float64(N)))
	return nil
}

var cmdPrint = &cli.Command{
	Name:  "print",
	Usage: "insert values in the given order and print the resulting tree",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "values",
			Usage: "values to insert",
			Value: cli.NewIntSlice(50, 30, 70, 20, 40, 60, 80, 35, 45),
		},
		&cli.BoolFlag{
			Name:  "dot",
			Usage: "print in Graphviz DOT format",
		},
	},
	Action: func(cctx *cli.Context) error {
		tree := Trees.Of[int, uint32](cctx.IntSlice("values")...)
		return printTree(cctx, tree)
	},
}

var cmdRebuild = &cli.Command{
	Name:  "rebuild",
	Usage: "rebuild a tree from its pre-order or post-order and its in-order traversal",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "pre",
			Usage: "pre-order traversal",
		},
		&cli.IntSliceFlag{
			Name:  "post",
			Usage: "post-order traversal, used if pre is empty",
		},
		&cli.IntSliceFlag{
			Name:     "in",
			Usage:    "in-order traversal",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "dot",
			Usage: "print in Graphviz DOT format",
		},
	},
	Action: func(cctx *cli.Context) error {
		var tree *Trees.BSTree[int, uint32]
		var err error
		if pre := cctx.IntSlice("pre"); len(pre) > 0 {
			tree, err = Trees.FromPreIn[int, uint32](pre, cctx.IntSlice("in"))
		} else {
			tree, err = Trees.FromInPost[int, uint32](cctx.IntSlice("in"), cctx.IntSlice("post"))
		}
		if err != nil {
			return err
		}
		if err = printTree(cctx, tree); err != nil {
			return err
		}
		var pre, post []int
		tree.PreOrder(func(v int) { pre = append(pre, v) })
		tree.PostOrder(func(v int) { post = append(post, v) })
		report("pre-order", "%v", pre)
		report("post-order", "%v", post)
		return nil
	},
}

func printTree(cctx *cli.Context, tree *Trees.BSTree[int, uint32]) error {
	if cctx.Bool("dot") {
		return tree.Dot(os.Stdout)
	}
	if err := tree.Print(os.Stdout); err != nil {
		return err
	}
	report("size", "%s", humanize.Comma(int64(tree.Size())))
	report("max depth", "%d", tree.MaxDepth())
	return nil
}
