package main

import (
	"errors"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
)

func TestRun(t *testing.T) {
	for _, args := range [][]string{
		{"bstmeasure", "print"},
		{"bstmeasure", "print", "--dot", "--values", "2,1,3"},
		{"bstmeasure", "shape", "--n", "1000"},
		{"bstmeasure", "--verbose", "shape", "--n", "300", "--sorted"},
		{"bstmeasure", "rebuild", "--pre", "10,5,3,7,15,12,18", "--in", "3,5,7,10,12,15,18"},
		{"bstmeasure", "rebuild", "--post", "3,7,5,12,18,15,10", "--in", "3,5,7,10,12,15,18"},
	} {
		if err := run(args); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}
}

func TestRun_InvalidRebuild(t *testing.T) {
	err := run([]string{"bstmeasure", "rebuild", "--pre", "2,3,1", "--in", "1,2,3"})
	if !errors.Is(err, Trees.ErrInvalidInput) {
		t.Errorf("got %v", err)
	}
}
