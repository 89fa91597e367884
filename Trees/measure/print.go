package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/g-m-twostay/go-rbtree/Trees"
)

var redNode = color.New(color.FgRed, color.Bold).SprintFunc()

// printTree writes t in pre-order, one node per line, indented by depth.
// Red nodes are colored when the terminal supports it.
func printTree(w io.Writer, t Trees.Tree[int]) {
	t.Walk(func(v int, red bool, depth int) {
		label := fmt.Sprintf("%d (B)", v)
		if red {
			label = redNode(fmt.Sprintf("%d (R)", v))
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), label)
	})
}
