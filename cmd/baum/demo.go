package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/baum"
	"github.com/npillmayer/baum/formatter"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build two identical trees, compare and hash them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo(cmd.OutOrStdout(), consoleConfig())
	},
}

// sampleTree builds a root 4 with children 0…3, each of which has leaves 0…3.
func sampleTree() (*baum.ArrayTree[int], error) {
	root := baum.NewNode(4)
	for i := 0; i < 4; i++ {
		inner := baum.NewNode(i)
		for j := 0; j < 4; j++ {
			if err := inner.AddChild(baum.NewNode(j)); err != nil {
				return nil, err
			}
		}
		if err := root.AddChild(inner); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func demo(w io.Writer, config *formatter.Config) error {
	tree1, err := sampleTree()
	if err != nil {
		return err
	}
	tree2, err := sampleTree()
	if err != nil {
		return err
	}
	console := formatter.NewConsole(nil)
	if err = formatter.Output(tree1, w, config, console); err != nil {
		return err
	}
	fmt.Fprintf(w, "tree1 == tree2: %v\n", tree1.Equal(tree2))
	fmt.Fprintf(w, "hash(tree1) = %d\nhash(tree2) = %d\n", tree1.Hash(), tree2.Hash())
	if _, err = tree1.RemoveChild(0); err != nil {
		return err
	}
	fmt.Fprintln(w, "removed child #0 of tree1")
	fmt.Fprintf(w, "tree1 == tree2: %v\n", tree1.Equal(tree2))
	fmt.Fprintf(w, "hash(tree1) = %d\nhash(tree2) = %d\n", tree1.Hash(), tree2.Hash())
	return tree1.Check()
}
