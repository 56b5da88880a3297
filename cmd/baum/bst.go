package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/baum/bst"
	"github.com/npillmayer/baum/formatter"
	"github.com/spf13/cobra"
)

var bstCmd = &cobra.Command{
	Use:   "bst N...",
	Short: "Insert integers into a binary search tree and print it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := bst.New[bst.IntComparable]()
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("not an integer: %q", arg)
			}
			t.Insert(bst.IntComparable(n))
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%d keys, height %d\n", t.Len(), t.Height())
		return formatter.Output(bst.ToArrayTree(t), w, consoleConfig(),
			formatter.NewConsole(nil))
	},
}
