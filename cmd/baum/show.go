package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/baum"
	"github.com/npillmayer/baum/formatter"
	"github.com/npillmayer/baum/html"
	"github.com/npillmayer/baum/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/spf13/cobra"
)

var showDot bool

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Load a tree from an outline, YAML or HTML file and print it",
	Long: `Load a tree from a file and print it.

Files ending in .yaml or .yml are read as YAML documents, files ending in
.html or .htm as HTML fragments. Any other file is read as a text outline,
where indentation denotes nesting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(args[0])
		if err != nil {
			return err
		}
		if showDot {
			return baum.Tree2Dot(tree, cmd.OutOrStdout())
		}
		return formatter.Output(tree, cmd.OutOrStdout(), consoleConfig(),
			formatter.NewConsole(nil))
	},
}

func init() {
	showCmd.Flags().BoolVar(&showDot, "dot", false, "write Graphviz DOT instead of text")
}

func loadTree(name string) (*baum.ArrayTree[string], error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return html.FromHTML(f)
	case ".yaml", ".yml":
		return load(name, textfile.LoadYAML)
	}
	return load(name, textfile.Load)
}

// load calls a loader with a caster and traces every node it publishes.
func load(name string, loader func(string, *caster.Caster) (*baum.ArrayTree[string], error)) (
	*baum.ArrayTree[string], error) {
	//
	cast := caster.New(nil)
	ch, ok := cast.Sub(context.Background(), 64)
	if !ok {
		return nil, fmt.Errorf("cannot subscribe to loader events")
	}
	done := make(chan int)
	go func() {
		count := 0
		for msg := range ch {
			if a, ok := msg.(textfile.Attached); ok {
				gtrace.CoreTracer.Debugf("%*s%s", a.Depth*2, "", strings.TrimSuffix(a.Node.Summary(), "\n"))
				count++
			}
		}
		done <- count
	}()
	tree, err := loader(name, cast)
	cast.Close()
	count := <-done
	if err != nil {
		return nil, err
	}
	gtrace.CoreTracer.Infof("loaded %d nodes from %s", count, name)
	return tree, nil
}
