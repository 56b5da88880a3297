package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/baum/formatter"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var traceLevel string

// consoleConfig creates the configuration for console output.
var consoleConfig = formatter.ConfigFromTerminal

var rootCmd = &cobra.Command{
	Use:          "baum",
	Short:        "Build, inspect and print n-ary trees",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupTracing(traceLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&traceLevel, "trace", "t", "error",
		"trace level: debug, info or error")
	rootCmd.AddCommand(demoCmd, showCmd, bstCmd)
}

func setupTracing(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error", "":
		l = tracing.LevelError
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	return nil
}
