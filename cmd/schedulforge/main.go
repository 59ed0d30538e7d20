// Package main provides the CLI entry point for schedulforge-go.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	outputPath    string
	pretty        bool
	sheetsFormat  string
	groupsFormat  string
	extractFormat string
	sheetArg      string
	groupArg      string
	raw           bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schedulforge",
		Short: "Extract tutorial group timetables from batch timetable workbooks",
		Long: `schedulforge-go reads a university timetable workbook (one sheet per batch)
and extracts the weekly schedule of a single tutorial group.`,
		SilenceUsage: true,
	}

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List selectable timetable sheets",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}
	sheetsCmd.Flags().StringVar(&sheetsFormat, "format", "text", "Output format: text, json")

	groupsCmd := &cobra.Command{
		Use:   "groups [input.xlsx]",
		Short: "List tutorial groups of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runGroups,
	}
	groupsCmd.Flags().StringVarP(&sheetArg, "sheet", "s", "", "Sheet number (from 'sheets') or name")
	groupsCmd.Flags().StringVar(&groupsFormat, "format", "text", "Output format: text, json")

	extractCmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract the timetable of one tutorial group",
		Long: `Extract the weekly timetable of one tutorial group. When --sheet or --group
is omitted the command asks for them interactively.`,
		Args: cobra.ExactArgs(1),
		RunE: runExtract,
	}
	extractCmd.Flags().StringVarP(&sheetArg, "sheet", "s", "", "Sheet number (from 'sheets') or name")
	extractCmd.Flags().StringVarP(&groupArg, "group", "g", "", "Tutorial group label, e.g. 2O34")
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().StringVar(&extractFormat, "format", "json", "Output format: json, text")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	extractCmd.Flags().BoolVar(&raw, "raw", false, "Keep one entry per slot instead of merging consecutive slots")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	rootCmd.AddCommand(sheetsCmd, groupsCmd, extractCmd, serveCmd)
	return rootCmd
}
