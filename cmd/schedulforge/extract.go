package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/schedulforge-go/internal/config"
	"github.com/ukaji3/schedulforge-go/internal/logger"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/document"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/output"
)

// loadInput validates the input path, loads configuration and opens the
// workbook.
func loadInput(path string) (*config.Config, document.Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("file not found: %s", path)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.Logging.Level, "console")

	doc, err := schedulforge.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, doc, nil
}

func runSheets(cmd *cobra.Command, args []string) error {
	_, doc, err := loadInput(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	sheets := schedulforge.ListSheets(doc)
	if sheetsFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), models.SheetList{Sheets: sheets})
	}
	return output.WriteSheets(cmd.OutOrStdout(), sheets)
}

func runGroups(cmd *cobra.Command, args []string) error {
	cfg, doc, err := loadInput(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	sel, err := parseSheetArg(sheetArg)
	if err != nil {
		return err
	}

	groups, err := schedulforge.ListTutorialGroups(doc, sel, cfg.ExtractOptions())
	if err != nil {
		return err
	}
	if groupsFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), groups)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(groups.TutorialGroups, "\n"))
	return err
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, doc, err := loadInput(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	opts := cfg.ExtractOptions()
	if raw {
		opts.Raw = true
	}

	// Prompt for anything missing
	in := bufio.NewReader(cmd.InOrStdin())
	if sheetArg == "" {
		if sheetArg, err = promptSheet(in, cmd.ErrOrStderr(), schedulforge.ListSheets(doc)); err != nil {
			return err
		}
	}
	if groupArg == "" {
		if groupArg, err = prompt(in, cmd.ErrOrStderr(), "Enter your tutorial group (e.g., 2O34): "); err != nil {
			return err
		}
	}

	sel, err := parseSheetArg(sheetArg)
	if err != nil {
		return err
	}
	sel.TutorialGroup = groupArg

	tt, err := schedulforge.Extract(doc, sel, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	log := logger.Get()
	for _, f := range tt.Flagged {
		log.Warn().Str("day", f.Day).Str("time", f.Time).Int("row", f.Row).Str("content", f.Content).
			Msg("Unrecognized timetable label")
	}

	var buf bytes.Buffer
	switch extractFormat {
	case "text":
		err = output.WriteText(&buf, tt)
	case "json":
		err = writeJSON(&buf, tt)
	default:
		return fmt.Errorf("invalid format: %s (must be json or text)", extractFormat)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

// parseSheetArg accepts a sheet number or a sheet name.
func parseSheetArg(arg string) (schedulforge.Selection, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return schedulforge.Selection{}, fmt.Errorf("a sheet is required (use --sheet)")
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return schedulforge.Selection{SheetChoice: n}, nil
	}
	return schedulforge.Selection{SheetName: arg}, nil
}

func promptSheet(in *bufio.Reader, out io.Writer, sheets []models.SheetEntry) (string, error) {
	fmt.Fprintln(out, "Available sheets in workbook:")
	if err := output.WriteSheets(out, sheets); err != nil {
		return "", err
	}
	for {
		answer, err := prompt(in, out, "Enter the number corresponding to your batch sheet: ")
		if err != nil {
			return "", err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr == nil && n >= 1 && n <= len(sheets) {
			return answer, nil
		}
		fmt.Fprintln(out, "Invalid choice. Please enter a number from the list.")
	}
}

func prompt(in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("no input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
