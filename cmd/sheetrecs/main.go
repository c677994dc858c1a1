// Package main provides the CLI entry point for sheetrecs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sheetrecs/sheetrecs-go/pkg/sheetrecs"
	"github.com/sheetrecs/sheetrecs-go/pkg/sheetrecs/models"
	"github.com/sheetrecs/sheetrecs-go/pkg/sheetrecs/output"
)

var (
	outputPath string
	pretty     bool
	source     string
	sheetsDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetrecs [input.xlsx]",
		Short: "Convert spreadsheet workbooks to JSON records grouped by sheet",
		Long: `sheetrecs decodes an xlsx workbook without a spreadsheet engine and emits
one JSON array of header-keyed records per sheet, wrapped in a document
with source and generation metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&source, "source", "", "Source identifier recorded in the document (default: input path)")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	wb, err := sheetrecs.Decode(inputPath)
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}

	src := source
	if src == "" {
		src = inputPath
	}
	doc := sheetrecs.NewDocument(src, wb)

	jsonData, err := output.ToJSON(&doc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		printSummary(wb, outputPath)
	} else if sheetsDir == "" {
		fmt.Println(string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

// printSummary reports the written file and per-sheet record counts.
func printSummary(wb *models.Workbook, outPath string) {
	color.New(color.FgGreen).Printf("Written %s\n", outPath)
	dim := color.New(color.FgHiBlack)
	for _, name := range wb.Names() {
		records, _ := wb.Sheet(name)
		dim.Printf("- %s: %d rows\n", name, len(records))
	}
}

func writeSheetFiles(wb *models.Workbook, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, name := range wb.Names() {
		records, _ := wb.Sheet(name)
		jsonData, err := output.SheetToJSON(records, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
