// Package main provides the CLI entry point for budgetbox-go.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budgetbox/budgetbox-go/internal/web"
	"github.com/budgetbox/budgetbox-go/logging"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/output"
)

var (
	outputPath string
	jsonPath   string
	title      string
	logoURL    string
	policyPath string
	headerRow  int
	verbose    bool
	addr       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "budgetbox",
		Short: "Turn budget proposal exports into client-facing PDFs",
		Long: `budgetbox-go normalizes a tabular budget/proposal export, splits it
into named sub-tables at total rows, reconciles footer totals, and renders
a landscape PDF.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline warnings to stderr")

	generateCmd := &cobra.Command{
		Use:   "generate [input.xlsx|input.csv]",
		Short: "Generate a proposal PDF from a budget export",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "PDF output path (default: input name with .pdf)")
	generateCmd.Flags().StringVar(&jsonPath, "json", "", "Also write reconciled segments as JSON to this path")
	generateCmd.Flags().StringVar(&title, "title", "", "Document title (default: input file name)")
	generateCmd.Flags().StringVar(&logoURL, "logo", "", "Logo URL to place above the title")
	generateCmd.Flags().StringVar(&policyPath, "policy", "", "YAML file with recompute/carry_forward column lists")
	generateCmd.Flags().IntVar(&headerRow, "header-row", 0, "1-based row holding column names (default 2)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive upload/edit/generate surface",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&policyPath, "policy", "", "YAML file with recompute/carry_forward column lists")

	rootCmd.AddCommand(generateCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildOptions() (budgetbox.Options, error) {
	opts := budgetbox.DefaultOptions()
	opts.HeaderRow = headerRow
	if policyPath != "" {
		p, err := budgetbox.LoadPolicy(policyPath)
		if err != nil {
			return opts, fmt.Errorf("load policy: %w", err)
		}
		opts.Policy = &p
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	segments, err := budgetbox.Build(inputPath, opts)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if jsonPath != "" {
		data, err := output.ToJSON(segments, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write json: %w", err)
		}
	}

	docTitle := title
	if docTitle == "" {
		base := filepath.Base(inputPath)
		docTitle = strings.TrimSuffix(base, filepath.Ext(base))
	}
	pdfPath := outputPath
	if pdfPath == "" {
		pdfPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".pdf"
	}

	f, err := os.Create(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	doc := output.Document{
		Title:       docTitle,
		Segments:    segments,
		LabelColumn: opts.EffectiveLabelColumn(),
		Policy:      opts.EffectivePolicy(),
		LogoURL:     logoURL,
	}
	if err := output.RenderPDF(f, doc); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Printf("wrote %s (%d tables)\n", pdfPath, len(segments))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}
	srv := web.NewServer(opts)
	fmt.Printf("listening on %s\n", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
