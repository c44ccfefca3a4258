package main

import (
	"github.com/spf13/cobra"

	"github.com/plainterms/plainterms/internal/static"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the site as static HTML",
		RunE:  runExport,
	}
	cmd.Flags().String("out", "dist", "output directory")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, cleanup, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	outDir, _ := cmd.Flags().GetString("out")
	exporter := static.New(a.db, a.render, a.log)
	report, err := exporter.Export(cmd.Context(), outDir)
	if err != nil {
		return err
	}

	cmd.Printf("exported %d pages to %s", len(report.Written), outDir)
	if len(report.Skipped) > 0 {
		cmd.Printf(" (%d skipped)", len(report.Skipped))
	}
	cmd.Println()
	return nil
}
