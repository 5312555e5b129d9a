package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
)

// Report flags shared by every calculation command
var (
	pdfFile    string
	pdfProject string
	checkName  string
	checkMatFy float64
	checkMatFu float64
)

func addReportFlags(c *cobra.Command) {
	c.Flags().StringVar(&pdfFile, "pdf", "", "Export a PDF calculation report to this file")
	c.Flags().StringVar(&pdfProject, "project", "", "Project name printed on the PDF report")
	c.Flags().StringVar(&checkName, "name", "", "Name of the check shown in logs")
}

func addFyFlag(c *cobra.Command) {
	c.Flags().Float64Var(&checkMatFy, "fy", 0, "Yield strength Fy (MPa) [default from config]")
}

// runCheck evaluates c, prints the console report and writes the optional
// PDF.
func runCheck(c check.Check) error {
	c.Name = checkName
	c.Fy = checkMatFy
	c.Fu = checkMatFu

	logger.Debug("running check", zap.String("kind", string(c.Kind)), zap.String("check", c.Label()))
	ev, err := eval.Evaluate(c)
	if err != nil {
		return err
	}
	logger.Info("check complete",
		zap.String("check", c.Label()),
		zap.String("status", ev.Record.Verdict().String()))

	if err := report.WriteText(os.Stdout, ev.Inputs, ev.Record); err != nil {
		return err
	}

	if pdfFile != "" {
		doc := report.NewDocument(pdfProject, ev.Inputs, ev.Record)
		if err := doc.SavePDF(pdfFile); err != nil {
			return fmt.Errorf("error exporting report: %w", err)
		}
		fmt.Printf("Report exported to: %s\n", pdfFile)
	}
	return nil
}
