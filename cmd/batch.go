package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/version"
)

var (
	batchOutFile string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <job-file>",
	Short: "Run a job file of checks",
	Long: `Run every check listed in a YAML or Excel job file concurrently and
print a summary. Failed checks are reported and do not stop the batch.

YAML job file structure:
  name: level 2 frame
  checks:
    - name: B1
      kind: flexure
      profile: WF 300x150
      lb: 3000
    - name: C1
      kind: combined
      profile: WF 250x125
      pu: 250
      mux: 35
      l: 4000

An Excel job file has one check per row with the same field names as
column headers.

Examples:
  steelcalc batch frame.yaml
  steelcalc batch frame.xlsx --out results.xlsx --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchOutFile, "out", "o", "", "Write results to an Excel workbook")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Checks evaluated in parallel [default from config]")
}

func runBatch(cmd *cobra.Command, args []string) error {
	job, err := check.LoadJob(args[0])
	if err != nil {
		return err
	}

	workers := batchWorkers
	if workers == 0 {
		workers = cfg.Batch.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("job loaded", zap.String("file", args[0]), zap.String("job", job.Name))

	batch, runErr := eval.Run(ctx, job.Checks, workers, logger)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	passed, failed, errored := batch.Summary()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	if job.Name != "" {
		fmt.Printf("     BATCH CHECK - %s\n", job.Name)
	} else {
		fmt.Printf("     BATCH CHECK - %s\n", version.Standard)
	}
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCheck\tKind\tResult\tStatus\n")
	fmt.Fprintf(w, "  ─\t─────\t────\t──────\t──────\n")
	for i, o := range batch.Outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "  %d\t%s\t%s\t%v\t✗ ERROR\n", i+1, o.Check.Label(), o.Check.Kind, o.Err)
			continue
		}
		fields := o.Evaluation.Record.Fields()
		result := ""
		if len(fields) > 0 {
			last := fields[len(fields)-1]
			result = fmt.Sprintf("%s = %s", last.Label, last.Display())
		}
		mark := "✓"
		if !o.Passed() {
			mark = "✗"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s %s\n", i+1, o.Check.Label(), o.Check.Kind, result, mark, o.Evaluation.Record.Verdict())
	}
	w.Flush()
	fmt.Println()
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Passed: %d   Failed: %d   Errors: %d   (%s)\n", passed, failed, errored, batch.Duration.Round(time.Millisecond))
	fmt.Println()

	if batchOutFile != "" {
		if err := check.WriteXLSX(batchOutFile, batch); err != nil {
			return fmt.Errorf("error writing results: %w", err)
		}
		fmt.Printf("Results written to: %s\n", batchOutFile)
	}

	if runErr != nil {
		return fmt.Errorf("batch interrupted: %w", runErr)
	}
	return nil
}
