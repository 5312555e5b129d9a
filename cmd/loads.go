package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/loads"
)

var (
	// Unfactored effects (kN or kN-m)
	loadEffects loads.Effects

	// Options
	loadsShowAll bool
	loadsGravity bool
	loadsUnit    string
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Factor load effects using SNI 1727 load combinations",
	Long: `Calculate the factored load effect (Pu or Mu) based on the strength
design load combinations of SNI 1727:2020 Section 2.3.1.

Provide unfactored effects from each load type in one unit (kN for
axial forces, kN-m for moments). The governing value can be passed to
the capacity checks as --pu or --mux.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  R  - Rain load
  W  - Wind load (signed)
  E  - Earthquake load (signed)

Examples:
  # Simple gravity loads (dead + live)
  steelcalc loads --dead 50 --live 30

  # With wind suction, show all combinations
  steelcalc loads --dead 10 --wind -80 --all

  # Axial forces instead of moments
  steelcalc loads --dead 120 --live 80 --unit kN`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&loadEffects.Dead, "dead", "D", 0, "Effect of dead load")
	loadsCmd.Flags().Float64VarP(&loadEffects.Live, "live", "L", 0, "Effect of live load")
	loadsCmd.Flags().Float64Var(&loadEffects.Roof, "roof", 0, "Effect of roof live load")
	loadsCmd.Flags().Float64Var(&loadEffects.Rain, "rain", 0, "Effect of rain load")
	loadsCmd.Flags().Float64VarP(&loadEffects.Wind, "wind", "W", 0, "Effect of wind load")
	loadsCmd.Flags().Float64VarP(&loadEffects.Earthquake, "earthquake", "E", 0, "Effect of earthquake load")

	loadsCmd.Flags().BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVarP(&loadsGravity, "simplified", "s", false, "Use gravity combinations only (1.4D and 1.2D+1.6L)")
	loadsCmd.Flags().StringVar(&loadsUnit, "unit", "kN-m", "Unit label of the effects")
}

func runLoads(cmd *cobra.Command, args []string) error {
	combinations := loads.Basic
	if loadsGravity {
		combinations = loads.Gravity
	}

	env, err := loads.Factor(loadEffects, combinations)
	if errors.Is(err, loads.ErrNoEffects) {
		return fmt.Errorf("please provide at least one unfactored effect, see 'steelcalc loads --help'")
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SNI 1727:2020 FACTORED LOAD EFFECT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Printf("UNFACTORED EFFECTS (%s):\n", loadsUnit)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", loadEffects.Dead},
		{"Live Load (L)", loadEffects.Live},
		{"Roof Live Load (Lr)", loadEffects.Roof},
		{"Rain Load (R)", loadEffects.Rain},
		{"Wind Load (W)", loadEffects.Wind},
		{"Earthquake Load (E)", loadEffects.Earthquake},
	} {
		if row.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", row.label, row.value)
		}
	}
	w.Flush()
	fmt.Println()

	governing := env.Governing()
	if loadsShowAll {
		fmt.Println("LOAD COMBINATIONS (SNI 1727:2020 Section 2.3.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tValue (%s)\n", loadsUnit)
		fmt.Fprintf(w, "  ─\t───────────\t──────────\n")
		for _, f := range env.Values {
			marker := ""
			if f.Combination.ID == governing.Combination.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", f.Combination.ID, f.Combination.Description, f.Value, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Maximum: %.2f %s  (%s)\n", env.Max.Value, loadsUnit, env.Max.Combination.Description)
	fmt.Printf("  Minimum: %.2f %s  (%s)\n", env.Min.Value, loadsUnit, env.Min.Combination.Description)
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.Combination.ID, governing.Combination.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED EFFECT = %.2f %s  \n", governing.Value, loadsUnit)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
	return nil
}
