package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
)

var (
	combinedProfile string
	combinedPu      float64
	combinedMux     float64
	combinedMuy     float64
	combinedL       float64
	combinedK       float64
	combinedCb      float64
)

var combinedCmd = &cobra.Command{
	Use:   "combined",
	Short: "Axial force and biaxial bending interaction",
	Long: `Check a beam-column under axial compression and biaxial bending
with the interaction equations of SNI 1729:2020 Chapter H.

  - H1-1a: Pr/Pc + 8/9 (Mrx/Mcx + Mry/Mcy) ≤ 1.0   when Pr/Pc ≥ 0.2
  - H1-1b: Pr/2Pc + (Mrx/Mcx + Mry/Mcy) ≤ 1.0     when Pr/Pc < 0.2

Pc is the compressive strength over length L, Mcx the flexural strength
with Lb = L and Mcy = 0.9·Fy·Zy.

Examples:
  # Column with 100 kN axial load and 20 kN-m strong-axis moment
  steelcalc combined -p "WF 200x100" --pu 100 --mux 20 --muy 3 -l 3000

  # Export the calculation report
  steelcalc combined -p "WF 250x125" --pu 250 --mux 35 -l 4000 --pdf column.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(check.Check{
			Kind:    check.KindCombined,
			Profile: combinedProfile,
			Pu:      combinedPu,
			Mux:     combinedMux,
			Muy:     combinedMuy,
			L:       combinedL,
			K:       combinedK,
			Cb:      combinedCb,
		})
	},
}

func init() {
	rootCmd.AddCommand(combinedCmd)

	combinedCmd.Flags().StringVarP(&combinedProfile, "profile", "p", "", "Section name from the catalog [required]")
	combinedCmd.Flags().Float64Var(&combinedPu, "pu", 0, "Factored axial compression Pu (kN)")
	combinedCmd.Flags().Float64Var(&combinedMux, "mux", 0, "Factored moment about x Mux (kN-m)")
	combinedCmd.Flags().Float64Var(&combinedMuy, "muy", 0, "Factored moment about y Muy (kN-m)")
	combinedCmd.Flags().Float64VarP(&combinedL, "length", "l", 0, "Member length L (mm) [required]")
	combinedCmd.Flags().Float64Var(&combinedK, "k", 1, "Effective length factor K")
	combinedCmd.Flags().Float64Var(&combinedCb, "cb", 1, "Moment gradient factor Cb")
	addFyFlag(combinedCmd)
	addReportFlags(combinedCmd)

	combinedCmd.MarkFlagRequired("profile")
	combinedCmd.MarkFlagRequired("length")
}
