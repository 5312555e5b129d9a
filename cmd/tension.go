package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
)

var (
	tensionProfile string
	tensionAg      float64
	tensionAe      float64
)

var tensionCmd = &cobra.Command{
	Use:   "tension",
	Short: "Design tensile strength of a member",
	Long: `Calculate the design tensile strength (φPn) of a member as the
lesser of gross section yielding and net section rupture.

The check follows SNI 1729:2020 Chapter D:
  - D2(a): Tensile yielding, φ = 0.90, Pn = Fy·Ag
  - D2(b): Tensile rupture,  φ = 0.75, Pn = Fu·Ae

Either name a profile, whose gross area is used, or give Ag directly.
The effective net area Ae defaults to Ag.

Examples:
  # WF 200x100 with the default BJ 37 steel
  steelcalc tension --profile "WF 200x100"

  # Plate with holes, explicit areas
  steelcalc tension --ag 2000 --ae 1700 --fy 240 --fu 370`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(check.Check{
			Kind:    check.KindTension,
			Profile: tensionProfile,
			Ag:      tensionAg,
			Ae:      tensionAe,
		})
	},
}

func init() {
	rootCmd.AddCommand(tensionCmd)

	tensionCmd.Flags().StringVarP(&tensionProfile, "profile", "p", "", "Section name from the catalog")
	tensionCmd.Flags().Float64Var(&tensionAg, "ag", 0, "Gross area Ag (mm²) [default from profile]")
	tensionCmd.Flags().Float64Var(&tensionAe, "ae", 0, "Effective net area Ae (mm²) [default Ag]")

	addFyFlag(tensionCmd)
	tensionCmd.Flags().Float64Var(&checkMatFu, "fu", 0, "Tensile strength Fu (MPa) [default from config]")
	addReportFlags(tensionCmd)

	tensionCmd.MarkFlagsOneRequired("profile", "ag")
}
