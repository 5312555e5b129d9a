package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
)

var (
	boltDiameter float64
	boltCount    int
	boltFnv      float64
)

var boltCmd = &cobra.Command{
	Use:   "bolt",
	Short: "Design shear strength of a bolt group",
	Long: `Calculate the design shear strength (φRn) of a group of bolts in
single shear.

The check follows SNI 1729:2020 Section J3.6:
  - Ab = π·db²/4
  - J3-1: Rn = Fnv·Ab·n, φ = 0.75

Examples:
  # Four M16 A325 bolts, threads included (Fnv = 372 MPa)
  steelcalc bolt --db 16 -n 4

  # Threads excluded from the shear plane
  steelcalc bolt --db 20 -n 6 --fnv 457`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(check.Check{
			Kind: check.KindBolt,
			Db:   boltDiameter,
			N:    boltCount,
			Fnv:  boltFnv,
		})
	},
}

func init() {
	rootCmd.AddCommand(boltCmd)

	boltCmd.Flags().Float64VarP(&boltDiameter, "db", "d", 0, "Bolt diameter db (mm) [required]")
	boltCmd.Flags().IntVarP(&boltCount, "count", "n", 1, "Number of bolts")
	boltCmd.Flags().Float64Var(&boltFnv, "fnv", 0, "Nominal shear stress Fnv (MPa) [default from config]")
	addReportFlags(boltCmd)

	boltCmd.MarkFlagRequired("db")
}
