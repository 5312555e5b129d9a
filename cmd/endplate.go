package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
)

var (
	endPlateBeam    string
	endPlateMu      float64
	endPlateDb      float64
	endPlateBolts   int
	endPlateTp      float64
	endPlateFnt     float64
	endPlatePlateFy float64
)

var endPlateCmd = &cobra.Command{
	Use:   "endplate",
	Short: "Moment end plate bolt tension and plate thickness",
	Long: `Check the tension bolts of an extended moment end plate and screen
the plate thickness against the bolt diameter.

  - Lever arm = d - tf
  - Tu per bolt = (Mu / arm) / n
  - J3-1: φRn = 0.75 · Fnt · Ab
  - The plate is taken as adequate when tp ≥ db

Examples:
  # WF 200x100 beam, 20 kN-m, four M16 bolts, 16 mm plate
  steelcalc endplate -p "WF 200x100" --mu 20 --db 16 -n 4 --tp 16`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(check.Check{
			Kind:    check.KindEndPlate,
			Profile: endPlateBeam,
			Mu:      endPlateMu,
			Db:      endPlateDb,
			N:       endPlateBolts,
			Tp:      endPlateTp,
			Fnt:     endPlateFnt,
			PlateFy: endPlatePlateFy,
		})
	},
}

func init() {
	rootCmd.AddCommand(endPlateCmd)

	endPlateCmd.Flags().StringVarP(&endPlateBeam, "profile", "p", "", "Beam section from the catalog [required]")
	endPlateCmd.Flags().Float64Var(&endPlateMu, "mu", 0, "Factored moment Mu (kN-m) [required]")
	endPlateCmd.Flags().Float64VarP(&endPlateDb, "db", "d", 0, "Bolt diameter db (mm) [required]")
	endPlateCmd.Flags().IntVarP(&endPlateBolts, "count", "n", 4, "Number of tension bolts")
	endPlateCmd.Flags().Float64Var(&endPlateTp, "tp", 0, "Plate thickness tp (mm) [required]")
	endPlateCmd.Flags().Float64Var(&endPlateFnt, "fnt", 0, "Nominal tensile stress Fnt (MPa) [default from config]")
	endPlateCmd.Flags().Float64Var(&endPlatePlateFy, "plate-fy", 0, "Plate yield strength (MPa) [default from config]")
	addReportFlags(endPlateCmd)

	endPlateCmd.MarkFlagRequired("profile")
	endPlateCmd.MarkFlagRequired("mu")
	endPlateCmd.MarkFlagRequired("db")
	endPlateCmd.MarkFlagRequired("tp")
}
