package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
)

var (
	basePlateColumn  string
	basePlatePu      float64
	basePlateFc      float64
	basePlateB       float64
	basePlateN       float64
	basePlatePlateFy float64
)

var basePlateCmd = &cobra.Command{
	Use:   "baseplate",
	Short: "Column base plate bearing and thickness",
	Long: `Check the concrete bearing under a concentrically loaded column base
plate and size the plate thickness.

The check follows SNI 1729:2020 Section J8 and AISC Design Guide 1:
  - J8-1: φPp = 0.65 · 0.85·f'c·A1
  - Cantilevers m = (N - 0.95d)/2, n = (B - 0.8bf)/2
  - t = l·√(2Pu / (0.9·Fy·B·N)), l = max(m, n)

Examples:
  # WF 200x100 column on a 250 x 300 mm plate, f'c = 25 MPa
  steelcalc baseplate -p "WF 200x100" --pu 400 --fc 25 -B 250 -N 300`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(check.Check{
			Kind:    check.KindBasePlate,
			Profile: basePlateColumn,
			Pu:      basePlatePu,
			Fc:      basePlateFc,
			B:       basePlateB,
			NN:      basePlateN,
			PlateFy: basePlatePlateFy,
		})
	},
}

func init() {
	rootCmd.AddCommand(basePlateCmd)

	basePlateCmd.Flags().StringVarP(&basePlateColumn, "profile", "p", "", "Column section from the catalog [required]")
	basePlateCmd.Flags().Float64Var(&basePlatePu, "pu", 0, "Factored axial load Pu (kN) [required]")
	basePlateCmd.Flags().Float64Var(&basePlateFc, "fc", 25, "Concrete compressive strength f'c (MPa)")
	basePlateCmd.Flags().Float64VarP(&basePlateB, "width", "B", 0, "Plate width B (mm) [required]")
	basePlateCmd.Flags().Float64VarP(&basePlateN, "length", "N", 0, "Plate length N (mm) [required]")
	basePlateCmd.Flags().Float64Var(&basePlatePlateFy, "plate-fy", 0, "Plate yield strength (MPa) [default from config]")
	addReportFlags(basePlateCmd)

	basePlateCmd.MarkFlagRequired("profile")
	basePlateCmd.MarkFlagRequired("pu")
	basePlateCmd.MarkFlagRequired("width")
	basePlateCmd.MarkFlagRequired("length")
}
