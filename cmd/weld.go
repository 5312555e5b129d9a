package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
)

var (
	weldType   string
	weldFexx   float64
	weldSize   float64
	weldLength float64
)

var weldCmd = &cobra.Command{
	Use:   "weld",
	Short: "Design strength of a fillet or groove weld",
	Long: `Calculate the design shear strength (φRn) of a weld.

The check follows SNI 1729:2020 Section J2:
  - Fillet: effective throat te = 0.707·w
  - Groove: effective throat te = w
  - J2-4:   Rn = 0.6·Fexx·te·L, φ = 0.75

Examples:
  # 6 mm fillet weld, 100 mm long, E70 electrode
  steelcalc weld --type fillet --size 6 --length 100

  # 10 mm groove weld with E60 electrode
  steelcalc weld --type groove --size 10 --length 200 --fexx 415`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(check.Check{
			Kind:     check.KindWeld,
			WeldType: weldType,
			Fexx:     weldFexx,
			Size:     weldSize,
			Length:   weldLength,
		})
	},
}

func init() {
	rootCmd.AddCommand(weldCmd)

	weldCmd.Flags().StringVarP(&weldType, "type", "t", "fillet", "Weld type (fillet or groove)")
	weldCmd.Flags().Float64Var(&weldFexx, "fexx", 0, "Electrode strength Fexx (MPa) [default from config]")
	weldCmd.Flags().Float64VarP(&weldSize, "size", "s", 0, "Weld size w (mm) [required]")
	weldCmd.Flags().Float64VarP(&weldLength, "length", "l", 0, "Weld length L (mm) [required]")
	addReportFlags(weldCmd)

	weldCmd.MarkFlagRequired("size")
	weldCmd.MarkFlagRequired("length")
}
