package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
)

var (
	compressionProfile string
	compressionK       float64
	compressionL       float64
	compressionKx      float64
	compressionLx      float64
	compressionKy      float64
	compressionLy      float64
)

var compressionCmd = &cobra.Command{
	Use:   "compression",
	Short: "Design compressive strength of a column",
	Long: `Calculate the design compressive strength (φPn) of a WF column
for flexural buckling about the governing axis.

The check follows SNI 1729:2020 Chapter E:
  - E3-4: Elastic buckling stress Fe = π²E / (KL/r)²
  - E3-2: Inelastic buckling when KL/r ≤ 4.71√(E/Fy)
  - E3-3: Elastic buckling otherwise
  - φ = 0.90

K and L apply to both axes unless --kx/--lx or --ky/--ly override them.

Examples:
  # Pinned column, 3 m high
  steelcalc compression -p "WF 200x100" -l 3000

  # Braced at mid height about the weak axis
  steelcalc compression -p "WF 250x125" -l 4000 --ly 2000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(check.Check{
			Kind:    check.KindCompression,
			Profile: compressionProfile,
			K:       compressionK,
			L:       compressionL,
			Kx:      compressionKx,
			Lx:      compressionLx,
			Ky:      compressionKy,
			Ly:      compressionLy,
		})
	},
}

func init() {
	rootCmd.AddCommand(compressionCmd)

	compressionCmd.Flags().StringVarP(&compressionProfile, "profile", "p", "", "Section name from the catalog [required]")
	compressionCmd.Flags().Float64Var(&compressionK, "k", 1, "Effective length factor K")
	compressionCmd.Flags().Float64VarP(&compressionL, "length", "l", 0, "Unbraced length L (mm) [required]")
	compressionCmd.Flags().Float64Var(&compressionKx, "kx", 0, "Effective length factor about x [default K]")
	compressionCmd.Flags().Float64Var(&compressionLx, "lx", 0, "Unbraced length about x (mm) [default L]")
	compressionCmd.Flags().Float64Var(&compressionKy, "ky", 0, "Effective length factor about y [default K]")
	compressionCmd.Flags().Float64Var(&compressionLy, "ly", 0, "Unbraced length about y (mm) [default L]")

	addFyFlag(compressionCmd)
	addReportFlags(compressionCmd)

	compressionCmd.MarkFlagRequired("profile")
	compressionCmd.MarkFlagRequired("length")
}
