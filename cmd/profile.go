package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/diagram"
)

var (
	profilePrefix      string
	profileExportFile  string
	profileShowDiagram bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Browse the steel section catalog",
	Long: `List, inspect and draw the hot-rolled sections available to the
capacity checks.

The embedded catalog holds common WF sections. Point catalog.path in the
config file (or STEELCALC_CATALOG_PATH) at a CSV or XLSX file with the
same columns to use your own.

Subcommands:
  list  - List sections, optionally filtered by name prefix
  show  - Print primary and derived properties of a section
  draw  - Export a dimensioned drawing of a section`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog sections",
	Long: `List catalog sections with their main dimensions.

Examples:
  steelcalc profile list
  steelcalc profile list --prefix "WF 300"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sections := eval.Catalog.All()
		if profilePrefix != "" {
			sections = eval.Catalog.Filter(profilePrefix)
		}
		if len(sections) == 0 {
			fmt.Printf("No sections match %q.\n", profilePrefix)
			return
		}

		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tkg/m\td (mm)\tbf (mm)\ttw (mm)\ttf (mm)\tZx (cm³)\n")
		fmt.Fprintf(w, "  ────\t────\t──────\t───────\t───────\t───────\t────────\n")
		for _, s := range sections {
			fmt.Fprintf(w, "  %s\t%.1f\t%.0f\t%.0f\t%.1f\t%.1f\t%.0f\n",
				s.Name(), s.Weight(), s.D(), s.Bf(), s.Tw(), s.Tf(), s.Zx()/1e3)
		}
		w.Flush()
		fmt.Printf("\n  %d section(s)\n\n", len(sections))
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show section properties",
	Long: `Print the tabulated and derived properties of a catalog section.

Examples:
  steelcalc profile show "WF 200x100"
  steelcalc profile show "wf 250x125" --diagram=false`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := eval.Catalog.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Printf("     SECTION PROPERTIES - %s\n", s.Name())
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Println()

		fmt.Println("DIMENSIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Weight:\t%.1f kg/m\n", s.Weight())
		fmt.Fprintf(w, "  Depth (d):\t%.0f mm\n", s.D())
		fmt.Fprintf(w, "  Flange Width (bf):\t%.0f mm\n", s.Bf())
		fmt.Fprintf(w, "  Web Thickness (tw):\t%.1f mm\n", s.Tw())
		fmt.Fprintf(w, "  Flange Thickness (tf):\t%.1f mm\n", s.Tf())
		fmt.Fprintf(w, "  Area (Ag):\t%.0f mm²\n", s.Ag())
		fmt.Fprintf(w, "  Ix / Iy:\t%.4g / %.4g mm⁴\n", s.Ix(), s.Iy())
		fmt.Fprintf(w, "  rx / ry:\t%.1f / %.1f mm\n", s.Rx(), s.Ry())
		fmt.Fprintf(w, "  Zx / Zy:\t%.4g / %.4g mm³\n", s.Zx(), s.Zy())
		w.Flush()
		fmt.Println()

		fmt.Println("DERIVED PROPERTIES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Sx / Sy:\t%.4g / %.4g mm³\n", s.Sx(), s.Sy())
		fmt.Fprintf(w, "  h0 (flange centroids):\t%.1f mm\n", s.H0())
		fmt.Fprintf(w, "  Torsion constant (J):\t%.4g mm⁴\n", s.J())
		fmt.Fprintf(w, "  Warping constant (Cw):\t%.4g mm⁶\n", s.Cw())
		fmt.Fprintf(w, "  rts:\t%.2f mm\n", s.Rts())
		w.Flush()
		if s.RtsFallback() {
			fmt.Println("  Note: rts could not be derived, ry is used instead.")
		}
		fmt.Println()

		if profileShowDiagram {
			fmt.Println(diagram.DrawSection(s))
		}
		return nil
	},
}

var profileDrawCmd = &cobra.Command{
	Use:   "draw <name>",
	Short: "Export a section drawing",
	Long: `Export a dimensioned drawing of a catalog section.

The format follows the file extension: png, svg or pdf.

Examples:
  steelcalc profile draw "WF 200x100" -o wf200.png
  steelcalc profile draw "WF 300x150" -o drawings/wf300.svg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := eval.Catalog.Get(args[0])
		if err != nil {
			return err
		}
		if err := diagram.ExportSection(s, profileExportFile); err != nil {
			return fmt.Errorf("error exporting diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", profileExportFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd, profileShowCmd, profileDrawCmd)

	profileListCmd.Flags().StringVar(&profilePrefix, "prefix", "", "Only list sections whose name starts with this prefix")
	profileShowCmd.Flags().BoolVar(&profileShowDiagram, "diagram", true, "Show ASCII section outline")
	profileDrawCmd.Flags().StringVarP(&profileExportFile, "output", "o", "", "Output file (png, svg, pdf) [required]")

	profileDrawCmd.MarkFlagRequired("output")
}
