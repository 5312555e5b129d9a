package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of steelcalc",
	// No configuration or catalog is needed to print the version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Steel Capacity Calculator")
		fmt.Printf("Based on %s (Spesifikasi untuk bangunan gedung baja struktural)\n", version.Standard)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
