// Package cli provides the command-line interface for Hueforge.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/hueforge/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global colour-space flag shared by all generator commands.
	globalSpace string

	// logger is configured from the verbose/quiet flags before any
	// command runs.
	logger hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "hueforge",
		Short: "A perceptual colour palette engine",
		Long: `Hueforge is a perceptual colour computation engine: it generates palettes
from a base colour (harmonies, variations, tonal matrices, gradients),
produces seeded colour schemes from nothing at all, and extracts
dominant-colour palettes from images using k-means clustering.

All palette maths runs in the OKLCH colour space by default, with HSL
available for classic colour-wheel behaviour.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			quiet, _ := cmd.Flags().GetBool("quiet")

			level := hclog.Info
			if verbose {
				level = hclog.Debug
			}
			if quiet {
				level = hclog.Error
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "hueforge",
				Output: os.Stderr,
				Level:  level,
			})
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVarP(&globalSpace, "space", "s", "oklch", "working colour space (oklch, hsl)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(interpolateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(contrastCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
