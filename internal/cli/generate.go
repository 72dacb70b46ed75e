package cli

import (
	"fmt"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Generate command flags
	generateKind    string
	generateType    string
	generateCount   int
	generateSpread  float64
	generateSteps   []int
	generateHues    string
	generateHueN    int
	generateSeed    int64
	generateShuffle bool
	generateFormat  string
	generateOutput  string
	generatePreview bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [base-colour]",
	Short: "Generate a colour palette",
	Long: `Generate a colour palette from a base colour, or from nothing at all.

The base colour accepts any hex, rgb(), hsl() or oklch() literal. The
colourful kind needs no base colour and is driven by a seed instead.

Kinds:
  harmony      colour-wheel harmonies (complementary, split-complementary,
               triadic, tetradic, analogous, golden-ratio)
  variation    curves over the base colour (monochromatic, shades, tints,
               tones, temperature, saturation-gradient, lightness-gradient)
  matrix       tonal matrix (steps x hues; hue presets: base, triadic,
               tetradic, even)
  colourful    base-free palettes (spectrum, vibrant, pastel, dark, neon,
               warm, cool, earth, random)

Examples:
  # Triadic harmony from a hex base
  hueforge generate --kind harmony --type triadic "#6366f1"

  # 12 analogous colours in HSL space
  hueforge generate -s hsl --kind harmony --type analogous --spread 15 "#aa3355"

  # Tonal matrix with triadic hue rows, as CSS custom properties
  hueforge generate --kind matrix --hues triadic --format css "oklch(0.58 0.19 275)"

  # Reproducible pastel scheme, no base colour
  hueforge generate --kind colourful --type pastel --count 6 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateKind, "kind", "k", "harmony", "generator kind (harmony, variation, matrix, colourful)")
	generateCmd.Flags().StringVarP(&generateType, "type", "t", "", "generator type within the kind")
	generateCmd.Flags().IntVarP(&generateCount, "count", "c", 0, "number of colours (kind-specific default)")
	generateCmd.Flags().Float64Var(&generateSpread, "spread", 30, "analogous hue spread in degrees (5-90)")
	generateCmd.Flags().IntSliceVar(&generateSteps, "steps", nil, "tonal matrix steps (default 50,100,...,950)")
	generateCmd.Flags().StringVar(&generateHues, "hues", "base", "tonal matrix hue preset (base, triadic, tetradic, even)")
	generateCmd.Flags().IntVar(&generateHueN, "hue-count", 6, "hue row count for the even preset")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "PRNG seed for the colourful kind")
	generateCmd.Flags().BoolVar(&generateShuffle, "shuffle", false, "shuffle colourful output (seeded)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "hex", "output format (hex, rgb, oklch, hsl, json, css)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file (default: stdout)")
	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "show colour previews in terminal")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	space, err := resolveSpace()
	if err != nil {
		return err
	}

	var base *colour.Colour
	if len(args) == 1 {
		c, err := parseBaseColour(args[0])
		if err != nil {
			return err
		}
		base = &c
	}

	kind, cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if base == nil && kind != colour.KindColourful {
		return fmt.Errorf("the %s kind requires a base colour argument", kind)
	}

	logger.Debug("generating palette", "kind", kind, "space", space)

	colours, err := colour.Generate(kind, base, cfg, space)
	if err != nil {
		return err
	}

	output, err := formatPalette(colour.NewPalette(colours), generateFormat, generatePreview)
	if err != nil {
		return err
	}
	return writeOutput(output, generateOutput)
}

// buildConfig maps the generate flags onto the engine config for the
// selected kind.
func buildConfig() (colour.Kind, colour.Config, error) {
	switch generateKind {
	case "harmony":
		t := colour.HarmonyType(generateType)
		if generateType == "" {
			t = colour.Triadic
		}
		cfg := colour.DefaultHarmonyConfig(t)
		if generateCount > 0 {
			cfg.Count = generateCount
		}
		cfg.Spread = generateSpread
		return colour.KindHarmony, &cfg, nil

	case "variation":
		t := colour.VariationType(generateType)
		if generateType == "" {
			t = colour.Monochromatic
		}
		cfg := colour.DefaultVariationConfig(t)
		if generateCount > 0 {
			cfg.Count = generateCount
		}
		return colour.KindVariation, &cfg, nil

	case "matrix":
		cfg := colour.MatrixConfig{
			Steps:    generateSteps,
			Hues:     colour.MatrixHues(generateHues),
			HueCount: generateHueN,
		}
		return colour.KindMatrix, &cfg, nil

	case "colourful":
		cfg := colour.ColourfulConfig{
			Method:  colour.ColourfulMethod(generateType),
			Count:   generateCount,
			Seed:    generateSeed,
			Shuffle: generateShuffle,
		}
		return colour.KindColourful, &cfg, nil
	}

	return "", nil, fmt.Errorf("unknown generator kind: %s (valid: harmony, variation, matrix, colourful)", generateKind)
}
