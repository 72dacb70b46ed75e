package cli

import (
	"fmt"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/spf13/cobra"
)

var contrastQuick bool

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <background> [foreground]",
	Short: "Evaluate contrast and pick readable text colours",
	Long: `Evaluate WCAG and APCA contrast for a colour pair, or pick the best
text colour (black or white) for a background.

With two colours, both the WCAG 2.0 contrast ratio and the APCA Lc value
for the pair are printed. With one colour, the best text colour for that
background is chosen by APCA magnitude (or by a fast OKLCH lightness
threshold with --quick).

Examples:
  hueforge contrast "#1e293b" "#f8fafc"
  hueforge contrast "#6366f1"
  hueforge contrast --quick "rgb(30, 41, 59)"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().BoolVar(&contrastQuick, "quick", false, "use the fast lightness-threshold approximation")
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	background, err := colour.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid background colour: %w", err)
	}

	if len(args) == 2 {
		foreground, err := colour.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid foreground colour: %w", err)
		}

		fmt.Printf("wcag: %.2f:1\n", colour.ContrastRatio(foreground, background))
		fmt.Printf("apca: %.1f Lc\n", colour.APCAContrast(foreground, background))
		return nil
	}

	var text colour.Colour
	if contrastQuick {
		text = colour.QuickTextColour(background)
	} else {
		text = colour.BestTextColour(background)
	}
	fmt.Println(text.Hex)
	return nil
}
