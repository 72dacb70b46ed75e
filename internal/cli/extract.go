package cli

import (
	"context"
	"fmt"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/image"
	"github.com/spf13/cobra"
)

var (
	// Extract command flags
	extractColours int
	extractSeed    int64
	extractFormat  string
	extractOutput  string
	extractPreview bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a dominant-colour palette from an image",
	Long: `Extract a dominant-colour palette from an image using k-means clustering
with k-means++ seeding.

The image is downscaled before sampling, near-transparent and
near-black/near-white pixels are discarded, and the resulting clusters
are sorted by dominance. The argument may be a file, a directory (a
random image inside it is used) or an HTTP(S) URL.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 8 colours (default) from an image
  hueforge extract wallpaper.jpg

  # Extract 5 colours with terminal previews
  hueforge extract --colours 5 --preview wallpaper.png

  # Extract from a URL and export as JSON
  hueforge extract --format json https://example.com/photo.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 8, "number of colours to extract (2-20)")
	extractCmd.Flags().Int64Var(&extractSeed, "seed", 0, "PRNG seed for reproducible clustering")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, oklch, hsl, json, css)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidatePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)

	loader := image.NewSmartLoader()
	img, err := loader.Load(context.Background(), imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	extractor := colour.NewKMeansExtractor()
	palette, err := extractor.Extract(img, extractColours, extractSeed)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	if palette.Len() == 0 {
		logger.Warn("no usable pixels in image; palette is empty")
	} else {
		logger.Debug("extraction complete", "colours", palette.Len())
	}

	output, err := formatPalette(palette, extractFormat, extractPreview)
	if err != nil {
		return err
	}
	return writeOutput(output, extractOutput)
}
