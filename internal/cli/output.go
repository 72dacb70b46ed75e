package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// resolveSpace maps the global --space flag to a colour.Space.
func resolveSpace() (colour.Space, error) {
	switch strings.ToLower(globalSpace) {
	case "", "oklch":
		return colour.SpaceOklch, nil
	case "hsl":
		return colour.SpaceHSL, nil
	default:
		return "", fmt.Errorf("invalid colour space: %s (valid: oklch, hsl)", globalSpace)
	}
}

// formatPalette formats a palette according to the requested format.
func formatPalette(p *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		var b strings.Builder
		for _, c := range p.Colours {
			writeColourLine(&b, c, c.Hex, showPreview)
		}
		return b.String(), nil
	case "rgb":
		var b strings.Builder
		for _, c := range p.Colours {
			writeColourLine(&b, c, c.CSS.RGB, showPreview)
		}
		return b.String(), nil
	case "oklch":
		var b strings.Builder
		for _, c := range p.Colours {
			writeColourLine(&b, c, c.CSS.OKLCH, showPreview)
		}
		return b.String(), nil
	case "hsl":
		var b strings.Builder
		for _, c := range p.Colours {
			writeColourLine(&b, c, c.CSS.HSL, showPreview)
		}
		return b.String(), nil
	case "json":
		data, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case "css":
		return p.ToCSSVariables("colour"), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, oklch, hsl, json, css)", format)
	}
}

// writeColourLine writes one colour, optionally preceded by a truecolor
// terminal swatch.
func writeColourLine(b *strings.Builder, c colour.Colour, text string, showPreview bool) {
	if showPreview {
		fmt.Fprintf(b, "\x1b[48;2;%d;%d;%dm        \x1b[0m  ", c.RGB.R, c.RGB.G, c.RGB.B)
	}
	b.WriteString(text)
	b.WriteByte('\n')
}

// writeOutput writes the result to a file or stdout.
func writeOutput(output, path string) error {
	if path == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Debug("wrote palette", "path", path)
	return nil
}

// parseBaseColour parses the base colour argument, accepting any literal
// the engine recognises.
func parseBaseColour(arg string) (colour.Colour, error) {
	c, err := colour.Parse(arg)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("invalid base colour: %w", err)
	}
	return c, nil
}
