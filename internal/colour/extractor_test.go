package colour

import (
	"image"
	"image/color"
	"testing"
)

// quadrantImage builds a 100x100 image split into four solid regions,
// with a small positional jitter so each region holds many distinct
// pixel values.
func quadrantImage() *image.RGBA {
	bases := []color.RGBA{
		{R: 200, G: 40, B: 40, A: 255},
		{R: 40, G: 200, B: 40, A: 255},
		{R: 40, G: 40, B: 200, A: 255},
		{R: 200, G: 200, B: 40, A: 255},
	}

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			q := 0
			if x >= 50 {
				q++
			}
			if y >= 50 {
				q += 2
			}
			b := bases[q]
			j := uint8((x + y) % 5)
			img.SetRGBA(x, y, color.RGBA{R: b.R + j, G: b.G + j, B: b.B + j, A: 255})
		}
	}
	return img
}

func TestExtractNilImage(t *testing.T) {
	if _, err := NewKMeansExtractor().Extract(nil, 4, 0); err == nil {
		t.Fatal("expected error for nil image")
	}
}

func TestExtractQuadrants(t *testing.T) {
	p, err := NewKMeansExtractor().Extract(quadrantImage(), 4, 1)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if p.Len() == 0 {
		t.Fatal("empty palette from a colourful image")
	}

	// Cluster sizes are sorted descending and account for every
	// sampled pixel.
	total := 0
	for i, n := range p.Counts {
		if i > 0 && n > p.Counts[i-1] {
			t.Errorf("counts not descending: %v", p.Counts)
		}
		total += n
	}
	if total != 100*100 {
		t.Errorf("counts sum to %d, want %d", total, 100*100)
	}

	// Every dominant colour sits near one of the four region bases.
	bases := []RGB{
		{R: 200, G: 40, B: 40},
		{R: 40, G: 200, B: 40},
		{R: 40, G: 40, B: 200},
		{R: 200, G: 200, B: 40},
	}
	for i, c := range p.Colours {
		near := false
		for _, b := range bases {
			if rgbClose(c.RGB, b, 12) {
				near = true
				break
			}
		}
		if !near {
			t.Errorf("colour %d (%s) is not near any region base", i, c.Hex)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	img := quadrantImage()
	a, err := NewKMeansExtractor().Extract(img, 4, 99)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	b, err := NewKMeansExtractor().Extract(img, 4, 99)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if a.Len() != b.Len() {
		t.Fatalf("palette lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Colours {
		if a.Colours[i].Hex != b.Colours[i].Hex {
			t.Errorf("colour %d differs across identical seeds", i)
		}
	}
}

func TestExtractNoUsablePixels(t *testing.T) {
	transparent := image.NewRGBA(image.Rect(0, 0, 10, 10))

	white := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			white.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	for name, img := range map[string]image.Image{
		"transparent": transparent,
		"white":       white,
	} {
		p, err := NewKMeansExtractor().Extract(img, 4, 0)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if p.Len() != 0 {
			t.Errorf("%s: got %d colours, want empty palette", name, p.Len())
		}
	}
}

func TestExtractFewDistinctPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 120, G: 30, B: 30, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 30, G: 120, B: 30, A: 255})
	img.SetRGBA(2, 0, color.RGBA{R: 30, G: 30, B: 120, A: 255})

	p, err := NewKMeansExtractor().Extract(img, 8, 0)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("got %d colours, want one per distinct pixel", p.Len())
	}
	for i, n := range p.Counts {
		if n != 1 {
			t.Errorf("colour %d count = %d, want 1", i, n)
		}
	}
}

func TestExtractDownscalesLargeImages(t *testing.T) {
	// A 600x600 single-colour image must still extract quickly and
	// produce that colour.
	img := image.NewRGBA(image.Rect(0, 0, 600, 600))
	for y := 0; y < 600; y++ {
		for x := 0; x < 600; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 90, G: 130, B: 170, A: 255})
		}
	}

	p, err := NewKMeansExtractor().Extract(img, 4, 0)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("got %d colours, want 1", p.Len())
	}
	if !rgbClose(p.Colours[0].RGB, RGB{R: 90, G: 130, B: 170}, 3) {
		t.Errorf("extracted %s, want ~#5a82aa", p.Colours[0].Hex)
	}
}
