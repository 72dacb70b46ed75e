package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"

	"github.com/disintegration/imaging"
)

// KMeansExtractor extracts a dominant-colour palette from an image using
// k-means clustering with k-means++ seeding. Extraction is deterministic
// given identical seed and input.
type KMeansExtractor struct {
	maxEdge    int // longer image edge after downscale
	maxSamples int // cap on examined pixels
	iterations int // fixed Lloyd iteration count
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxEdge:    200,
		maxSamples: 10000,
		iterations: 10,
	}
}

// Extract extracts up to colourCount dominant colours, sorted by
// descending cluster size. colourCount is clamped to [2,20]. An image
// with no usable pixels (all near-transparent, near-black or near-white)
// yields an empty palette, not an error.
func (e *KMeansExtractor) Extract(img image.Image, colourCount int, seed int64) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	colourCount = clampInt(colourCount, 2, 20)

	// Bound the clustering cost before sampling.
	bounds := img.Bounds()
	if bounds.Dx() > e.maxEdge || bounds.Dy() > e.maxEdge {
		img = imaging.Fit(img, e.maxEdge, e.maxEdge, imaging.Lanczos)
	}

	pixels := e.samplePixels(img)
	if len(pixels) == 0 {
		// Insufficient samples: empty result by design.
		return NewPalette(nil), nil
	}

	unique := uniquePoints(pixels)
	if len(unique) <= colourCount {
		// Fewer distinct pixels than requested clusters: one cluster
		// per distinct pixel.
		colours := make([]Colour, len(unique))
		counts := make([]int, len(unique))
		for i, p := range unique {
			colours[i] = p.colour()
			counts[i] = 1
		}
		return NewPaletteWithCounts(colours, counts), nil
	}

	rng := rand.New(rand.NewSource(seed))
	centroids, counts := e.kmeans(pixels, colourCount, rng)

	// Drop empty clusters, then sort the survivors by dominance.
	type cluster struct {
		centre point3
		count  int
	}
	clusters := make([]cluster, 0, len(centroids))
	for i, c := range centroids {
		if counts[i] > 0 {
			clusters = append(clusters, cluster{centre: c, count: counts[i]})
		}
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].count > clusters[j].count
	})

	colours := make([]Colour, len(clusters))
	outCounts := make([]int, len(clusters))
	for i, c := range clusters {
		colours[i] = c.centre.colour()
		outCounts[i] = c.count
	}
	return NewPaletteWithCounts(colours, outCounts), nil
}

// point3 is a point in 3-D RGB colour space.
type point3 struct {
	R, G, B float64
}

// distanceSq is the squared Euclidean distance between two points.
func (p point3) distanceSq(o point3) float64 {
	dr := p.R - o.R
	dg := p.G - o.G
	db := p.B - o.B
	return dr*dr + dg*dg + db*db
}

func (p point3) colour() Colour {
	return FromRGB(
		uint8(clampInt(int(math.Round(p.R)), 0, 255)),
		uint8(clampInt(int(math.Round(p.G)), 0, 255)),
		uint8(clampInt(int(math.Round(p.B)), 0, 255)),
	)
}

// samplePixels walks the image at a stride that caps the number of
// examined pixels, discarding pixels that carry no palette signal:
// alpha below 128, or mean brightness outside [5,250].
func (e *KMeansExtractor) samplePixels(img image.Image) []point3 {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()

	step := 1
	if total > e.maxSamples {
		step = int(math.Sqrt(float64(total) / float64(e.maxSamples)))
		if step < 1 {
			step = 1
		}
	}

	pixels := make([]point3, 0, e.maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a>>8 < 128 {
				continue
			}
			r8 := float64(r >> 8)
			g8 := float64(g >> 8)
			b8 := float64(b >> 8)
			brightness := (r8 + g8 + b8) / 3
			if brightness < 5 || brightness > 250 {
				continue
			}
			pixels = append(pixels, point3{R: r8, G: g8, B: b8})
		}
	}
	return pixels
}

// uniquePoints deduplicates pixels by exact RGB value, preserving first
// occurrence order.
func uniquePoints(pixels []point3) []point3 {
	seen := make(map[RGB]bool, len(pixels))
	unique := make([]point3, 0, len(pixels))
	for _, p := range pixels {
		key := RGB{R: uint8(p.R), G: uint8(p.G), B: uint8(p.B)}
		if !seen[key] {
			seen[key] = true
			unique = append(unique, p)
		}
	}
	return unique
}

// kmeans runs Lloyd's algorithm for a fixed number of iterations over
// the pixel data. Returns final centroids and their member counts.
func (e *KMeansExtractor) kmeans(points []point3, k int, rng *rand.Rand) ([]point3, []int) {
	centroids := seedCentroids(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.iterations; iter++ {
		for i, p := range points {
			assignments[i] = nearestCentroid(p, centroids)
		}

		sums := make([]point3, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignments[i]
			sums[c].R += p.R
			sums[c].G += p.G
			sums[c].B += p.B
			counts[c]++
		}

		for i := range centroids {
			if counts[i] == 0 {
				// Empty cluster: leave the centroid where it is.
				continue
			}
			n := float64(counts[i])
			centroids[i] = point3{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
		}
	}

	counts := make([]int, k)
	for i, p := range points {
		assignments[i] = nearestCentroid(p, centroids)
		counts[assignments[i]]++
	}
	return centroids, counts
}

// seedCentroids initialises centroids with the k-means++ strategy: the
// first uniform-random, each subsequent one chosen with probability
// proportional to squared distance from the nearest existing centroid.
func seedCentroids(points []point3, k int, rng *rand.Rand) []point3 {
	centroids := make([]point3, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distanceSq(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist
			total += minDist
		}

		if total == 0 {
			// All points coincide with existing centroids.
			centroids = append(centroids, points[rng.Intn(len(points))])
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		idx := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				idx = i
				break
			}
		}
		centroids = append(centroids, points[idx])
	}
	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(p point3, centroids []point3) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distanceSq(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}
