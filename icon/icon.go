// Package icon rasterizes the app's vector icon into the fixed PNG
// sizes the web manifest wants.
package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"assetgen/log"
)

// Sizes are the icon dimensions required by the manifest.
var Sizes = []int{192, 512}

// Render rasterizes the SVG at svgPath into a square image of the
// given pixel size.
func Render(svgPath string, size int) (image.Image, error) {
	ic, err := oksvg.ReadIcon(svgPath, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", svgPath, err)
	}
	ic.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	ic.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img, nil
}

// Generate writes one icon-<size>.png per entry in Sizes into outDir.
// A bad source SVG aborts the whole icon step; there is no per-size
// recovery worth doing when the input itself is broken.
func Generate(svgPath, outDir string) error {
	for _, size := range Sizes {
		img, err := Render(svgPath, size)
		if err != nil {
			return err
		}

		name := fmt.Sprintf("icon-%d.png", size)
		out := filepath.Join(outDir, name)
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			os.Remove(out)
			return fmt.Errorf("encoding %s: %w", out, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(out)
			return fmt.Errorf("writing %s: %w", out, err)
		}
		log.Infof("generated %s (%dx%d)", name, size, size)
	}
	return nil
}
