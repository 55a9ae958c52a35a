package device

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/revisit-app/revisit/internal/constants"
)

// JPEGTransformer optimizes a raw photo for storage: downscale to a maximum
// width and re-encode as JPEG into the app's photo directory.
type JPEGTransformer struct {
	PhotoDir string
	MaxWidth int
	Quality  int
}

func NewJPEGTransformer(photoDir string) *JPEGTransformer {
	return &JPEGTransformer{
		PhotoDir: photoDir,
		MaxWidth: constants.PhotoMaxWidth,
		Quality:  constants.PhotoJPEGQuality,
	}
}

// Optimize decodes the source image, scales it down to at most MaxWidth, and
// writes a JPEG copy under the photo directory. The returned path is what
// gets persisted as the entry's photoUri.
func (t *JPEGTransformer) Optimize(uri string) (string, error) {
	f, err := os.Open(uri)
	if err != nil {
		return "", fmt.Errorf("could not open photo: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("could not decode photo: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > t.MaxWidth {
		height = height * t.MaxWidth / width
		width = t.MaxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	if err := os.MkdirAll(t.PhotoDir, 0700); err != nil {
		return "", fmt.Errorf("could not create photo directory: %w", err)
	}

	outPath := filepath.Join(t.PhotoDir, uuid.New().String()+".jpg")
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("could not create optimized photo: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, dst, &jpeg.Options{Quality: t.Quality}); err != nil {
		os.Remove(outPath)
		return "", fmt.Errorf("could not encode photo: %w", err)
	}

	return outPath, nil
}
