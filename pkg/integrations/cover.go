package integrations

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// maxCoverWidth keeps embedded covers at e-reader friendly sizes.
const maxCoverWidth = 600

// CoverFetcher downloads cover images and rescales them for embedding.
type CoverFetcher struct {
	client  *http.Client
	tempDir string
}

func NewCoverFetcher() *CoverFetcher {
	tempDir, _ := os.MkdirTemp("", "booktrack-covers-*")
	return &CoverFetcher{client: http.DefaultClient, tempDir: tempDir}
}

// Fetch downloads a cover, scales it down when wider than maxCoverWidth and
// returns the path of a local JPEG copy.
func (f *CoverFetcher) Fetch(coverURL string) (string, error) {
	resp, err := f.client.Get(coverURL)
	if err != nil {
		return "", fmt.Errorf("failed to download cover: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cover download returned status %d", resp.StatusCode)
	}

	src, _, err := image.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to decode cover: %w", err)
	}
	src = scaleDown(src, maxCoverWidth)

	out, err := os.CreateTemp(f.tempDir, "cover-*.jpg")
	if err != nil {
		return "", err
	}
	defer out.Close()
	if err := jpeg.Encode(out, src, &jpeg.Options{Quality: 85}); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("failed to encode cover: %w", err)
	}
	return out.Name(), nil
}

// Close removes the downloaded temp files.
func (f *CoverFetcher) Close() {
	if f.tempDir != "" && filepath.IsAbs(f.tempDir) {
		os.RemoveAll(f.tempDir)
	}
}

func scaleDown(src image.Image, maxWidth int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxWidth {
		return src
	}
	ratio := float64(maxWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
