package integrations

import (
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func coverServer(t *testing.T, width, height int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
			}
		}
		w.Header().Set("Content-Type", "image/png")
		png.Encode(w, img)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCoverFetcher(t *testing.T) {
	fetcher := NewCoverFetcher()
	defer fetcher.Close()

	server := coverServer(t, 200, 300)
	path, err := fetcher.Fetch(server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("local copy missing: %v", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("failed to decode local copy: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected a jpeg copy, got %s", format)
	}
	// Small covers are kept at full size.
	if cfg.Width != 200 || cfg.Height != 300 {
		t.Errorf("expected 200x300, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestCoverFetcherScalesWideCovers(t *testing.T) {
	fetcher := NewCoverFetcher()
	defer fetcher.Close()

	server := coverServer(t, 1200, 1800)
	path, err := fetcher.Fetch(server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != maxCoverWidth {
		t.Errorf("expected width %d, got %d", maxCoverWidth, cfg.Width)
	}
	// Aspect ratio is preserved.
	if cfg.Height != 900 {
		t.Errorf("expected height 900, got %d", cfg.Height)
	}
}

func TestCoverFetcherRejectsBadResponses(t *testing.T) {
	fetcher := NewCoverFetcher()
	defer fetcher.Close()

	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()
	if _, err := fetcher.Fetch(notFound.URL); err == nil {
		t.Error("expected an error for a missing cover")
	}

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer garbage.Close()
	if _, err := fetcher.Fetch(garbage.URL); err == nil {
		t.Error("expected an error for an undecodable body")
	}
}
