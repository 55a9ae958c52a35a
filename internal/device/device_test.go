package device

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/revisit-app/revisit/internal/models"
)

func writeJPEG(t *testing.T, path string, width, height int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
}

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func decodeWidth(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("output is not a decodable image: %v", err)
	}
	return img.Bounds().Dx()
}

func TestFileCamera(t *testing.T) {
	t.Run("permission denied without a source", func(t *testing.T) {
		cam := NewFileCamera()
		granted, err := cam.RequestPermission()
		if err != nil {
			t.Fatalf("RequestPermission() returned error: %v", err)
		}
		if granted {
			t.Error("permission granted without a source file")
		}
	})

	t.Run("permission denied for unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		if err := os.WriteFile(path, []byte("hi"), 0600); err != nil {
			t.Fatal(err)
		}

		cam := NewFileCamera()
		cam.SetSource(path)
		granted, _ := cam.RequestPermission()
		if granted {
			t.Error("permission granted for a .txt source")
		}
	})

	t.Run("takes the configured picture", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shot.jpg")
		writeJPEG(t, path, 10, 10)

		cam := NewFileCamera()
		cam.SetSource(path)

		granted, err := cam.RequestPermission()
		if err != nil || !granted {
			t.Fatalf("RequestPermission() = %v, %v; want granted", granted, err)
		}

		uri, err := cam.TakePicture()
		if err != nil {
			t.Fatalf("TakePicture() failed: %v", err)
		}
		if !filepath.IsAbs(uri) {
			t.Errorf("TakePicture() = %q, want absolute path", uri)
		}
	})
}

func TestJPEGTransformer(t *testing.T) {
	t.Run("downscales wide images to max width", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "wide.jpg")
		writeJPEG(t, src, 1800, 900)

		tr := NewJPEGTransformer(filepath.Join(dir, "photos"))
		out, err := tr.Optimize(src)
		if err != nil {
			t.Fatalf("Optimize() failed: %v", err)
		}

		if filepath.Ext(out) != ".jpg" {
			t.Errorf("output = %q, want .jpg", out)
		}
		if got := decodeWidth(t, out); got != tr.MaxWidth {
			t.Errorf("output width = %d, want %d", got, tr.MaxWidth)
		}
	})

	t.Run("keeps small images at original size", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "small.jpg")
		writeJPEG(t, src, 200, 100)

		tr := NewJPEGTransformer(filepath.Join(dir, "photos"))
		out, err := tr.Optimize(src)
		if err != nil {
			t.Fatalf("Optimize() failed: %v", err)
		}
		if got := decodeWidth(t, out); got != 200 {
			t.Errorf("output width = %d, want 200", got)
		}
	})

	t.Run("accepts png input and re-encodes as jpeg", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "shot.png")
		writePNG(t, src, 100, 100)

		tr := NewJPEGTransformer(filepath.Join(dir, "photos"))
		out, err := tr.Optimize(src)
		if err != nil {
			t.Fatalf("Optimize() failed: %v", err)
		}
		if filepath.Ext(out) != ".jpg" {
			t.Errorf("output = %q, want .jpg", out)
		}
	})

	t.Run("fails on a non-image source", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "broken.jpg")
		if err := os.WriteFile(src, []byte("not an image"), 0600); err != nil {
			t.Fatal(err)
		}

		tr := NewJPEGTransformer(filepath.Join(dir, "photos"))
		if _, err := tr.Optimize(src); err == nil {
			t.Error("Optimize() on junk bytes should fail")
		}
	})
}

func TestLocators(t *testing.T) {
	t.Run("static locator reports its fix", func(t *testing.T) {
		loc := &StaticLocator{Location: &models.Location{Lat: 1, Lon: 2}}
		granted, err := loc.RequestPermission()
		if err != nil || !granted {
			t.Fatalf("RequestPermission() = %v, %v", granted, err)
		}
		pos, err := loc.CurrentPosition()
		if err != nil {
			t.Fatal(err)
		}
		if pos.Lat != 1 || pos.Lon != 2 {
			t.Errorf("position = %+v", pos)
		}
	})

	t.Run("static locator without a fix denies permission", func(t *testing.T) {
		loc := &StaticLocator{}
		granted, _ := loc.RequestPermission()
		if granted {
			t.Error("permission granted without a location")
		}
	})

	t.Run("denied locator always denies", func(t *testing.T) {
		granted, err := DeniedLocator{}.RequestPermission()
		if err != nil || granted {
			t.Errorf("RequestPermission() = %v, %v; want denied", granted, err)
		}
	})
}
