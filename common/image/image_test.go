package image

import (
	"strings"
	"testing"
)

func TestMediaType(t *testing.T) {
	jpegBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	tests := []struct {
		name     string
		data     []byte
		declared string
		want     string
	}{
		{"declared wins", []byte("anything"), "image/webp", "image/webp"},
		{"declared normalized", []byte("anything"), " IMAGE/PNG ", "image/png"},
		{"sniff jpeg", jpegBytes, "", "image/jpeg"},
		{"sniff overrides octet-stream", jpegBytes, "application/octet-stream", "image/jpeg"},
		{"sniff png", []byte("\x89PNG\r\n\x1a\n0000"), "", "image/png"},
		{"plain text", []byte("hello world"), "", "text/plain; charset=utf-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MediaType(tt.data, tt.declared)
			if got != tt.want {
				t.Errorf("MediaType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsImageType(t *testing.T) {
	if !IsImageType("image/jpeg") {
		t.Error("image/jpeg should be an image type")
	}
	if IsImageType("text/plain") {
		t.Error("text/plain should not be an image type")
	}
}

func TestDataURL(t *testing.T) {
	url := DataURL([]byte("abc"), "image/png")
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("DataURL() = %v, want data URI prefix", url)
	}
	if !strings.HasSuffix(url, "YWJj") {
		t.Errorf("DataURL() = %v, want base64 payload YWJj", url)
	}
}

func TestGetImageSizeFromBytes(t *testing.T) {
	// Minimal 1x1 PNG.
	png := []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
		0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
		0x89,
	}
	w, h, err := GetImageSizeFromBytes(png)
	if err != nil {
		t.Fatal(err)
	}
	if w != 1 || h != 1 {
		t.Errorf("size = %dx%d, want 1x1", w, h)
	}

	if _, _, err := GetImageSizeFromBytes([]byte("junk")); err == nil {
		t.Error("expected an error for junk bytes")
	}
}
