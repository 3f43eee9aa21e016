package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	_ "golang.org/x/image/webp"
)

// MediaType returns the detected media type of raw image bytes, falling
// back to sniffing when the declared type is missing or generic.
func MediaType(data []byte, declared string) string {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return http.DetectContentType(data)
}

func IsImageType(mediaType string) bool {
	return strings.HasPrefix(mediaType, "image/")
}

// DataURL encodes image bytes as a data URI suitable for a vision
// message's image_url part.
func DataURL(data []byte, mediaType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data))
}

// GetImageSizeFromBytes probes the dimensions of png/jpeg/gif/webp data.
// Failures are expected for exotic formats and only matter for debug logs.
func GetImageSizeFromBytes(data []byte) (width int, height int, err error) {
	img, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return img.Width, img.Height, nil
}
