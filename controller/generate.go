package controller

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"profileinator/common/config"
	img "profileinator/common/image"
	"profileinator/common/logger"
	"profileinator/relay/pipeline"
)

var generator *pipeline.Pipeline

// InitGenerator wires the pipeline the generate endpoint runs. Must be
// called once before the router starts serving.
func InitGenerator(p *pipeline.Pipeline) {
	generator = p
}

type generateForm struct {
	Image       *multipart.FileHeader `form:"image" binding:"required"`
	NumVariants string                `form:"num_variants"`
}

type generateResponse struct {
	Images           []string `json:"images"`
	MediaType        string   `json:"media_type"`
	OriginalFilename string   `json:"original_filename,omitempty"`
	Warning          string   `json:"warning,omitempty"`
}

// GenerateProfiles handles POST /generate/: validate the multipart
// upload, run the describe-then-generate pipeline, and return the
// variants base64-encoded. Validation failures never reach the provider.
func GenerateProfiles(c *gin.Context) {
	ctx := c.Request.Context()

	var form generateForm
	if err := c.ShouldBind(&form); err != nil {
		// A validation error means the form parsed but the image field
		// is absent; anything else is a body we could not parse at all.
		detail := "invalid form data"
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			detail = "image field is required"
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
		return
	}

	numVariants := config.DefaultVariants
	if form.NumVariants != "" {
		n, err := strconv.Atoi(form.NumVariants)
		if err != nil || n < config.MinVariants || n > config.MaxVariants {
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": fmt.Sprintf("num_variants must be an integer between %d and %d",
					config.MinVariants, config.MaxVariants),
			})
			return
		}
		numVariants = n
	}

	file, err := form.Image.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read uploaded image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read uploaded image"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "image file is empty"})
		return
	}

	mediaType := img.MediaType(data, form.Image.Header.Get("Content-Type"))
	if !img.IsImageType(mediaType) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "File must be an image"})
		return
	}

	if config.DebugEnabled {
		if w, h, err := img.GetImageSizeFromBytes(data); err == nil {
			logger.Debugf(ctx, "upload %q: %s, %dx%d, %d bytes", form.Image.Filename, mediaType, w, h, len(data))
		}
	}

	// Uploaded bytes are not deeply validated here; junk data comes
	// back as a provider error.
	result, err := generator.Run(ctx, data, mediaType, numVariants)
	if err != nil {
		logger.Errorf(ctx, "pipeline failed: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Failed to generate profiles. Please try again.",
		})
		return
	}

	// All variants of one generation call share a format; sniff the
	// first and fall back to PNG when the bytes are inconclusive.
	mediaTypeOut := "image/png"
	if len(result.Images) > 0 {
		if mt := img.MediaType(result.Images[0], ""); img.IsImageType(mt) {
			mediaTypeOut = mt
		}
	}

	response := generateResponse{
		Images:           make([]string, 0, len(result.Images)),
		MediaType:        mediaTypeOut,
		OriginalFilename: form.Image.Filename,
		Warning:          result.Warning,
	}
	for _, image := range result.Images {
		response.Images = append(response.Images, base64.StdEncoding.EncodeToString(image))
	}
	c.JSON(http.StatusOK, response)
}
