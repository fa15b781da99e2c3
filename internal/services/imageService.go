package services

import (
	"fmt"
	"io"
	"net/http"

	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/gofiber/fiber/v2"
)

// ImageField is the multipart field products and banners upload their picture in.
const ImageField = "image"

// Image is an uploaded picture held in memory until it is stored inline.
type Image struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ReadImage pulls the uploaded file from field of a multipart request.
// A request without that file fails with errs.ErrMissingImage.
func ReadImage(c *fiber.Ctx, field string) (Image, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return Image{}, fmt.Errorf("%w: field %q", errs.ErrMissingImage, field)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Image{}, fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Image{}, fmt.Errorf("read uploaded image: %w", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return Image{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
	}, nil
}
