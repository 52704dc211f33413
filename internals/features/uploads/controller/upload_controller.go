// 📁 controller/upload_controller.go
package controller

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	helpers "almanar_backend/internals/helpers"
	"almanar_backend/internals/helpers/oss"
)

var allowedFolders = map[string]bool{
	"events":       true,
	"programs":     true,
	"resources":    true,
	"star-members": true,
	"donations":    true,
	"misc":         true,
}

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// 🖼️ POST /upload/image: multipart field "image", converted to WebP before storage
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	folder := c.FormValue("folder", "misc")
	if !allowedFolders[folder] {
		return helpers.Error(c, fiber.StatusBadRequest, "Unknown upload folder")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Missing image file")
	}
	if fileHeader.Size > oss.MaxUploadSize() {
		return helpers.Error(c, fiber.StatusRequestEntityTooLarge, "Image exceeds the 5MB limit")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Failed to open image file")
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Failed to read image file")
	}

	payload, err := oss.ConvertToWebP(raw, fileHeader.Filename, oss.DefaultWebPOptions())
	if err != nil {
		return helpers.Error(c, fiber.StatusUnprocessableEntity, "Unsupported or corrupt image")
	}

	url, err := oss.UploadWebP(folder, payload)
	if err != nil {
		log.Println("[ERROR] upload failed:", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to store image")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Image uploaded", fiber.Map{
		"url": url,
	})
}
