package handlers

import (
	"io"
	"mime/multipart"

	"expiry-tracker/domain"
	"expiry-tracker/internal/api/presenters"
	"expiry-tracker/pkg/scan"

	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		ScanImage(c *fiber.Ctx) error
		NormalizeImage(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
	}
)

func NewScanHandler(scanService scan.ScanService) ScanHandler {
	return &scanHandler{scanService: scanService}
}

// ScanImage uploads the photo to the detection service and answers with the
// editable pending items. On failure the client is expected to fall back to
// an empty pending list.
func (h *scanHandler) ScanImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	items, err := h.scanService.Scan(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedScanImage, err)
	}

	return presenters.SuccessResponse(c, domain.ScanResponse{Items: items}, fiber.StatusOK, domain.MessageSuccessScanImage)
}

func (h *scanHandler) NormalizeImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	image, err := h.scanService.Normalize(c.Context(), data)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNormalizeImage, err)
	}

	return presenters.SuccessResponse(c, domain.NormalizeResponse{Image: image}, fiber.StatusOK, domain.MessageSuccessNormalizeImage)
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
