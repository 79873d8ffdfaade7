package scan

import (
	"context"
	"encoding/base64"
	"time"

	"expiry-tracker/domain"
	"expiry-tracker/pkg/imaging"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	// ScanService turns an uploaded photo into editable pending items:
	// detection, per-box crop, square normalization, defaults for missing
	// fields.
	ScanService interface {
		Scan(ctx context.Context, filename string, image []byte) ([]domain.PendingItem, error)
		Normalize(ctx context.Context, image []byte) (string, error)
	}

	scanService struct {
		detectionClient DetectionClient
		normalizer      imaging.Normalizer
	}
)

func NewScanService(detectionClient DetectionClient, normalizer imaging.Normalizer) ScanService {
	return &scanService{
		detectionClient: detectionClient,
		normalizer:      normalizer,
	}
}

func (s *scanService) Scan(ctx context.Context, filename string, image []byte) ([]domain.PendingItem, error) {
	detection, err := s.detectionClient.Detect(ctx, filename, image)
	if err != nil {
		return nil, err
	}

	items := make([]domain.PendingItem, 0, len(detection.Data))
	for _, d := range detection.Data {
		item := domain.PendingItem{
			ID:         uuid.NewString(),
			ItemName:   d.Name,
			ExpiryType: d.Type,
			ExpiryDate: d.Date,
			Enable:     true,
		}

		if item.ExpiryType == "" {
			item.ExpiryType = domain.ExpiryTypeConsumptionLimit
		}
		if item.ExpiryDate == "" {
			item.ExpiryDate = time.Now().Format(domain.DateLayout)
		}

		box := d.Coordinate
		cropped, err := s.normalizer.Crop(image, box.XMin, box.YMin, box.XMax, box.YMax)
		if err != nil {
			// A bad box only costs that item its thumbnail; the record
			// itself stays editable.
			log.Warnf("crop failed for detection %q: %v", d.Name, err)
			items = append(items, item)
			continue
		}

		squared, err := s.normalizer.Square(cropped)
		if err != nil {
			log.Warnf("normalize failed for detection %q: %v", d.Name, err)
			items = append(items, item)
			continue
		}

		item.Image = base64.StdEncoding.EncodeToString(squared)
		items = append(items, item)
	}

	return items, nil
}

// Normalize squares a replacement image the user picked for a single
// pending row.
func (s *scanService) Normalize(ctx context.Context, image []byte) (string, error) {
	squared, err := s.normalizer.Square(image)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(squared), nil
}
