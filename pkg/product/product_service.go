package product

import (
	"context"
	"encoding/base64"
	"time"

	"expiry-tracker/domain"
	"expiry-tracker/entities"
	"expiry-tracker/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
)

type (
	ProductService interface {
		Register(ctx context.Context, req domain.RegisterProductsRequest) ([]domain.RegisteredProduct, error)
		List(ctx context.Context, userName string) ([]domain.ProductResponse, error)
		Delete(ctx context.Context, id uint) error
		ImagePath(id uint) (string, error)
	}

	productService struct {
		productRepository ProductRepository
		images            storage.ImageStore
	}
)

func NewProductService(productRepository ProductRepository, images storage.ImageStore) ProductService {
	return &productService{
		productRepository: productRepository,
		images:            images,
	}
}

// Register inserts every confirmed item and writes its normalized image (if
// any) under the freshly assigned row id. Field contents pass through
// unvalidated. The row insert happens before the image write, so a failure
// in between leaves a row without an image, which the listing tolerates.
func (s *productService) Register(ctx context.Context, req domain.RegisterProductsRequest) ([]domain.RegisteredProduct, error) {
	registered := make([]domain.RegisteredProduct, 0, len(req.Items))

	for _, item := range req.Items {
		row := &entities.Product{
			UserName:   req.UserName,
			ItemName:   item.ItemName,
			ExpiryType: item.ExpiryType,
			ExpiryDate: item.ExpiryDate,
		}
		if err := s.productRepository.Insert(ctx, row); err != nil {
			return registered, err
		}

		if item.Image != "" {
			data, err := base64.StdEncoding.DecodeString(item.Image)
			if err != nil {
				return registered, domain.ErrDecodeProductImage
			}
			if err := s.images.Save(row.ID, data); err != nil {
				return registered, err
			}
		}

		registered = append(registered, domain.RegisteredProduct{
			ID:         row.ID,
			ItemName:   row.ItemName,
			ExpiryType: row.ExpiryType,
			ExpiryDate: row.ExpiryDate,
		})
	}

	return registered, nil
}

func (s *productService) List(ctx context.Context, userName string) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.FetchAll(ctx, userName)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, item := range products {
		response = append(response, domain.ProductResponse{
			ID:         item.ID,
			ItemName:   item.ItemName,
			ExpiryType: item.ExpiryType,
			ExpiryDate: item.ExpiryDate,
			Status:     determineStatus(item.ExpiryDate),
			HasImage:   s.images.Exists(item.ID),
		})
	}

	return response, nil
}

// Delete removes the row first and the image file second; the two are not
// atomic. A crash in between leaves an orphaned image file behind. Absent
// rows and absent files are both no-ops, so the call is idempotent.
func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.productRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.images.Delete(id); err != nil {
		log.Errorf("failed to remove image for product %d: %v", id, err)
		return err
	}
	return nil
}

func (s *productService) ImagePath(id uint) (string, error) {
	if !s.images.Exists(id) {
		return "", domain.ErrProductImageMissing
	}
	return s.images.Path(id), nil
}

// determineStatus grades a stored expiry date by days remaining. Dates that
// are not well-formed YYYY-MM-DD strings grade as unknown rather than
// failing the listing.
func determineStatus(expiryDate string) string {
	date, err := time.Parse(domain.DateLayout, expiryDate)
	if err != nil {
		return domain.StatusUnknown
	}

	today, _ := time.Parse(domain.DateLayout, time.Now().Format(domain.DateLayout))
	remaining := int(date.Sub(today).Hours() / 24)

	switch {
	case remaining < 0:
		return domain.StatusExpired
	case remaining == 0:
		return domain.StatusDueToday
	case remaining <= 3:
		return domain.StatusWarning
	default:
		return domain.StatusSafe
	}
}
