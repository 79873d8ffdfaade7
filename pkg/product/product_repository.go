package product

import (
	"context"

	"expiry-tracker/entities"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		EnsureSchema(ctx context.Context) error
		Insert(ctx context.Context, product *entities.Product) error
		FetchAll(ctx context.Context, userName string) ([]entities.Product, error)
		Delete(ctx context.Context, id uint) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) EnsureSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&entities.Product{})
}

func (r *productRepository) Insert(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FetchAll returns the user's rows ordered by the raw expiry_date string.
// Well-formed YYYY-MM-DD values sort chronologically under that collation;
// malformed values land wherever the string comparison puts them.
func (r *productRepository) FetchAll(ctx context.Context, userName string) ([]entities.Product, error) {
	var products []entities.Product
	if err := r.db.WithContext(ctx).
		Where("user_name = ?", userName).
		Order("expiry_date asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Delete removes the row if present. Deleting an id that does not exist is
// a no-op.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{}).Error
}
