package domain

import "errors"

var (
	MessageSuccessRegisterProducts = "products registered successfully"
	MessageSuccessGetProducts      = "products retrieved successfully"
	MessageSuccessDeleteProduct    = "product deleted successfully"

	MessageFailedRegisterProducts = "failed to register products"
	MessageFailedGetProducts      = "failed to retrieve products"
	MessageFailedDeleteProduct    = "failed to delete product"
	MessageFailedGetProductImage  = "failed to retrieve product image"

	ErrInvalidProductID    = errors.New("invalid product id")
	ErrProductImageMissing = errors.New("product has no stored image")
	ErrDecodeProductImage  = errors.New("failed to decode product image data")
)

// Freshness statuses computed at display time from the stored expiry date.
// A date that does not parse as YYYY-MM-DD degrades to StatusUnknown.
const (
	StatusExpired  = "Expired"
	StatusDueToday = "DueToday"
	StatusWarning  = "Warning"
	StatusSafe     = "Safe"
	StatusUnknown  = "Unknown"
)

type (
	// RegisterProductItem is one confirmed pending record. Field contents
	// are deliberately not validated: empty names and malformed dates are
	// accepted and stored as-is.
	RegisterProductItem struct {
		ItemName   string `json:"item_name"`
		ExpiryType string `json:"expiry_type"`
		ExpiryDate string `json:"expiry_date"`
		Image      string `json:"image,omitempty"` // base64 PNG, optional
	}

	RegisterProductsRequest struct {
		UserName string                `json:"user_name" validate:"required"`
		Items    []RegisterProductItem `json:"items" validate:"required,dive"`
	}

	RegisteredProduct struct {
		ID         uint   `json:"id"`
		ItemName   string `json:"item_name"`
		ExpiryType string `json:"expiry_type"`
		ExpiryDate string `json:"expiry_date"`
	}

	ProductResponse struct {
		ID         uint   `json:"id"`
		ItemName   string `json:"item_name"`
		ExpiryType string `json:"expiry_type"`
		ExpiryDate string `json:"expiry_date"`
		Status     string `json:"status"`
		HasImage   bool   `json:"has_image"`
	}
)
