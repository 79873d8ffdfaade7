package domain

import "errors"

var (
	MessageSuccessScanImage      = "image scanned successfully"
	MessageSuccessNormalizeImage = "image normalized successfully"

	MessageFailedScanImage      = "failed to scan image"
	MessageFailedNormalizeImage = "failed to normalize image"

	ErrDetectionFailed = errors.New("detection service request failed")
)

type (
	// BoundingBox carries pixel coordinates in a fixed order:
	// xmin, ymin, xmax, ymax.
	BoundingBox struct {
		XMin float64 `json:"xmin"`
		YMin float64 `json:"ymin"`
		XMax float64 `json:"xmax"`
		YMax float64 `json:"ymax"`
	}

	// Detection is one item candidate found in the uploaded photo. Name,
	// Type and Date are optional; the scan service fills in defaults.
	Detection struct {
		Coordinate BoundingBox `json:"coordinate"`
		Name       string      `json:"name"`
		Type       string      `json:"type"`
		Date       string      `json:"date"`
	}

	DetectionResponse struct {
		Data []Detection `json:"data"`
	}

	// PendingItem is a not-yet-persisted record awaiting user confirmation.
	// It only exists in transit between the scan endpoint and the product
	// registration endpoint; the token id keys the row in the client's
	// editable list.
	PendingItem struct {
		ID         string `json:"id"`
		Image      string `json:"image,omitempty"` // base64 PNG, normalized
		ItemName   string `json:"item_name"`
		ExpiryType string `json:"expiry_type"`
		ExpiryDate string `json:"expiry_date"`
		Enable     bool   `json:"enable"`
	}

	ScanResponse struct {
		Items []PendingItem `json:"items"`
	}

	NormalizeResponse struct {
		Image string `json:"image"` // base64 PNG
	}
)
