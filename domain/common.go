package domain

const (
	// The two supported expiry classifications for a tracked item.
	ExpiryTypeConsumptionLimit = "consumption limit"
	ExpiryTypeBestBefore       = "best-before date"

	// DefaultUserName is seeded the first time the users table is created
	// and found empty.
	DefaultUserName = "guest"

	// DateLayout is the ISO form every expiry date travels in.
	DateLayout = "2006-01-02"
)

var (
	MessageFailedBodyRequest = "failed to process request body"
)
