package constants

// Queue names
const (
	QueueDefault = "default"
)

// Task type names
const (
	TaskReceiptExpire = "receipt:expire"
	TaskOrderPlaced   = "order:placed"
)

// Receipt status constants
const (
	ReceiptStatusPlaced  = "placed"
	ReceiptStatusExpired = "expired"
)

// Review constraints
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// Delivery window padding added on top of the slowest line item, in minutes.
const DeliveryWindowPaddingMinutes = 5

// Menu cache keys
const (
	CacheKeyMenu       = "public:menu"
	CacheKeyCategories = "public:categories"
)
