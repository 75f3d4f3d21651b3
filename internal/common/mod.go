package common

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const DatabaseName = "brickbase"

// Collection names as they exist in the brickbase database.
const (
	UserCollection          = "users"
	PropertyCollection      = "properties"
	OfferCollection         = "offers"
	PaymentCollection       = "payments"
	ReviewCollection        = "reviews"
	WishlistCollection      = "wishlists"
	ReportCollection        = "reports"
	AdvertisementCollection = "advertisements"
)

var Validate = validator.New()

const (
	REQUEST_TIMEOUT_SECS     = 50 * time.Second
	MONGO_DUPLICATE_KEY_CODE = 11000

	STATS_CACHE_TTL = 60 * time.Second

	MIN_TITLE_LENGTH = 5
	MAX_TITLE_LENGTH = 140
)

// IsEmptyString checks if a string is empty
func IsEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}
