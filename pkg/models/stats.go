package models

// AdminStats is the marketplace-wide dashboard aggregate.
type AdminStats struct {
	TotalUsers          int64   `json:"totalUsers"`
	TotalAgents         int64   `json:"totalAgents"`
	TotalProperties     int64   `json:"totalProperties"`
	VerifiedProperties  int64   `json:"verifiedProperties"`
	AvailableProperties int64   `json:"availableProperties"`
	RejectedProperties  int64   `json:"rejectedProperties"`
	TotalOffers         int64   `json:"totalOffers"`
	PendingOffers       int64   `json:"pendingOffers"`
	PaidOffers          int64   `json:"paidOffers"`
	TotalPayments       int64   `json:"totalPayments"`
	TotalPaidVolume     float64 `json:"totalPaidVolume"`
}

// AgentStats is scoped to one agent's email.
type AgentStats struct {
	TotalProperties     int64   `json:"totalProperties"`
	VerifiedProperties  int64   `json:"verifiedProperties"`
	AvailableProperties int64   `json:"availableProperties"`
	RejectedProperties  int64   `json:"rejectedProperties"`
	TotalOffers         int64   `json:"totalOffers"`
	SoldProperties      int64   `json:"soldProperties"`
	Revenue             float64 `json:"revenue"`
}

// UserStats is scoped to one buyer's email.
type UserStats struct {
	TotalOffers    int64   `json:"totalOffers"`
	PendingOffers  int64   `json:"pendingOffers"`
	AcceptedOffers int64   `json:"acceptedOffers"`
	RejectedOffers int64   `json:"rejectedOffers"`
	PaidOffers     int64   `json:"paidOffers"`
	WishlistCount  int64   `json:"wishlistCount"`
	ReviewCount    int64   `json:"reviewCount"`
	TotalSpent     float64 `json:"totalSpent"`
}
