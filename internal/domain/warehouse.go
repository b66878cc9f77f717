package domain

import "time"

type WarehouseStatus string

const (
	WarehouseStatusPending  WarehouseStatus = "pending"
	WarehouseStatusApproved WarehouseStatus = "approved"
	WarehouseStatusRejected WarehouseStatus = "rejected"
)

type Warehouse struct {
	ID                   int64           `json:"id"`
	OwnerID              int64           `json:"owner_id"`
	Owner                *User           `json:"owner,omitempty"` // Populated when fetching warehouse details
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Address              string          `json:"address"`
	City                 string          `json:"city"`
	State                string          `json:"state"`
	PostalCode           string          `json:"postal_code"`
	SizeSqft             int64           `json:"size_sqft"`
	MonthlyRentCents     int64           `json:"monthly_rent_cents"`
	SecurityDepositCents int64           `json:"security_deposit_cents"`
	Images               []string        `json:"images"`
	Status               WarehouseStatus `json:"status"`
	RejectionReason      string          `json:"rejection_reason,omitempty"`
	ViewCount            int64           `json:"view_count"`
	CreatedOn            time.Time       `json:"created_on"`
	UpdatedOn            time.Time       `json:"updated_on"`
}

// WarehouseFilter narrows public warehouse listings.
type WarehouseFilter struct {
	City        string
	MinSizeSqft int64
	MaxRent     int64
}
