package domain

import "time"

type InquiryStatus string

const (
	InquiryStatusUnallocated InquiryStatus = "unallocated"
	InquiryStatusAllocated   InquiryStatus = "allocated"
	InquiryStatusInvalid     InquiryStatus = "invalid"
)

type Inquiry struct {
	ID          int64         `json:"id"`
	WarehouseID int64         `json:"warehouse_id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Company     string        `json:"company,omitempty"`
	Message     string        `json:"message"`
	Status      InquiryStatus `json:"status"`
	AllocatedTo *int64        `json:"allocated_to,omitempty"` // admin user id
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
}
