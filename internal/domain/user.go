package domain

import "time"

type User struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Company          string     `json:"company,omitempty"`
	PasswordHash     string     `json:"-"`
	IsAdmin          bool       `json:"is_admin"`
	ResetCodeHash    *string    `json:"-"`
	ResetCodeExpires *time.Time `json:"-"`
	CreatedOn        time.Time  `json:"created_on"`
	UpdatedOn        time.Time  `json:"updated_on"`
}
