package handlers

import (
	"time"

	"centime/internal/domain/user"
)

type CustomerResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

type CustomerDetailResponse struct {
	CustomerResponse
	Profile     *ProfileResponse `json:"profile,omitempty"`
	UnpaidBills int64            `json:"unpaid_bills"`
}

func toCustomerResponse(u *user.User) CustomerResponse {
	return CustomerResponse{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		Active:    u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}

func toProfileResponse(p *user.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		FullName: p.FullName(),
		Phone:    p.Phone(),
		Address:  p.Address(),
	}
}
