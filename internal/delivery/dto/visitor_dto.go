package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type SaveVisitorRequest struct {
	FirstName string `json:"first_name" validate:"required,max=60"`
	LastName  string `json:"last_name" validate:"required,max=60"`
	Phone     string `json:"phone" validate:"required,max=30"`
	Address   string `json:"address" validate:"required,max=255"`
	Sex       string `json:"sex" validate:"required,oneof=MALE FEMALE"`
	Age       int    `json:"age" validate:"gte=0,lte=130"`
	Bio       string `json:"bio" validate:"omitempty"`
}

// Response DTOs

type VisitorResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Sex       string    `json:"sex"`
	Age       int       `json:"age"`
	Bio       string    `json:"bio,omitempty"`
}

type VisitorListResponse struct {
	Visitors []VisitorResponse `json:"visitors"`
	Total    int               `json:"total"`
}
