package user

import (
	"context"
	"time"

	"freelancehub/internal/common"
)

type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID        common.UUID `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      Role        `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type Repository interface {
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	List(ctx context.Context) ([]User, error)
}
