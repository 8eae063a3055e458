package me

import (
	"context"

	"github.com/hagio-gakuto/user-directory/domain/user"
)

// ApplicationService resolves the acting identity to its own profile.
type ApplicationService struct {
	userRepo user.Repository
}

// NewApplicationService creates the my-page application service.
func NewApplicationService(userRepo user.Repository) *ApplicationService {
	return &ApplicationService{userRepo: userRepo}
}

// ProfileResponse My-page profile DTO
type ProfileResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// GetProfile looks the actor up in the directory. An unknown or
// soft-deleted identity is NotFound; the boundary never invents one.
func (s *ApplicationService) GetProfile(ctx context.Context, actorID string) (*ProfileResponse, error) {
	u, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.IsDeleted() {
		return nil, user.NewUserNotFoundError(actorID)
	}

	return &ProfileResponse{
		ID:       u.ID(),
		FullName: u.Name().FullName(),
		Email:    u.Email().Value(),
		Role:     string(u.Role()),
	}, nil
}
