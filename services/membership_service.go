// Package services holds the business rules between the HTTP handlers
// and the repositories / content sources.
package services

import (
	"context"

	"github.com/zambiatennis/ztaweb/models"
	"github.com/zambiatennis/ztaweb/repository"
)

// MembershipService handles membership registrations.
type MembershipService interface {
	// Register validates the form and persists a new member. Validation
	// failures wrap pkg.ErrValidation; anything else is a storage error.
	Register(ctx context.Context, req *models.RegistrationRequest) (*models.Member, error)
}

type membershipService struct {
	memberRepo repository.MemberRepository
}

// NewMembershipService is the constructor — returns the interface.
func NewMembershipService(memberRepo repository.MemberRepository) MembershipService {
	return &membershipService{memberRepo: memberRepo}
}

func (s *membershipService) Register(ctx context.Context, req *models.RegistrationRequest) (*models.Member, error) {
	member, err := req.Validate()
	if err != nil {
		return nil, err
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}
