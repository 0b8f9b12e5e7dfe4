package services

import (
	"context"

	"github.com/mlevko/storefront/internal/client/api"
)

// ProfileService exposes the profile read/update operations. The token comes
// in with every call; the service itself is stateless.
type ProfileService interface {
	Get(ctx context.Context, token string) (*api.Profile, error)
	Update(ctx context.Context, token string, dob string, gender string) error
}

type profileService struct {
	client api.Client
}

// NewProfileService constructs a ProfileService bound to the given API client.
func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (p *profileService) Get(ctx context.Context, token string) (*api.Profile, error) {
	return p.client.GetProfile(ctx, token)
}

func (p *profileService) Update(ctx context.Context, token string, dob string, gender string) error {
	return p.client.UpdateProfile(ctx, token, dob, gender)
}
