package services

import (
	"github.com/liamesika/adconnect/providers"
	"github.com/liamesika/adconnect/repositories"
)

// Services holds all service instances
type Services struct {
	OAuth OAuthService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, registry *providers.Registry) *Services {
	return &Services{
		OAuth: NewOAuthService(registry, repos.Credentials, repos.Audit),
	}
}
