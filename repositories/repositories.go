package repositories

import (
	"database/sql"

	"github.com/liamesika/adconnect/secretbox"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Credentials CredentialRepository
	Audit       AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB, box *secretbox.SecretBox) *Repositories {
	return &Repositories{
		Credentials: NewCredentialRepository(db, box),
		Audit:       NewAuditRepository(db),
	}
}
