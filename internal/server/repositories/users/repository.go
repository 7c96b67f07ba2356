// Package users contains storage backends for user records.
package users

import (
	"context"

	"github.com/dmitrijs2005/usermgmt/internal/server/models"
)

// Repository persists user records. Lookups of a missing user return
// common.ErrorNotFound; Create of an existing id returns
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, emailID string) (*models.User, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
