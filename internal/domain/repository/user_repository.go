package repository

import (
	"context"

	"github.com/waleed-alfaifi/invoices-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	// Create persiste el usuario; devuelve domain.ErrUsernameTaken si el
	// nombre ya está registrado.
	Create(ctx context.Context, user *entity.User) error
	// FindByUsername devuelve nil si el usuario no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindByID devuelve nil si el usuario no existe.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
