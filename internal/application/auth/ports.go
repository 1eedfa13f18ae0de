package auth

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción, con repos atados a la tx.
// Se usa para que User y Profile se inserten atómicamente en el registro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}
