package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las consultas devuelven (nil, nil) cuando la fila no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
