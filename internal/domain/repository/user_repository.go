package repository

import "github.com/clubtenis/tienda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Delete es eliminación lógica (Active = false).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetByUsernameOrEmail busca por cualquiera de los dos identificadores
	// (flujo de restablecimiento de contraseña).
	GetByUsernameOrEmail(identifier string) (*entity.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	List(onlyActive bool) ([]*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id, passwordHash string) error
	SoftDelete(id string) error
}
