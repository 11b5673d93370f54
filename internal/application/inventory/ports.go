package inventory

import (
	"context"

	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta de la pérdida y el
// descuento de stock se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		lossRepo repository.LossRepository,
		productRepo repository.ProductRepository,
	) error) error
}
