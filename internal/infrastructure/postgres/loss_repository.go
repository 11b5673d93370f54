package postgres

import (
	"context"
	"fmt"

	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

var _ repository.LossRepository = (*LossRepo)(nil)

// LossRepo implementación del puerto LossRepository sobre PostgreSQL.
type LossRepo struct {
	q Querier
}

// NewLossRepository construye el adaptador de persistencia para pérdidas.
func NewLossRepository(q Querier) *LossRepo {
	return &LossRepo{q: q}
}

// Create persiste una nueva pérdida.
func (r *LossRepo) Create(loss *entity.Loss) error {
	query := `
		INSERT INTO inventory_losses (id, product_id, quantity, loss_type, reason, reported_by, loss_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		loss.ID, loss.ProductID, loss.Quantity, loss.LossType,
		loss.Reason, loss.ReportedBy, loss.LossDate,
	)
	if err != nil {
		return fmt.Errorf("insert loss: %w", err)
	}
	return nil
}

// List devuelve pérdidas anotadas con datos del producto y el valor de la
// pérdida a precio actual, más recientes primero. El JOIN descarta pérdidas
// cuyo producto ya no existe.
func (r *LossRepo) List(filter repository.LossFilter) ([]repository.LossRecord, error) {
	query := `
		SELECT l.id, l.product_id, l.quantity, l.loss_type, l.reason, l.reported_by, l.loss_date,
		       p.name, p.category, p.price, p.price * l.quantity
		FROM inventory_losses l
		JOIN products p ON p.id = l.product_id
		WHERE 1=1`
	var args []any
	if filter.LossType != "" {
		args = append(args, filter.LossType)
		query += fmt.Sprintf(" AND l.loss_type = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND l.loss_date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND l.loss_date <= $%d", len(args))
	}
	query += " ORDER BY l.loss_date DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list losses: %w", err)
	}
	defer rows.Close()
	var list []repository.LossRecord
	for rows.Next() {
		var rec repository.LossRecord
		if err := rows.Scan(
			&rec.Loss.ID, &rec.Loss.ProductID, &rec.Loss.Quantity, &rec.Loss.LossType,
			&rec.Loss.Reason, &rec.Loss.ReportedBy, &rec.Loss.LossDate,
			&rec.ProductName, &rec.Category, &rec.Price, &rec.LossValue,
		); err != nil {
			return nil, fmt.Errorf("scan loss: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// ListAll devuelve todas las pérdidas registradas (insumo del motor de estadísticas).
func (r *LossRepo) ListAll() ([]*entity.Loss, error) {
	query := `
		SELECT id, product_id, quantity, loss_type, reason, reported_by, loss_date
		FROM inventory_losses ORDER BY loss_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all losses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Loss
	for rows.Next() {
		var l entity.Loss
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Quantity, &l.LossType,
			&l.Reason, &l.ReportedBy, &l.LossDate); err != nil {
			return nil, fmt.Errorf("scan loss: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina una pérdida por ID. No revierte el descuento de stock.
func (r *LossRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory_losses WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("delete loss: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
