package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
// Las compras son inmutables: solo INSERT y SELECT.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una nueva compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, user_id, product_id, quantity, price, total, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.UserID, purchase.ProductID, purchase.Quantity,
		purchase.Price, purchase.Total, purchase.PurchaseDate,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// List devuelve compras anotadas con nombre de usuario y de producto, más recientes primero.
func (r *PurchaseRepo) List(filter repository.PurchaseFilter) ([]repository.PurchaseRecord, error) {
	query := `
		SELECT c.id, c.user_id, c.product_id, c.quantity, c.price, c.total, c.purchase_date,
		       u.full_name, p.name, p.image_url
		FROM purchases c
		JOIN users u ON u.id = c.user_id
		JOIN products p ON p.id = c.product_id
		WHERE 1=1`
	var args []any
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND c.user_id = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND c.purchase_date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND c.purchase_date <= $%d", len(args))
	}
	query += " ORDER BY c.purchase_date DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []repository.PurchaseRecord
	for rows.Next() {
		var rec repository.PurchaseRecord
		if err := rows.Scan(
			&rec.Purchase.ID, &rec.Purchase.UserID, &rec.Purchase.ProductID,
			&rec.Purchase.Quantity, &rec.Purchase.Price, &rec.Purchase.Total,
			&rec.Purchase.PurchaseDate, &rec.UserName, &rec.ProductName, &rec.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// ListSince devuelve las compras con fecha >= since (insumo del motor de reportes).
func (r *PurchaseRepo) ListSince(since time.Time) ([]*entity.Purchase, error) {
	query := `
		SELECT id, user_id, product_id, quantity, price, total, purchase_date
		FROM purchases WHERE purchase_date >= $1 ORDER BY purchase_date DESC`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("list purchases since: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var c entity.Purchase
		if err := rows.Scan(&c.ID, &c.UserID, &c.ProductID, &c.Quantity,
			&c.Price, &c.Total, &c.PurchaseDate); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
