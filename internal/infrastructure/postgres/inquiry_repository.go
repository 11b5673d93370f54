package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// InquiryRepo implementación del puerto InquiryRepository sobre PostgreSQL.
type InquiryRepo struct {
	q Querier
}

// NewInquiryRepository construye el adaptador de persistencia para consultas de servicios.
func NewInquiryRepository(q Querier) *InquiryRepo {
	return &InquiryRepo{q: q}
}

// Create persiste una nueva consulta.
func (r *InquiryRepo) Create(inquiry *entity.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, user_id, service_type, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		inquiry.ID, inquiry.UserID, inquiry.ServiceType, inquiry.Message,
		inquiry.Status, inquiry.CreatedAt, inquiry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// GetByID obtiene una consulta por ID. Devuelve (nil, nil) si no existe.
func (r *InquiryRepo) GetByID(id string) (*entity.Inquiry, error) {
	query := `
		SELECT id, user_id, service_type, message, status, created_at, updated_at
		FROM inquiries WHERE id = $1`
	var q entity.Inquiry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.UserID, &q.ServiceType, &q.Message, &q.Status, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return &q, nil
}

// List devuelve consultas anotadas con nombre y email del usuario, más recientes primero.
func (r *InquiryRepo) List(filter repository.InquiryFilter) ([]repository.InquiryRecord, error) {
	query := `
		SELECT q.id, q.user_id, q.service_type, q.message, q.status, q.created_at, q.updated_at,
		       u.full_name, u.email
		FROM inquiries q
		JOIN users u ON u.id = q.user_id
		WHERE 1=1`
	var args []any
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND q.user_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND q.status = $%d", len(args))
	}
	if filter.ServiceType != "" {
		args = append(args, filter.ServiceType)
		query += fmt.Sprintf(" AND q.service_type = $%d", len(args))
	}
	query += " ORDER BY q.created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()
	var list []repository.InquiryRecord
	for rows.Next() {
		var rec repository.InquiryRecord
		if err := rows.Scan(
			&rec.Inquiry.ID, &rec.Inquiry.UserID, &rec.Inquiry.ServiceType,
			&rec.Inquiry.Message, &rec.Inquiry.Status, &rec.Inquiry.CreatedAt,
			&rec.Inquiry.UpdatedAt, &rec.UserName, &rec.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Update actualiza el estado de una consulta.
func (r *InquiryRepo) Update(inquiry *entity.Inquiry) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inquiries SET status = $2, updated_at = $3 WHERE id = $1`,
		inquiry.ID, inquiry.Status, inquiry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inquiry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
