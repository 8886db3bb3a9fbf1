package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/interview-me/api/internal/entity"
)

// ClientRepository is the production implementation of the client store
// boundary, selected when DATABASE_URL is set.
type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientColumns = `id, worker_id, name, email, phone, linkedin_url, status, payment_status,
		total_interviews, total_paid, is_new, assigned_at, created_at, updated_at`

func (r *ClientRepository) List(ctx context.Context, filter entity.ClientFilter) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	var args []interface{}
	var conds []string

	if filter.WorkerID != "" {
		args = append(args, filter.WorkerID)
		conds = append(conds, "worker_id = $1")
	}
	if filter.Status != "" && filter.Status != "all" {
		if filter.Status == "new" {
			args = append(args, time.Now().Add(-entity.NewClientWindow))
			conds = append(conds, "assigned_at > $"+strconv.Itoa(len(args)))
		} else {
			args = append(args, filter.Status)
			conds = append(conds, "status = $"+strconv.Itoa(len(args)))
		}
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("database: list clients failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)

	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrClientNotFound
	}
	return c, err
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.WorkerID, c.Name, c.Email, c.Phone, c.LinkedinURL,
		c.Status, c.PaymentStatus, c.TotalInterviews, c.TotalPaid,
		c.IsNew, c.AssignedAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		log.Printf("database: create client failed: %v", err)
	}
	return err
}

func (r *ClientRepository) Update(ctx context.Context, id string, fields entity.ClientUpdate) (*entity.Client, error) {
	// COALESCE keeps columns whose pointer came in nil.
	query := `
		UPDATE clients SET
			name         = COALESCE($2, name),
			email        = COALESCE($3, email),
			phone        = COALESCE($4, phone),
			linkedin_url = COALESCE($5, linkedin_url),
			status       = COALESCE($6, status),
			updated_at   = $7
		WHERE id = $1
		RETURNING ` + clientColumns

	row := r.DB.QueryRowContext(ctx, query,
		id, fields.Name, fields.Email, fields.Phone, fields.LinkedinURL, fields.Status,
		time.Now(),
	)

	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrClientNotFound
	}
	return c, err
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrClientNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.WorkerID, &c.Name, &c.Email, &c.Phone, &c.LinkedinURL,
		&c.Status, &c.PaymentStatus, &c.TotalInterviews, &c.TotalPaid,
		&c.IsNew, &c.AssignedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
