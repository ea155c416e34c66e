package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/bleu-pos/ingredient-service/internal/model"
)

type PGRepository struct {
	DB sqlx.ExtContext
}

func NewPGRepository(db sqlx.ExtContext) *PGRepository {
	return &PGRepository{DB: db}
}

const batchColumns = `
    b.id, b.ingredient_id, i.name AS ingredient_name, b.quantity, b.unit,
    b.batch_date, b.expiration_date, b.restock_date, b.logged_by, b.notes, b.status
`

func (r *PGRepository) Create(ctx context.Context, b *model.IngredientBatch) error {
	query := `
        INSERT INTO ingredient_batches
            (id, ingredient_id, quantity, unit, batch_date, expiration_date,
             restock_date, logged_by, notes, status)
        VALUES
            (:id, :ingredient_id, :quantity, :unit, :batch_date, :expiration_date,
             :restock_date, :logged_by, :notes, :status)
    `
	_, err := sqlx.NamedExecContext(ctx, r.DB, query, b)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.IngredientBatch, error) {
	var b model.IngredientBatch
	query := `
        SELECT ` + batchColumns + `
        FROM ingredient_batches b
        JOIN ingredients i ON i.id = b.ingredient_id
        WHERE b.id = $1
    `
	err := sqlx.GetContext(ctx, r.DB, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.IngredientBatch, error) {
	batches := []model.IngredientBatch{}
	query := `
        SELECT ` + batchColumns + `
        FROM ingredient_batches b
        JOIN ingredients i ON i.id = b.ingredient_id
        ORDER BY b.restock_date DESC
    `
	err := sqlx.SelectContext(ctx, r.DB, &batches, query)
	return batches, err
}

func (r *PGRepository) FindByIngredient(ctx context.Context, ingredientID string) ([]model.IngredientBatch, error) {
	batches := []model.IngredientBatch{}
	query := `
        SELECT ` + batchColumns + `
        FROM ingredient_batches b
        JOIN ingredients i ON i.id = b.ingredient_id
        WHERE b.ingredient_id = $1
        ORDER BY b.restock_date DESC
    `
	err := sqlx.SelectContext(ctx, r.DB, &batches, query, ingredientID)
	return batches, err
}

func (r *PGRepository) Update(ctx context.Context, b *model.IngredientBatch) error {
	query := `
        UPDATE ingredient_batches SET
            quantity = :quantity,
            unit = :unit,
            batch_date = :batch_date,
            expiration_date = :expiration_date,
            logged_by = :logged_by,
            notes = :notes,
            status = :status
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, r.DB, query, b)
	return err
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE ingredient_batches SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *PGRepository) CountByIngredient(ctx context.Context, ingredientID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.DB, &count,
		`SELECT COUNT(*) FROM ingredient_batches WHERE ingredient_id = $1`, ingredientID)
	return count, err
}
