package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/bleu-pos/ingredient-service/internal/ingredient/dto"
	"github.com/bleu-pos/ingredient-service/internal/model"
)

// PGRepository runs against either the shared pool or an open transaction;
// both satisfy sqlx.ExtContext.
type PGRepository struct {
	DB sqlx.ExtContext
}

func NewPGRepository(db sqlx.ExtContext) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Ingredient, error) {
	ingredients := []model.Ingredient{}
	query := `SELECT id, name, amount, unit, best_before_date, expiration_date, status
              FROM ingredients ORDER BY name`
	err := sqlx.SelectContext(ctx, r.DB, &ingredients, query)
	return ingredients, err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Ingredient, error) {
	var ing model.Ingredient
	query := `SELECT id, name, amount, unit, best_before_date, expiration_date, status
              FROM ingredients WHERE id = $1`
	err := sqlx.GetContext(ctx, r.DB, &ing, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ing, nil
}

func (r *PGRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM ingredients WHERE LOWER(name) = LOWER($1) AND id != $2)`
	err := sqlx.GetContext(ctx, r.DB, &exists, query, name, excludeID)
	return exists, err
}

func (r *PGRepository) Create(ctx context.Context, ing *model.Ingredient) error {
	query := `
        INSERT INTO ingredients (id, name, amount, unit, best_before_date, expiration_date, status)
        VALUES (:id, :name, :amount, :unit, :best_before_date, :expiration_date, :status)
    `
	_, err := sqlx.NamedExecContext(ctx, r.DB, query, ing)
	return err
}

func (r *PGRepository) Update(ctx context.Context, ing *model.Ingredient) error {
	query := `
        UPDATE ingredients SET
            name = :name,
            amount = :amount,
            unit = :unit,
            best_before_date = :best_before_date,
            expiration_date = :expiration_date,
            status = :status
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, r.DB, query, ing)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *PGRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.DB, &count, `SELECT COUNT(*) FROM ingredients`)
	return count, err
}

func (r *PGRepository) CountByStatus(ctx context.Context) (*dto.StockStatusCounts, error) {
	var counts dto.StockStatusCounts
	query := `
        SELECT
            COUNT(*) FILTER (WHERE status = 'Available')     AS available_count,
            COUNT(*) FILTER (WHERE status = 'Low Stock')     AS low_stock_count,
            COUNT(*) FILTER (WHERE status = 'Not Available') AS not_available_count
        FROM ingredients
    `
	err := sqlx.GetContext(ctx, r.DB, &counts, query)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *PGRepository) FindLowStock(ctx context.Context) ([]model.Ingredient, error) {
	ingredients := []model.Ingredient{}
	query := `SELECT id, name, amount, unit, best_before_date, expiration_date, status
              FROM ingredients WHERE status = 'Low Stock' ORDER BY name`
	err := sqlx.SelectContext(ctx, r.DB, &ingredients, query)
	return ingredients, err
}

func (r *PGRepository) AddAmount(ctx context.Context, id string, delta decimal.Decimal) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE ingredients SET amount = amount + $1 WHERE id = $2`, delta, id)
	return err
}

// RecomputeAllStatuses is the bulk form of status.ForQuantity. The CASE arms
// must stay in lockstep with the Go threshold table.
func (r *PGRepository) RecomputeAllStatuses(ctx context.Context) error {
	query := `
        UPDATE ingredients SET status = CASE
            WHEN amount <= 0 THEN 'Not Available'
            WHEN (LOWER(TRIM(unit)) = 'g'  AND amount <= 50)  OR
                 (LOWER(TRIM(unit)) = 'kg' AND amount <= 0.5) OR
                 (LOWER(TRIM(unit)) = 'ml' AND amount <= 100) OR
                 (LOWER(TRIM(unit)) = 'l'  AND amount <= 0.5) OR
                 (LOWER(TRIM(unit)) NOT IN ('g', 'kg', 'ml', 'l') AND amount <= 1)
            THEN 'Low Stock'
            ELSE 'Available'
        END
    `
	_, err := r.DB.ExecContext(ctx, query)
	return err
}
