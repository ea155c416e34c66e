package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bleu-pos/ingredient-service/internal/batch"
	batchrepo "github.com/bleu-pos/ingredient-service/internal/batch/repository"
	"github.com/bleu-pos/ingredient-service/internal/catalog"
	catalogrepo "github.com/bleu-pos/ingredient-service/internal/catalog/repository"
	"github.com/bleu-pos/ingredient-service/internal/ingredient"
	ingredientrepo "github.com/bleu-pos/ingredient-service/internal/ingredient/repository"
)

// Repositories gives access to every repository bound to one unit of work.
type Repositories interface {
	Ingredients() ingredient.Repository
	Batches() batch.Repository
	Catalog() catalog.Repository
}

// TransactionScope runs a function within a database transaction. An error
// from the function rolls everything back; otherwise the transaction commits
// once, after the function returns.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

type SQLTransactionScope struct {
	db *sqlx.DB
}

func NewTransactionScope(db *sqlx.DB) *SQLTransactionScope {
	return &SQLTransactionScope{db: db}
}

func (s *SQLTransactionScope) Execute(ctx context.Context, fn func(repos Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(&txRepositories{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

type txRepositories struct {
	tx *sqlx.Tx
}

func (r *txRepositories) Ingredients() ingredient.Repository {
	return ingredientrepo.NewPGRepository(r.tx)
}

func (r *txRepositories) Batches() batch.Repository {
	return batchrepo.NewPGRepository(r.tx)
}

func (r *txRepositories) Catalog() catalog.Repository {
	return catalogrepo.NewPGRepository(r.tx)
}
