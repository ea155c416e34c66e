// Package storetest provides an in-memory TransactionScope for usecase
// tests. Execute snapshots all tables before running the callback and
// restores them when it fails, mirroring the rollback semantics of the SQL
// scope. Fail* fields inject write failures.
package storetest

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bleu-pos/ingredient-service/internal/batch"
	"github.com/bleu-pos/ingredient-service/internal/catalog"
	"github.com/bleu-pos/ingredient-service/internal/ingredient"
	ingredientdto "github.com/bleu-pos/ingredient-service/internal/ingredient/dto"
	"github.com/bleu-pos/ingredient-service/internal/model"
	"github.com/bleu-pos/ingredient-service/internal/status"
	"github.com/bleu-pos/ingredient-service/internal/store"
)

type Memory struct {
	IngredientRows []model.Ingredient
	BatchRows      []model.IngredientBatch
	ProductRows    []model.Product
	RecipeRows     []model.Recipe
	RecipeItemRows []model.RecipeIngredient

	// FailAddAmount makes AddAmount fail for the given ingredient ID.
	FailAddAmount map[string]error
	// FailRecompute makes the bulk status recompute fail.
	FailRecompute error

	// StatusWrites counts batch status corrections, for lazy-recompute
	// idempotence checks.
	StatusWrites int
}

func NewMemory() *Memory {
	return &Memory{FailAddAmount: map[string]error{}}
}

func (m *Memory) Execute(_ context.Context, fn func(repos store.Repositories) error) error {
	snapshot := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(snapshot)
		return err
	}
	return nil
}

func (m *Memory) Ingredients() ingredient.Repository { return &memIngredientRepo{m} }
func (m *Memory) Batches() batch.Repository          { return &memBatchRepo{m} }
func (m *Memory) Catalog() catalog.Repository        { return &memCatalogRepo{m} }

// Ingredient returns the stored ingredient by ID, for assertions.
func (m *Memory) Ingredient(id string) *model.Ingredient {
	for i := range m.IngredientRows {
		if m.IngredientRows[i].ID == id {
			return &m.IngredientRows[i]
		}
	}
	return nil
}

// Batch returns the stored batch by ID, for assertions.
func (m *Memory) Batch(id string) *model.IngredientBatch {
	for i := range m.BatchRows {
		if m.BatchRows[i].ID == id {
			return &m.BatchRows[i]
		}
	}
	return nil
}

type tables struct {
	ingredients  []model.Ingredient
	batches      []model.IngredientBatch
	statusWrites int
}

func (m *Memory) snapshot() tables {
	return tables{
		ingredients:  append([]model.Ingredient(nil), m.IngredientRows...),
		batches:      append([]model.IngredientBatch(nil), m.BatchRows...),
		statusWrites: m.StatusWrites,
	}
}

func (m *Memory) restore(t tables) {
	m.IngredientRows = t.ingredients
	m.BatchRows = t.batches
	m.StatusWrites = t.statusWrites
}

type memIngredientRepo struct {
	m *Memory
}

func (r *memIngredientRepo) FindAll(context.Context) ([]model.Ingredient, error) {
	out := append([]model.Ingredient(nil), r.m.IngredientRows...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memIngredientRepo) FindByID(_ context.Context, id string) (*model.Ingredient, error) {
	ing := r.m.Ingredient(id)
	if ing == nil {
		return nil, nil
	}
	copied := *ing
	return &copied, nil
}

func (r *memIngredientRepo) ExistsByName(_ context.Context, name, excludeID string) (bool, error) {
	for _, ing := range r.m.IngredientRows {
		if strings.EqualFold(ing.Name, name) && ing.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memIngredientRepo) Create(_ context.Context, ing *model.Ingredient) error {
	r.m.IngredientRows = append(r.m.IngredientRows, *ing)
	return nil
}

func (r *memIngredientRepo) Update(_ context.Context, ing *model.Ingredient) error {
	if stored := r.m.Ingredient(ing.ID); stored != nil {
		*stored = *ing
	}
	return nil
}

func (r *memIngredientRepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range r.m.IngredientRows {
		if r.m.IngredientRows[i].ID == id {
			r.m.IngredientRows = append(r.m.IngredientRows[:i], r.m.IngredientRows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memIngredientRepo) Count(context.Context) (int, error) {
	return len(r.m.IngredientRows), nil
}

func (r *memIngredientRepo) CountByStatus(context.Context) (*ingredientdto.StockStatusCounts, error) {
	counts := &ingredientdto.StockStatusCounts{}
	for _, ing := range r.m.IngredientRows {
		switch ing.Status {
		case model.StatusAvailable:
			counts.Available++
		case model.StatusLowStock:
			counts.LowStock++
		case model.StatusNotAvailable:
			counts.NotAvailable++
		}
	}
	return counts, nil
}

func (r *memIngredientRepo) FindLowStock(context.Context) ([]model.Ingredient, error) {
	out := []model.Ingredient{}
	for _, ing := range r.m.IngredientRows {
		if ing.Status == model.StatusLowStock {
			out = append(out, ing)
		}
	}
	return out, nil
}

func (r *memIngredientRepo) AddAmount(_ context.Context, id string, delta decimal.Decimal) error {
	if err := r.m.FailAddAmount[id]; err != nil {
		return err
	}
	if stored := r.m.Ingredient(id); stored != nil {
		stored.Amount = stored.Amount.Add(delta)
	}
	return nil
}

func (r *memIngredientRepo) RecomputeAllStatuses(context.Context) error {
	if r.m.FailRecompute != nil {
		return r.m.FailRecompute
	}
	for i := range r.m.IngredientRows {
		ing := &r.m.IngredientRows[i]
		ing.Status = status.ForQuantity(ing.Amount, ing.Unit)
	}
	return nil
}

type memBatchRepo struct {
	m *Memory
}

func (r *memBatchRepo) Create(_ context.Context, b *model.IngredientBatch) error {
	r.m.BatchRows = append(r.m.BatchRows, *b)
	return nil
}

func (r *memBatchRepo) FindByID(_ context.Context, id string) (*model.IngredientBatch, error) {
	b := r.m.Batch(id)
	if b == nil {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *memBatchRepo) FindAll(context.Context) ([]model.IngredientBatch, error) {
	return append([]model.IngredientBatch(nil), r.m.BatchRows...), nil
}

func (r *memBatchRepo) FindByIngredient(_ context.Context, ingredientID string) ([]model.IngredientBatch, error) {
	out := []model.IngredientBatch{}
	for _, b := range r.m.BatchRows {
		if b.IngredientID == ingredientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBatchRepo) Update(_ context.Context, b *model.IngredientBatch) error {
	if stored := r.m.Batch(b.ID); stored != nil {
		*stored = *b
	}
	return nil
}

func (r *memBatchRepo) UpdateStatus(_ context.Context, id, newStatus string) error {
	if stored := r.m.Batch(id); stored != nil {
		stored.Status = newStatus
		r.m.StatusWrites++
	}
	return nil
}

func (r *memBatchRepo) CountByIngredient(_ context.Context, ingredientID string) (int, error) {
	count := 0
	for _, b := range r.m.BatchRows {
		if b.IngredientID == ingredientID {
			count++
		}
	}
	return count, nil
}

type memCatalogRepo struct {
	m *Memory
}

func (r *memCatalogRepo) FindRecipeIDByProduct(_ context.Context, productName string) (string, error) {
	for _, p := range r.m.ProductRows {
		if p.Name != productName {
			continue
		}
		for _, rec := range r.m.RecipeRows {
			if rec.ProductID == p.ID {
				return rec.ID, nil
			}
		}
	}
	return "", nil
}

func (r *memCatalogRepo) RecipeIngredients(_ context.Context, recipeID string) ([]model.RecipeIngredient, error) {
	out := []model.RecipeIngredient{}
	for _, ri := range r.m.RecipeItemRows {
		if ri.RecipeID == recipeID {
			out = append(out, ri)
		}
	}
	return out, nil
}
