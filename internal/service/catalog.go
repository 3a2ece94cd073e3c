package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/serunimart/api/internal/database"
)

// ComboStore defines the DB methods needed to persist a combo with its
// constituents. Satisfied by *database.Queries (and its WithTx variant).
type ComboStore interface {
	CreateCombo(ctx context.Context, arg database.CreateComboParams) (database.Combo, error)
	UpdateCombo(ctx context.Context, arg database.UpdateComboParams) (database.Combo, error)
	CreateComboItem(ctx context.Context, arg database.CreateComboItemParams) (database.ComboItem, error)
	DeleteComboItemsByCombo(ctx context.Context, comboID uuid.UUID) (int64, error)
}

// NewComboStore creates a ComboStore from a DBTX (pool or tx).
type NewComboStore func(db database.DBTX) ComboStore

// ComboService persists combos and their constituents atomically. A combo
// row must never exist without its items, so the parent write and the item
// writes share one transaction.
type ComboService struct {
	pool     TxBeginner
	newStore NewComboStore
}

// NewComboService creates a new ComboService.
func NewComboService(pool TxBeginner, newStore NewComboStore) *ComboService {
	return &ComboService{pool: pool, newStore: newStore}
}

// CreateComboWithItems inserts a combo and all its items in one transaction.
func (s *ComboService) CreateComboWithItems(ctx context.Context, arg database.CreateComboParams, items []database.CreateComboItemParams) (database.Combo, []database.ComboItem, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return database.Combo{}, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	combo, err := store.CreateCombo(ctx, arg)
	if err != nil {
		return database.Combo{}, nil, fmt.Errorf("create combo: %w", err)
	}

	results := make([]database.ComboItem, 0, len(items))
	for _, item := range items {
		item.ComboID = combo.ID
		row, err := store.CreateComboItem(ctx, item)
		if err != nil {
			return database.Combo{}, nil, fmt.Errorf("create combo item: %w", err)
		}
		results = append(results, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return database.Combo{}, nil, fmt.Errorf("commit tx: %w", err)
	}
	return combo, results, nil
}

// ReplaceCombo updates a combo and swaps its full item set in one
// transaction, so a failure mid-replace never strands an itemless combo.
// Returns pgx.ErrNoRows (wrapped) when the combo does not exist.
func (s *ComboService) ReplaceCombo(ctx context.Context, arg database.UpdateComboParams, items []database.CreateComboItemParams) (database.Combo, []database.ComboItem, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return database.Combo{}, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	combo, err := store.UpdateCombo(ctx, arg)
	if err != nil {
		return database.Combo{}, nil, fmt.Errorf("update combo: %w", err)
	}
	if _, err := store.DeleteComboItemsByCombo(ctx, arg.ID); err != nil {
		return database.Combo{}, nil, fmt.Errorf("clear combo items: %w", err)
	}

	results := make([]database.ComboItem, 0, len(items))
	for _, item := range items {
		item.ComboID = arg.ID
		row, err := store.CreateComboItem(ctx, item)
		if err != nil {
			return database.Combo{}, nil, fmt.Errorf("create combo item: %w", err)
		}
		results = append(results, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return database.Combo{}, nil, fmt.Errorf("commit tx: %w", err)
	}
	return combo, results, nil
}

// BulkPricingStore defines the DB methods needed to persist a pricing set
// with its tiers. Satisfied by *database.Queries (and its WithTx variant).
type BulkPricingStore interface {
	CreateBulkPricing(ctx context.Context, name string) (database.BulkPricing, error)
	UpdateBulkPricing(ctx context.Context, arg database.UpdateBulkPricingParams) (database.BulkPricing, error)
	CreateBulkPricingTier(ctx context.Context, arg database.CreateBulkPricingTierParams) (database.BulkPricingTier, error)
	DeleteBulkPricingTiers(ctx context.Context, bulkPricingID uuid.UUID) (int64, error)
}

// NewBulkPricingStore creates a BulkPricingStore from a DBTX (pool or tx).
type NewBulkPricingStore func(db database.DBTX) BulkPricingStore

// BulkPricingService persists pricing sets and their tiers atomically.
// Order intake matches against active tiers, so a set must never be visible
// without the tiers that define it.
type BulkPricingService struct {
	pool     TxBeginner
	newStore NewBulkPricingStore
}

// NewBulkPricingService creates a new BulkPricingService.
func NewBulkPricingService(pool TxBeginner, newStore NewBulkPricingStore) *BulkPricingService {
	return &BulkPricingService{pool: pool, newStore: newStore}
}

// CreateSetWithTiers inserts a pricing set and its tiers in one transaction.
func (s *BulkPricingService) CreateSetWithTiers(ctx context.Context, name string, tiers []database.CreateBulkPricingTierParams) (database.BulkPricing, []database.BulkPricingTier, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return database.BulkPricing{}, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	bp, err := store.CreateBulkPricing(ctx, name)
	if err != nil {
		return database.BulkPricing{}, nil, fmt.Errorf("create bulk pricing: %w", err)
	}

	results, err := insertTiers(ctx, store, bp.ID, tiers)
	if err != nil {
		return database.BulkPricing{}, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return database.BulkPricing{}, nil, fmt.Errorf("commit tx: %w", err)
	}
	return bp, results, nil
}

// ReplaceSet renames a pricing set and swaps its full tier list in one
// transaction. Returns pgx.ErrNoRows (wrapped) when the set does not exist.
func (s *BulkPricingService) ReplaceSet(ctx context.Context, arg database.UpdateBulkPricingParams, tiers []database.CreateBulkPricingTierParams) (database.BulkPricing, []database.BulkPricingTier, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return database.BulkPricing{}, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	bp, err := store.UpdateBulkPricing(ctx, arg)
	if err != nil {
		return database.BulkPricing{}, nil, fmt.Errorf("update bulk pricing: %w", err)
	}
	if _, err := store.DeleteBulkPricingTiers(ctx, arg.ID); err != nil {
		return database.BulkPricing{}, nil, fmt.Errorf("clear bulk pricing tiers: %w", err)
	}

	results, err := insertTiers(ctx, store, arg.ID, tiers)
	if err != nil {
		return database.BulkPricing{}, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return database.BulkPricing{}, nil, fmt.Errorf("commit tx: %w", err)
	}
	return bp, results, nil
}

func insertTiers(ctx context.Context, store BulkPricingStore, setID uuid.UUID, tiers []database.CreateBulkPricingTierParams) ([]database.BulkPricingTier, error) {
	results := make([]database.BulkPricingTier, 0, len(tiers))
	for _, tier := range tiers {
		tier.BulkPricingID = setID
		row, err := store.CreateBulkPricingTier(ctx, tier)
		if err != nil {
			return nil, fmt.Errorf("create bulk pricing tier: %w", err)
		}
		results = append(results, row)
	}
	return results, nil
}
