package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/it22117250/ITPM-Project/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlugRepository issues sequential slug numbers. Numbers are strictly
// increasing per prefix and are never handed out twice, which keeps slugs
// unique and monotonic even under concurrent creations.
type SlugRepository interface {
	// Next reserves and returns the next sequence number for prefix.
	// Must be called inside the transaction that persists the new record.
	Next(ctx context.Context, prefix string) (int64, error)
	// Seed raises the counter for prefix to at least value. Used at startup
	// to fold in slugs issued before the counter table existed.
	Seed(ctx context.Context, prefix string, value int64) error
}

// GormSlugRepository implements SlugRepository using a counter row per
// prefix, locked FOR UPDATE so concurrent issuers serialize.
type GormSlugRepository struct {
	db *gorm.DB
}

func (r *GormSlugRepository) Next(ctx context.Context, prefix string) (int64, error) {
	var seq models.SlugSequence
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("prefix = ?", prefix).
		First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = models.SlugSequence{Prefix: prefix, Value: 0}
		if err := r.db.WithContext(ctx).Create(&seq).Error; err != nil {
			return 0, fmt.Errorf("create slug sequence %s: %w", prefix, err)
		}
	} else if err != nil {
		return 0, err
	}

	seq.Value++
	if err := r.db.WithContext(ctx).
		Model(&models.SlugSequence{}).
		Where("prefix = ?", prefix).
		Update("value", seq.Value).Error; err != nil {
		return 0, fmt.Errorf("advance slug sequence %s: %w", prefix, err)
	}
	return seq.Value, nil
}

func (r *GormSlugRepository) Seed(ctx context.Context, prefix string, value int64) error {
	seq := models.SlugSequence{Prefix: prefix, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "prefix"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": gorm.Expr("GREATEST(slug_sequences.value, ?)", value)}),
		}).
		Create(&seq).Error
}

// SeedFromExisting scans the highest already-issued slug in each slugged
// table and raises the matching counter so newly issued slugs stay above
// legacy ones. Runs once at startup after migration.
func SeedFromExisting(ctx context.Context, store Store) error {
	type source struct {
		prefix string
		table  string
		column string
	}
	sources := []source{
		{models.OrderSlugPrefix, "orders", "order_slug"},
		{models.ProductSlugPrefix, "products", "product_slug"},
		{models.SupplierSlugPrefix, "suppliers", "supplier_slug"},
	}

	gs, ok := store.(*GormStore)
	if !ok {
		return nil
	}
	for _, src := range sources {
		// Numeric max over the suffix, not a string sort: ORD1000 must win
		// over ORD999 regardless of width.
		var last *int64
		row := gs.db.WithContext(ctx).
			Table(src.table).
			Select(fmt.Sprintf("MAX(CAST(SUBSTR(%s, %d) AS BIGINT))", src.column, len(src.prefix)+1)).
			Row()
		if err := row.Scan(&last); err != nil {
			return fmt.Errorf("scan last %s slug: %w", src.prefix, err)
		}
		if last == nil {
			continue
		}
		if err := store.Slugs().Seed(ctx, src.prefix, *last); err != nil {
			return err
		}
	}
	return nil
}
