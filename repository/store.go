package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store aggregates the per-entity repositories behind a single injectable
// dependency. Transaction runs fn against a store bound to one database
// transaction; returning an error rolls everything back.
type Store interface {
	Users() UserRepository
	Suppliers() SupplierRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Orders() OrderRepository
	Slugs() SlugRepository
	Transaction(ctx context.Context, fn func(Store) error) error
}

// GormStore implements Store using GORM
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new instance of GormStore
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserRepository         { return &GormUserRepository{db: s.db} }
func (s *GormStore) Suppliers() SupplierRepository { return &GormSupplierRepository{db: s.db} }
func (s *GormStore) Categories() CategoryRepository {
	return &GormCategoryRepository{db: s.db}
}
func (s *GormStore) Products() ProductRepository { return &GormProductRepository{db: s.db} }
func (s *GormStore) Orders() OrderRepository     { return &GormOrderRepository{db: s.db} }
func (s *GormStore) Slugs() SlugRepository       { return &GormSlugRepository{db: s.db} }

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
