package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User model
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"type:varchar(50);default:'staff'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Supplier struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SupplierSlug string    `gorm:"uniqueIndex;not null" json:"supplierSlug"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductSlug string     `gorm:"uniqueIndex;not null" json:"productSlug"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Quantity    int        `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"categoryId"`
	SupplierID  *uuid.UUID `gorm:"type:uuid;index" json:"supplierId"`
	Category    *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Supplier    *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// SlugSequence is the per-prefix monotonic counter backing slug issuance.
// Issued numbers are never reused, even after the row that carried them is
// deleted.
type SlugSequence struct {
	Prefix string `gorm:"primaryKey;size:8"`
	Value  int64  `gorm:"not null;default:0"`
}

// Migrate runs auto migration for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Supplier{},
		&Category{},
		&Product{},
		&Order{},
		&SlugSequence{},
	)
}
