package notification

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact alamat email akun pemilik sebuah organisasi.
type Contact struct {
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
}

type Directory interface {
	College(ctx context.Context, id uuid.UUID) (Contact, error)
	Company(ctx context.Context, id uuid.UUID) (Contact, error)
}

type directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) Directory {
	return &directory{db: db}
}

func (d *directory) College(ctx context.Context, id uuid.UUID) (Contact, error) {
	return d.contact(ctx, "colleges", id)
}

func (d *directory) Company(ctx context.Context, id uuid.UUID) (Contact, error) {
	return d.contact(ctx, "companies", id)
}

func (d *directory) contact(ctx context.Context, table string, id uuid.UUID) (Contact, error) {
	var rows []Contact
	err := d.db.WithContext(ctx).
		Table(table+" o").
		Select("o.name, u.email").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return Contact{}, err
	}
	if len(rows) == 0 {
		return Contact{}, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}
