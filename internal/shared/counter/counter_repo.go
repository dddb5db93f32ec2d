package counter

import (
	"context"
	"database/sql"

	"freshbit/internal/shared/database"

	"gorm.io/gorm"
)

const TypeDriveCode = "drive_code"

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	NextValue(ctx context.Context, orgID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// NextValue upsert atomik, aman untuk request paralel pada org yang sama.
func (r *repository) NextValue(ctx context.Context, orgID string, counterType string) (int64, error) {
	var next int64
	err := database.Conn(ctx, r.db, r.tx).Raw(`
		INSERT INTO org_counters (org_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (org_id, counter_type) DO UPDATE
		SET last_value = org_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, orgID, counterType).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}
