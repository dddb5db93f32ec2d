package auth

import (
	"context"
	"database/sql"
	"strings"

	"freshbit/internal/domain"
	"freshbit/internal/shared/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, user *User) error
	CreateOrganization(ctx context.Context, role domain.Role, org *Organization) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status UserStatus) error
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

func (r *repository) Create(ctx context.Context, user *User) error {
	return database.Conn(ctx, r.db, r.tx).Create(user).Error
}

// CreateOrganization menulis ke companies atau colleges sesuai role akun.
func (r *repository) CreateOrganization(ctx context.Context, role domain.Role, org *Organization) error {
	table, err := domain.MatchRole(role, domain.RoleCases[string]{
		Admin:   func() string { return "" },
		Company: func() string { return "companies" },
		College: func() string { return "colleges" },
	})
	if err != nil {
		return err
	}
	if table == "" {
		return nil
	}
	return database.Conn(ctx, r.db, r.tx).Table(table).Create(org).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := database.Conn(ctx, r.db, r.tx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	if err := database.Conn(ctx, r.db, r.tx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.updateColumns(ctx, id, map[string]any{"password_hash": passwordHash})
}

func (r *repository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.updateColumns(ctx, id, map[string]any{"verified": true})
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status UserStatus) error {
	return r.updateColumns(ctx, id, map[string]any{"status": status})
}

func (r *repository) updateColumns(ctx context.Context, id uuid.UUID, values map[string]any) error {
	values["updated_at"] = gorm.Expr("NOW()")
	res := database.Conn(ctx, r.db, r.tx).Model(&User{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
