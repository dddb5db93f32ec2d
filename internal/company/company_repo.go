package company

import (
	"context"
	"strings"

	"freshbit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_repo_mock.go -package=mock . Repository
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	Update(ctx context.Context, company *Company) error
	List(ctx context.Context, filter ListFilter) ([]CompanyWithOwner, int64, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var company Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Model(company).Select(
		"name", "industry", "website", "description", "contact_phone", "updated_at",
	).Updates(company).Error
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]CompanyWithOwner, int64, error) {
	q := r.db.WithContext(ctx).
		Table("companies").
		Joins("JOIN users u ON u.id = companies.user_id")
	if filter.Approved != nil {
		q = q.Where("companies.approved = ?", *filter.Approved)
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		q = q.Where("companies.name ILIKE ?", "%"+s+"%")
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []CompanyWithOwner
	err := q.Select("companies.*, u.email AS owner_email").
		Order("companies.created_at DESC").
		Scopes(tenant.Paginate(filter.Page, filter.PageSize)).
		Scan(&rows).Error
	return rows, total, err
}

func (r *repository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	res := r.db.WithContext(ctx).Model(&Company{}).
		Where("id = ?", id).
		Updates(map[string]any{"approved": approved, "updated_at": gorm.Expr("NOW()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
