package college

import (
	"context"
	"strings"

	"freshbit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*College, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]College, error)
	Update(ctx context.Context, college *College) error
	List(ctx context.Context, filter ListFilter) ([]CollegeWithOwner, int64, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*College, error) {
	var c College
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]College, error) {
	var rows []College
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, c *College) error {
	return r.db.WithContext(ctx).Model(c).
		Select("name", "city", "state", "website", "contact_phone", "updated_at").
		Updates(c).Error
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]CollegeWithOwner, int64, error) {
	q := r.db.WithContext(ctx).
		Table("colleges").
		Joins("JOIN users u ON u.id = colleges.user_id")
	if filter.Approved != nil {
		q = q.Where("colleges.approved = ?", *filter.Approved)
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		q = q.Where("colleges.name ILIKE ? OR colleges.city ILIKE ?", "%"+s+"%", "%"+s+"%")
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []CollegeWithOwner
	err := q.Select("colleges.*, u.email AS owner_email").
		Order("colleges.name ASC").
		Scopes(tenant.Paginate(filter.Page, filter.PageSize)).
		Scan(&rows).Error
	return rows, total, err
}

func (r *repository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	res := r.db.WithContext(ctx).Model(&College{}).
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
