package drive

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"freshbit/internal/domain"
	"freshbit/internal/shared/database"
	"freshbit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=drive_repo.go -destination=mock/drive_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, d *Drive) error
	GetByID(ctx context.Context, id uuid.UUID) (*Drive, error)
	// GetForUpdate mengunci baris drive sampai tx selesai.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*Drive, error)
	GetVisible(ctx context.Context, p domain.Principal, id uuid.UUID) (*DriveWithCompany, error)
	List(ctx context.Context, p domain.Principal, filter ListFilter) ([]DriveWithCompany, int64, error)
	Update(ctx context.Context, d *Drive) error
	SaveLifecycle(ctx context.Context, d *Drive) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasApplications(ctx context.Context, id uuid.UUID) (bool, error)
	ListExpired(ctx context.Context, today time.Time, limit int) ([]Drive, error)

	SeedStages(ctx context.Context, driveID, scope uuid.UUID, now time.Time) error
	ListStages(ctx context.Context, driveID, scope uuid.UUID) ([]Stage, error)
	SaveAdvance(ctx context.Context, driveID, scope uuid.UUID, completed, activated StageName, actor uuid.UUID, now time.Time) error
	SetScopeStage(ctx context.Context, driveID, scope uuid.UUID, stage StageName) error
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, d *Drive) error {
	return r.conn(ctx).Create(d).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Drive, error) {
	var d Drive
	if err := r.conn(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*Drive, error) {
	var d Drive
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) visible(ctx context.Context, p domain.Principal) *gorm.DB {
	return r.conn(ctx).
		Table("drives").
		Joins("JOIN companies c ON c.id = drives.company_id").
		Scopes(tenant.DriveVisibility(p))
}

func (r *repository) GetVisible(ctx context.Context, p domain.Principal, id uuid.UUID) (*DriveWithCompany, error) {
	var rows []DriveWithCompany
	err := r.visible(ctx, p).
		Select("drives.*, c.name AS company_name").
		Where("drives.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *repository) List(ctx context.Context, p domain.Principal, filter ListFilter) ([]DriveWithCompany, int64, error) {
	q := r.visible(ctx, p)
	if filter.Status != "" {
		q = q.Where("drives.status = ?", filter.Status)
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("drives.title ILIKE ? OR drives.job_role ILIKE ? OR drives.code ILIKE ?", like, like, like)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []DriveWithCompany
	err := q.Select("drives.*, c.name AS company_name").
		Order("drives.created_at DESC").
		Scopes(tenant.Paginate(filter.Page, filter.PageSize)).
		Scan(&rows).Error
	return rows, total, err
}

func (r *repository) Update(ctx context.Context, d *Drive) error {
	return r.conn(ctx).Model(d).
		Select("title", "description", "job_role", "ctc", "location", "eligibility", "start_date", "end_date", "updated_at").
		Updates(d).Error
}

func (r *repository) SaveLifecycle(ctx context.Context, d *Drive) error {
	return r.conn(ctx).Model(d).
		Select("status", "current_stage", "published_at", "closed_at", "updated_at").
		Updates(d).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&Drive{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) HasApplications(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM applications WHERE drive_id = ?)", id).
		Scan(&exists).Error
	return exists, err
}

func (r *repository) ListExpired(ctx context.Context, today time.Time, limit int) ([]Drive, error) {
	var rows []Drive
	err := r.conn(ctx).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", StatusPublished, today.Format(dateLayout)).
		Order("end_date ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// SeedStages membuat lima baris pipeline dengan APPLICATIONS ACTIVE. Scope yang
// sudah punya pipeline tidak disentuh.
func (r *repository) SeedStages(ctx context.Context, driveID, scope uuid.UUID, now time.Time) error {
	rows := make([]Stage, 0, len(StageOrder))
	for i, name := range StageOrder {
		st := Stage{
			ID:             uuid.New(),
			DriveID:        driveID,
			ScopeCollegeID: scope,
			Name:           name,
			Position:       i,
			Status:         StagePending,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if i == 0 {
			st.Status = StageActive
			st.StartedAt = &now
		}
		rows = append(rows, st)
	}
	return r.conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *repository) ListStages(ctx context.Context, driveID, scope uuid.UUID) ([]Stage, error) {
	var rows []Stage
	err := r.conn(ctx).
		Where("drive_id = ? AND scope_college_id = ?", driveID, scope).
		Order("position ASC").
		Find(&rows).Error
	return rows, err
}

// SaveAdvance COMPLETED dulu baru ACTIVE, partial unique index menolak dua ACTIVE.
func (r *repository) SaveAdvance(ctx context.Context, driveID, scope uuid.UUID, completed, activated StageName, actor uuid.UUID, now time.Time) error {
	conn := r.conn(ctx)
	res := conn.Model(&Stage{}).
		Where("drive_id = ? AND scope_college_id = ? AND name = ? AND status = ?", driveID, scope, completed, StageActive).
		Updates(map[string]any{
			"status":       StageCompleted,
			"completed_at": now,
			"completed_by": actor,
			"updated_at":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if activated == "" {
		return nil
	}

	res = conn.Model(&Stage{}).
		Where("drive_id = ? AND scope_college_id = ? AND name = ? AND status = ?", driveID, scope, activated, StagePending).
		Updates(map[string]any{
			"status":     StageActive,
			"started_at": now,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetScopeStage menyimpan current stage otoritatif: drives untuk scope drive,
// drive_colleges untuk scope college.
func (r *repository) SetScopeStage(ctx context.Context, driveID, scope uuid.UUID, stage StageName) error {
	conn := r.conn(ctx)
	var res *gorm.DB
	if scope == uuid.Nil {
		res = conn.Exec("UPDATE drives SET current_stage = ?, updated_at = NOW() WHERE id = ?", stage, driveID)
	} else {
		res = conn.Exec("UPDATE drive_colleges SET current_stage = ?, updated_at = NOW() WHERE drive_id = ? AND college_id = ?", stage, driveID, scope)
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
