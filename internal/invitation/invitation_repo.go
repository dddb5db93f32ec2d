package invitation

import (
	"context"
	"database/sql"

	"freshbit/internal/shared/database"
	"freshbit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=invitation_repo.go -destination=mock/invitation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// InsertIfAbsent false kalau pasangan (drive, college) sudah ada.
	InsertIfAbsent(ctx context.Context, b *Binding) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID, lock bool) (*Binding, error)
	Get(ctx context.Context, driveID, collegeID uuid.UUID, lock bool) (*Binding, error)
	SaveResponse(ctx context.Context, b *Binding) error
	SaveBinding(ctx context.Context, b *Binding) error
	ListForDrive(ctx context.Context, driveID uuid.UUID) ([]BindingView, error)
	ListForCollege(ctx context.Context, collegeID uuid.UUID, filter CollegeFilter) ([]BindingView, int64, error)
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

func (r *repository) conn(ctx context.Context, lock bool) *gorm.DB {
	conn := database.Conn(ctx, r.db, r.tx)
	if lock {
		conn = conn.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return conn
}

func (r *repository) InsertIfAbsent(ctx context.Context, b *Binding) (bool, error) {
	res := r.conn(ctx, false).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "drive_id"}, {Name: "college_id"}},
			DoNothing: true,
		}).
		Create(b)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID, lock bool) (*Binding, error) {
	var b Binding
	if err := r.conn(ctx, lock).Where("id = ?", id).Take(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Get(ctx context.Context, driveID, collegeID uuid.UUID, lock bool) (*Binding, error) {
	var b Binding
	err := r.conn(ctx, lock).
		Where("drive_id = ? AND college_id = ?", driveID, collegeID).
		Take(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) SaveResponse(ctx context.Context, b *Binding) error {
	return r.conn(ctx, false).Model(&Binding{}).
		Where("drive_id = ? AND college_id = ?", b.DriveID, b.CollegeID).
		Updates(map[string]any{
			"invitation_status": b.InvitationStatus,
			"rejection_reason":  b.RejectionReason,
			"responded_at":      b.RespondedAt,
			"current_stage":     b.CurrentStage,
			"updated_at":        b.UpdatedAt,
		}).Error
}

func (r *repository) SaveBinding(ctx context.Context, b *Binding) error {
	return r.conn(ctx, false).Model(&Binding{}).
		Where("drive_id = ? AND college_id = ?", b.DriveID, b.CollegeID).
		Updates(map[string]any{
			"managed_by":        b.ManagedBy,
			"invitation_status": b.InvitationStatus,
			"responded_at":      b.RespondedAt,
			"current_stage":     b.CurrentStage,
			"updated_at":        b.UpdatedAt,
		}).Error
}

const viewColumns = `drive_colleges.*,
	d.title AS drive_title, d.code AS drive_code, d.status AS drive_status,
	d.company_id AS company_id, co.name AS company_name, cl.name AS college_name`

func (r *repository) view(ctx context.Context) *gorm.DB {
	return r.conn(ctx, false).
		Table("drive_colleges").
		Joins("JOIN drives d ON d.id = drive_colleges.drive_id").
		Joins("JOIN companies co ON co.id = d.company_id").
		Joins("JOIN colleges cl ON cl.id = drive_colleges.college_id")
}

func (r *repository) ListForDrive(ctx context.Context, driveID uuid.UUID) ([]BindingView, error) {
	var rows []BindingView
	err := r.view(ctx).
		Select(viewColumns).
		Where("drive_colleges.drive_id = ?", driveID).
		Order("cl.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListForCollege(ctx context.Context, collegeID uuid.UUID, filter CollegeFilter) ([]BindingView, int64, error) {
	q := r.view(ctx).Where("drive_colleges.college_id = ?", collegeID)
	if filter.Status != "" {
		q = q.Where("drive_colleges.invitation_status = ?", filter.Status)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []BindingView
	err := q.Select(viewColumns).
		Order("drive_colleges.invited_at DESC").
		Scopes(tenant.Paginate(filter.Page, filter.PageSize)).
		Scan(&rows).Error
	return rows, total, err
}
