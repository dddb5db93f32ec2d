package application

import (
	"context"
	"database/sql"
	"time"

	"freshbit/internal/shared/database"
	"freshbit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// LinkedStudents student college yang ter-link ke drive lewat roster.
	LinkedStudents(ctx context.Context, driveID, collegeID uuid.UUID) ([]uuid.UUID, error)
	// Insert false kalau (student, drive) sudah punya application.
	Insert(ctx context.Context, app *Application) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Application, error)
	FindByStudents(ctx context.Context, driveID, collegeID uuid.UUID, studentIDs []uuid.UUID) ([]Application, error)
	// CompareAndSetStatus hanya mengubah baris yang statusnya masih from.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to Status, now time.Time) (bool, error)
	List(ctx context.Context, driveID uuid.UUID, filter ListFilter) ([]ApplicationView, int64, error)
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

func (r *repository) LinkedStudents(ctx context.Context, driveID, collegeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.conn(ctx).
		Table("drive_students").
		Where("drive_id = ? AND college_id = ?", driveID, collegeID).
		Order("created_at ASC").
		Pluck("student_id", &ids).Error
	return ids, err
}

func (r *repository) Insert(ctx context.Context, app *Application) (bool, error) {
	res := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "drive_id"}},
			DoNothing: true,
		}).
		Create(app)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Application, error) {
	var app Application
	if err := r.conn(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) FindByStudents(ctx context.Context, driveID, collegeID uuid.UUID, studentIDs []uuid.UUID) ([]Application, error) {
	var rows []Application
	if len(studentIDs) == 0 {
		return rows, nil
	}
	err := r.conn(ctx).
		Where("drive_id = ? AND college_id = ? AND student_id IN ?", driveID, collegeID, studentIDs).
		Find(&rows).Error
	return rows, err
}

func (r *repository) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to Status, now time.Time) (bool, error) {
	res := r.conn(ctx).Model(&Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) List(ctx context.Context, driveID uuid.UUID, filter ListFilter) ([]ApplicationView, int64, error) {
	q := r.conn(ctx).
		Table("applications a").
		Joins("JOIN students s ON s.id = a.student_id").
		Joins("JOIN colleges cl ON cl.id = a.college_id").
		Where("a.drive_id = ?", driveID)
	if filter.CollegeID != uuid.Nil {
		q = q.Where("a.college_id = ?", filter.CollegeID)
	}
	if filter.Status != "" {
		q = q.Where("a.status = ?", filter.Status)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ApplicationView
	err := q.Select("a.*, s.name AS student_name, s.email AS student_email, s.roll_no, s.branch, s.cgpa, cl.name AS college_name").
		Order("s.name ASC").
		Scopes(tenant.Paginate(filter.Page, filter.PageSize)).
		Scan(&rows).Error
	return rows, total, err
}
