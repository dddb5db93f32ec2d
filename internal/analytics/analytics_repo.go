package analytics

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabelCount struct {
	Label string `gorm:"column:label"`
	Count int64  `gorm:"column:count"`
}

// FunnelRow satu kombinasi drive x status aplikasi. Status kosong kalau drive
// belum punya aplikasi sama sekali.
type FunnelRow struct {
	DriveID     uuid.UUID `gorm:"column:drive_id"`
	Code        string    `gorm:"column:code"`
	Title       string    `gorm:"column:title"`
	CompanyName string    `gorm:"column:company_name"`
	DriveStatus string    `gorm:"column:drive_status"`
	Status      string    `gorm:"column:status"`
	Count       int64     `gorm:"column:count"`
}

// ApplicationScope filter agregasi aplikasi, uuid.Nil = tidak difilter.
type ApplicationScope struct {
	CompanyID uuid.UUID
	CollegeID uuid.UUID
	DriveID   uuid.UUID
}

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	UsersByRole(ctx context.Context) ([]LabelCount, error)
	PendingApprovals(ctx context.Context) (companies int64, colleges int64, err error)
	DrivesByStatus(ctx context.Context, companyID uuid.UUID) ([]LabelCount, error)
	ApplicationsByStatus(ctx context.Context, scope ApplicationScope) ([]LabelCount, error)
	InvitationsByStatus(ctx context.Context, collegeID uuid.UUID) ([]LabelCount, error)
	CountStudents(ctx context.Context, collegeID uuid.UUID) (int64, error)
	CountLinked(ctx context.Context, driveID, collegeID uuid.UUID) (int64, error)
	Funnel(ctx context.Context, limit int) ([]FunnelRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) grouped(q *gorm.DB, column string) ([]LabelCount, error) {
	var rows []LabelCount
	err := q.Select(column + " AS label, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) UsersByRole(ctx context.Context) ([]LabelCount, error) {
	return r.grouped(r.db.WithContext(ctx).Table("users"), "role")
}

func (r *repository) PendingApprovals(ctx context.Context) (int64, int64, error) {
	var companies, colleges int64
	if err := r.db.WithContext(ctx).Table("companies").Where("approved = ?", false).Count(&companies).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Table("colleges").Where("approved = ?", false).Count(&colleges).Error; err != nil {
		return 0, 0, err
	}
	return companies, colleges, nil
}

func (r *repository) DrivesByStatus(ctx context.Context, companyID uuid.UUID) ([]LabelCount, error) {
	q := r.db.WithContext(ctx).Table("drives")
	if companyID != uuid.Nil {
		q = q.Where("company_id = ?", companyID)
	}
	return r.grouped(q, "status")
}

func (r *repository) ApplicationsByStatus(ctx context.Context, scope ApplicationScope) ([]LabelCount, error) {
	q := r.db.WithContext(ctx).Table("applications a")
	if scope.CompanyID != uuid.Nil {
		q = q.Joins("JOIN drives d ON d.id = a.drive_id").Where("d.company_id = ?", scope.CompanyID)
	}
	if scope.CollegeID != uuid.Nil {
		q = q.Where("a.college_id = ?", scope.CollegeID)
	}
	if scope.DriveID != uuid.Nil {
		q = q.Where("a.drive_id = ?", scope.DriveID)
	}
	return r.grouped(q, "a.status")
}

func (r *repository) InvitationsByStatus(ctx context.Context, collegeID uuid.UUID) ([]LabelCount, error) {
	q := r.db.WithContext(ctx).Table("drive_colleges").Where("college_id = ?", collegeID)
	return r.grouped(q, "invitation_status")
}

func (r *repository) CountStudents(ctx context.Context, collegeID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("students").Where("college_id = ?", collegeID).Count(&n).Error
	return n, err
}

func (r *repository) CountLinked(ctx context.Context, driveID, collegeID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("drive_students").
		Where("drive_id = ? AND college_id = ?", driveID, collegeID).
		Count(&n).Error
	return n, err
}

func (r *repository) Funnel(ctx context.Context, limit int) ([]FunnelRow, error) {
	var rows []FunnelRow
	err := r.db.WithContext(ctx).Raw(`
SELECT d.id AS drive_id, d.code, d.title, c.name AS company_name, d.status AS drive_status,
       COALESCE(a.status, '') AS status, COUNT(a.id) AS count
FROM (SELECT * FROM drives ORDER BY created_at DESC LIMIT ?) d
JOIN companies c ON c.id = d.company_id
LEFT JOIN applications a ON a.drive_id = d.id
GROUP BY d.id, d.code, d.title, c.name, d.status, d.created_at, a.status
ORDER BY d.created_at DESC, d.id`, limit).Scan(&rows).Error
	return rows, err
}
