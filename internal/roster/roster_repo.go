package roster

import (
	"context"
	"database/sql"
	"strings"

	"freshbit/internal/shared/database"
	"freshbit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=roster_repo.go -destination=mock/roster_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	ExistingEmails(ctx context.Context, collegeID uuid.UUID, emails []string) (map[string]bool, error)
	// InsertStudent false kalau email sudah dipakai student lain di college yang sama.
	InsertStudent(ctx context.Context, s *Student) (bool, error)
	IDsByEmail(ctx context.Context, collegeID uuid.UUID, emails []string) (map[string]uuid.UUID, error)
	// LinkStudent false kalau pasangan (drive, student) sudah ada.
	LinkStudent(ctx context.Context, link *DriveStudent) (bool, error)

	GetStudent(ctx context.Context, id uuid.UUID) (*Student, error)
	ListStudents(ctx context.Context, collegeID uuid.UUID, filter StudentFilter) ([]Student, int64, error)
	UpdateStudent(ctx context.Context, s *Student) error
	DeleteStudent(ctx context.Context, id uuid.UUID) error
	HasApplications(ctx context.Context, studentID uuid.UUID) (bool, error)
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

func (r *repository) ExistingEmails(ctx context.Context, collegeID uuid.UUID, emails []string) (map[string]bool, error) {
	out := make(map[string]bool, len(emails))
	if len(emails) == 0 {
		return out, nil
	}
	var found []string
	err := r.conn(ctx).Model(&Student{}).
		Where("college_id = ? AND email IN ?", collegeID, emails).
		Pluck("email", &found).Error
	if err != nil {
		return nil, err
	}
	for _, e := range found {
		out[strings.ToLower(e)] = true
	}
	return out, nil
}

func (r *repository) InsertStudent(ctx context.Context, s *Student) (bool, error) {
	res := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "college_id"}, {Name: "email"}},
			DoNothing: true,
		}).
		Create(s)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) IDsByEmail(ctx context.Context, collegeID uuid.UUID, emails []string) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID, len(emails))
	if len(emails) == 0 {
		return out, nil
	}
	var rows []Student
	err := r.conn(ctx).
		Select("id", "email").
		Where("college_id = ? AND email IN ?", collegeID, emails).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, s := range rows {
		out[strings.ToLower(s.Email)] = s.ID
	}
	return out, nil
}

func (r *repository) LinkStudent(ctx context.Context, link *DriveStudent) (bool, error) {
	res := r.conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) GetStudent(ctx context.Context, id uuid.UUID) (*Student, error) {
	var s Student
	if err := r.conn(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListStudents(ctx context.Context, collegeID uuid.UUID, filter StudentFilter) ([]Student, int64, error) {
	q := r.conn(ctx).Model(&Student{}).Scopes(tenant.CollegeScope(collegeID))
	if s := strings.TrimSpace(filter.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR roll_no ILIKE ?", like, like, like)
	}
	if b := strings.TrimSpace(filter.Branch); b != "" {
		q = q.Where("branch = ?", b)
	}
	if filter.GraduationYear > 0 {
		q = q.Where("graduation_year = ?", filter.GraduationYear)
	}
	if filter.DriveID != uuid.Nil {
		q = q.Where("EXISTS (SELECT 1 FROM drive_students ds WHERE ds.student_id = students.id AND ds.drive_id = ?)", filter.DriveID)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Student
	err := q.Order("name ASC").
		Scopes(tenant.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) UpdateStudent(ctx context.Context, s *Student) error {
	return r.conn(ctx).Model(s).
		Select("name", "email", "phone", "roll_no", "branch", "cgpa", "graduation_year", "updated_at").
		Updates(s).Error
}

func (r *repository) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&Student{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) HasApplications(ctx context.Context, studentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM applications WHERE student_id = ?)", studentID).
		Scan(&exists).Error
	return exists, err
}
