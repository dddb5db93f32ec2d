package tenant

import (
	"freshbit/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CompanyScope(companyID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

func CollegeScope(collegeID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("college_id = ?", collegeID)
	}
}

// DriveVisibility membatasi query tabel drives sesuai pemanggil:
// admin semua drive, company drive miliknya, college drive yang mengundangnya.
func DriveVisibility(p domain.Principal) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		scoped, err := domain.MatchRole(p.Role, domain.RoleCases[*gorm.DB]{
			Admin:   func() *gorm.DB { return db },
			Company: func() *gorm.DB { return db.Where("drives.company_id = ?", p.OrgID) },
			College: func() *gorm.DB {
				return db.Where("EXISTS (SELECT 1 FROM drive_colleges dc WHERE dc.drive_id = drives.id AND dc.college_id = ?)", p.OrgID)
			},
		})
		if err != nil {
			// role tidak dikenal tidak boleh melihat apa pun
			return db.Where("1 = 0")
		}
		return scoped
	}
}

func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			pageSize = 20
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
