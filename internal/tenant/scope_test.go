package tenant_test

import (
	"testing"

	"freshbit/internal/domain"
	"freshbit/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type driveRow struct {
	ID uuid.UUID
}

func (driveRow) TableName() string { return "drives" }

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestDriveVisibility(t *testing.T) {
	db := dryRun(t)
	orgID := uuid.New()

	render := func(p domain.Principal) string {
		var rows []driveRow
		stmt := db.Scopes(tenant.DriveVisibility(p), tenant.Paginate(2, 10)).Find(&rows).Statement
		return stmt.SQL.String()
	}

	admin := render(domain.Principal{Role: domain.RoleAdmin})
	assert.NotContains(t, admin, "WHERE")
	assert.Contains(t, admin, "LIMIT $1 OFFSET $2")

	company := render(domain.Principal{Role: domain.RoleCompany, OrgID: orgID})
	assert.Contains(t, company, "drives.company_id = $1")

	college := render(domain.Principal{Role: domain.RoleCollege, OrgID: orgID})
	assert.Contains(t, college, "FROM drive_colleges dc")

	unknown := render(domain.Principal{Role: "GUEST"})
	assert.Contains(t, unknown, "1 = 0")
}

func TestPaginate(t *testing.T) {
	db := dryRun(t)

	cases := []struct {
		name           string
		page, pageSize int
		want           []interface{}
	}{
		{"third page", 3, 5, []interface{}{5, 10}},
		{"defaults without offset", 0, 0, []interface{}{20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rows []driveRow
			stmt := db.Scopes(tenant.Paginate(tc.page, tc.pageSize)).Find(&rows).Statement
			// postgres dialector merender limit/offset sebagai placeholder
			assert.Contains(t, stmt.SQL.String(), "LIMIT $1")
			assert.Equal(t, tc.want, stmt.Vars)
		})
	}
}
