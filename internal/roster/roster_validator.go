package roster

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ReasonNameRequired  = "name is required"
	ReasonInvalidEmail  = "invalid email"
	ReasonDuplicate     = "duplicate in file"
	ReasonAlreadyExists = "already exists"
	ReasonCGPANumber    = "cgpa must be a number"
	ReasonCGPARange     = "cgpa must be between 0 and 10"
	ReasonGradYear      = "graduation year must be a 4-digit year"

	minGraduationYear = 1950
	maxGraduationYear = 2100
)

var emailValidator = validator.New()

// RowResult hasil validasi satu baris. Email sudah lower-case.
type RowResult struct {
	Row            Row      `json:"row"`
	Valid          bool     `json:"valid"`
	Reasons        []string `json:"reasons,omitempty"`
	CGPA           *float64 `json:"-"`
	GraduationYear *int     `json:"-"`
}

type ValidationResult struct {
	Total   int         `json:"total"`
	Valid   int         `json:"valid"`
	Invalid int         `json:"invalid"`
	Rows    []RowResult `json:"rows"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate memeriksa rows sesuai urutan input. existing = email student college
// yang sudah tersimpan (lower-case); nil kalau tidak perlu dicek. Untuk email
// kembar, baris pertama yang menang.
func Validate(rows []Row, existing map[string]bool) ValidationResult {
	result := ValidationResult{Total: len(rows), Rows: make([]RowResult, 0, len(rows))}
	seen := make(map[string]bool, len(rows))

	for _, row := range rows {
		row.Name = strings.TrimSpace(row.Name)
		row.Email = NormalizeEmail(row.Email)
		res := RowResult{Row: row}

		if row.Name == "" {
			res.Reasons = append(res.Reasons, ReasonNameRequired)
		}
		if row.Email == "" || emailValidator.Var(row.Email, "email") != nil {
			res.Reasons = append(res.Reasons, ReasonInvalidEmail)
		} else {
			switch {
			case seen[row.Email]:
				res.Reasons = append(res.Reasons, ReasonDuplicate)
			case existing[row.Email]:
				res.Reasons = append(res.Reasons, ReasonAlreadyExists)
			}
			seen[row.Email] = true
		}

		if raw := strings.TrimSpace(row.CGPA); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			switch {
			case err != nil:
				res.Reasons = append(res.Reasons, ReasonCGPANumber)
			case v < 0 || v > 10:
				res.Reasons = append(res.Reasons, ReasonCGPARange)
			default:
				res.CGPA = &v
			}
		}
		if raw := strings.TrimSpace(row.GraduationYear); raw != "" {
			y, err := strconv.Atoi(raw)
			if err != nil || len(raw) != 4 || y < minGraduationYear || y > maxGraduationYear {
				res.Reasons = append(res.Reasons, ReasonGradYear)
			} else {
				res.GraduationYear = &y
			}
		}

		res.Valid = len(res.Reasons) == 0
		if res.Valid {
			result.Valid++
		} else {
			result.Invalid++
		}
		result.Rows = append(result.Rows, res)
	}
	return result
}

// Emails email unik dari rows (lower-case), untuk lookup existing.
func Emails(rows []Row) []string {
	out := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		e := NormalizeEmail(r.Email)
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
