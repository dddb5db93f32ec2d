package roster

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	rostererrors "freshbit/internal/roster/errors"

	"github.com/xuri/excelize/v2"
)

const MaxRows = 5000

// Row satu baris roster apa adanya dari file (belum divalidasi).
type Row struct {
	Line           int    `json:"line"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	RollNo         string `json:"rollNo"`
	Branch         string `json:"branch"`
	CGPA           string `json:"cgpa"`
	GraduationYear string `json:"graduationYear"`
}

func (r Row) blank() bool {
	return r.Name == "" && r.Email == "" && r.Phone == "" && r.RollNo == "" &&
		r.Branch == "" && r.CGPA == "" && r.GraduationYear == ""
}

// requiredColumns nama kolom header seperti di template roster.
var requiredColumns = []string{"name", "email", "phone", "rollNo", "branch", "cgpa", "graduationYear"}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(h)
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(requiredColumns))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[strings.ToLower(col)]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, rostererrors.MissingColumns(missing)
	}
	return idx, nil
}

func rowFrom(cells []string, idx map[string]int, line int) Row {
	cell := func(col string) string {
		i := idx[strings.ToLower(col)]
		if i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}
	return Row{
		Line:           line,
		Name:           cell("name"),
		Email:          cell("email"),
		Phone:          cell("phone"),
		RollNo:         cell("rollNo"),
		Branch:         cell("branch"),
		CGPA:           cell("cgpa"),
		GraduationYear: cell("graduationYear"),
	}
}

// Parse membaca roster .csv atau .xlsx. Baris kosong dilewati; Line mengikuti
// nomor baris di file (header = 1).
func Parse(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		return parseXLSX(r)
	default:
		return nil, rostererrors.ErrUnsupportedFile
	}
}

func parseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, rostererrors.ErrEmptyRoster
		}
		return nil, rostererrors.ErrUnreadableFile
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rostererrors.ErrUnreadableFile
		}
		line, _ := cr.FieldPos(0)
		row := rowFrom(cells, idx, line)
		if row.blank() {
			continue
		}
		if len(rows) == MaxRows {
			return nil, rostererrors.ErrTooManyRows
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, rostererrors.ErrEmptyRoster
	}
	return rows, nil
}

func parseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, rostererrors.ErrUnreadableFile
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, rostererrors.ErrUnreadableFile
	}
	if len(cells) == 0 {
		return nil, rostererrors.ErrEmptyRoster
	}
	idx, err := headerIndex(cells[0])
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i := 1; i < len(cells); i++ {
		row := rowFrom(cells[i], idx, i+1)
		if row.blank() {
			continue
		}
		if len(rows) == MaxRows {
			return nil, rostererrors.ErrTooManyRows
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, rostererrors.ErrEmptyRoster
	}
	return rows, nil
}
