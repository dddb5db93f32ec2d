package drive

import (
	driveerrors "freshbit/internal/drive/errors"
)

type DriveStatus string

const (
	StatusDraft     DriveStatus = "DRAFT"
	StatusPublished DriveStatus = "PUBLISHED"
	StatusClosed    DriveStatus = "CLOSED"
)

type StageName string

const (
	StageApplications StageName = "APPLICATIONS"
	StageTest         StageName = "TEST"
	StageShortlist    StageName = "SHORTLIST"
	StageInterview    StageName = "INTERVIEW"
	StageFinal        StageName = "FINAL"
)

// StageOrder urutan tetap pipeline, index = position di tabel drive_stages.
var StageOrder = []StageName{StageApplications, StageTest, StageShortlist, StageInterview, StageFinal}

// Position 0-based, -1 untuk nama yang tidak dikenal.
func (n StageName) Position() int {
	for i, s := range StageOrder {
		if s == n {
			return i
		}
	}
	return -1
}

func (n StageName) Valid() bool { return n.Position() >= 0 }

// Next stage berikutnya, false setelah FINAL.
func (n StageName) Next() (StageName, bool) {
	pos := n.Position()
	if pos < 0 || pos+1 >= len(StageOrder) {
		return "", false
	}
	return StageOrder[pos+1], true
}

type StageStatus string

const (
	StagePending   StageStatus = "PENDING"
	StageActive    StageStatus = "ACTIVE"
	StageCompleted StageStatus = "COMPLETED"
)

// CanPublish hanya dari DRAFT.
func CanPublish(s DriveStatus) error {
	if s != StatusDraft {
		return driveerrors.ErrDriveNotDraft
	}
	return nil
}

func CanEdit(s DriveStatus) error {
	if s != StatusDraft {
		return driveerrors.ErrDriveNotDraft
	}
	return nil
}

func CanAdvance(s DriveStatus) error {
	if s != StatusPublished {
		return driveerrors.ErrDriveNotPublished
	}
	return nil
}

// ShouldClose false kalau drive sudah CLOSED (close idempotent).
func ShouldClose(s DriveStatus) bool {
	return s != StatusClosed
}

type StageState struct {
	Name   StageName
	Status StageStatus
}

// Pipeline status kelima stage dalam urutan StageOrder untuk satu scope
// (drive-level atau satu college).
type Pipeline [5]StageState

// NewPipeline pipeline awal: APPLICATIONS ACTIVE, sisanya PENDING.
func NewPipeline() Pipeline {
	var p Pipeline
	for i, name := range StageOrder {
		p[i] = StageState{Name: name, Status: StagePending}
	}
	p[0].Status = StageActive
	return p
}

// PipelineOf menyusun pipeline dari baris stage (urutan bebas). Nama yang tidak
// ada diperlakukan PENDING.
func PipelineOf(stages []Stage) Pipeline {
	var p Pipeline
	for i, name := range StageOrder {
		p[i] = StageState{Name: name, Status: StagePending}
	}
	for _, s := range stages {
		if pos := s.Name.Position(); pos >= 0 {
			p[pos].Status = s.Status
		}
	}
	return p
}

// Active stage yang sedang ACTIVE.
func (p Pipeline) Active() (StageName, bool) {
	for _, s := range p {
		if s.Status == StageActive {
			return s.Name, true
		}
	}
	return "", false
}

func (p Pipeline) Finished() bool {
	return p[len(p)-1].Status == StageCompleted
}

// Current stage otoritatif: yang ACTIVE, atau FINAL kalau semua selesai.
func (p Pipeline) Current() (StageName, bool) {
	if name, ok := p.Active(); ok {
		return name, true
	}
	if p.Finished() {
		return StageFinal, true
	}
	return "", false
}

// Reached true kalau stage name sudah ACTIVE atau COMPLETED.
func (p Pipeline) Reached(name StageName) bool {
	pos := name.Position()
	if pos < 0 {
		return false
	}
	return p[pos].Status != StagePending
}

// Advance menyelesaikan stage ACTIVE dan mengaktifkan penerusnya. activated
// kosong kalau yang diselesaikan adalah FINAL.
func (p Pipeline) Advance() (next Pipeline, completed StageName, activated StageName, err error) {
	if p.Finished() {
		return p, "", "", driveerrors.ErrPipelineFinished
	}
	active, ok := p.Active()
	if !ok {
		return p, "", "", driveerrors.ErrNoActiveStage
	}

	next = p
	pos := active.Position()
	for i := 0; i < pos; i++ {
		if next[i].Status != StageCompleted {
			// stage sebelumnya belum selesai, urutan rusak
			return p, "", "", driveerrors.ErrNoActiveStage
		}
	}
	next[pos].Status = StageCompleted
	if succ, ok := active.Next(); ok {
		next[pos+1].Status = StageActive
		activated = succ
	}
	return next, active, activated, nil
}
