package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   LEVEL PENILAIAN (enum terurut)
   ========================================================= */

type EvaluationLevel string

const (
	LevelBelumHafal        EvaluationLevel = "belum_hafal"
	LevelHafalTidakLancar  EvaluationLevel = "hafal_tidak_lancar"
	LevelHafalLancar       EvaluationLevel = "hafal_lancar"
	LevelHafalSangatLancar EvaluationLevel = "hafal_sangat_lancar"
)

var levelRank = map[EvaluationLevel]int{
	LevelBelumHafal:        0,
	LevelHafalTidakLancar:  1,
	LevelHafalLancar:       2,
	LevelHafalSangatLancar: 3,
}

// Rank: posisi level dalam urutan belum_hafal < hafal_tidak_lancar <
// hafal_lancar < hafal_sangat_lancar. -1 untuk nilai tak dikenal.
func (l EvaluationLevel) Rank() int {
	if r, ok := levelRank[l]; ok {
		return r
	}
	return -1
}

func (l EvaluationLevel) IsValid() bool {
	_, ok := levelRank[l]
	return ok
}

/* =========================================================
   SESSION (satu pertemuan kelas pada satu tanggal kalender)
   ========================================================= */

// SessionModel: sessions_date adalah tanggal kalender polos (zona institusi),
// unit atomik untuk streak & cek fullness sesi.
type SessionModel struct {
	SessionID      uuid.UUID `gorm:"type:uuid;primaryKey;column:sessions_id" json:"sessions_id"`
	SessionClassID uuid.UUID `gorm:"type:uuid;not null;column:sessions_class_id;index:idx_sessions_class_date,priority:1" json:"sessions_class_id"`
	SessionGuruID  uuid.UUID `gorm:"type:uuid;not null;column:sessions_guru_id" json:"sessions_guru_id"`
	SessionDate    time.Time `gorm:"type:date;not null;column:sessions_date;index:idx_sessions_class_date,priority:2,sort:desc" json:"sessions_date"`
	SessionNotes   *string   `gorm:"type:text;column:sessions_notes" json:"sessions_notes,omitempty"`

	SessionCreatedAt time.Time `gorm:"column:sessions_created_at;autoCreateTime" json:"sessions_created_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (m *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SessionID == uuid.Nil {
		m.SessionID = uuid.New()
	}
	return nil
}

/* =========================================================
   EVALUATION (satu penilaian setoran)
   ========================================================= */

// EvaluationModel: maksimal satu evaluasi per (sesi, santri, penilai) —
// dijaga unique index, bukan check-then-insert.
type EvaluationModel struct {
	EvaluationID          uuid.UUID `gorm:"type:uuid;primaryKey;column:evaluations_id" json:"evaluations_id"`
	EvaluationSessionID   uuid.UUID `gorm:"type:uuid;not null;column:evaluations_session_id;uniqueIndex:uq_evaluations_session_user_evaluator,priority:1" json:"evaluations_session_id"`
	EvaluationUserID      uuid.UUID `gorm:"type:uuid;not null;column:evaluations_user_id;uniqueIndex:uq_evaluations_session_user_evaluator,priority:2;index:idx_evaluations_user_created,priority:1" json:"evaluations_user_id"`
	EvaluationEvaluatorID uuid.UUID `gorm:"type:uuid;not null;column:evaluations_evaluator_id;uniqueIndex:uq_evaluations_session_user_evaluator,priority:3" json:"evaluations_evaluator_id"`

	EvaluationTajweedLevel EvaluationLevel `gorm:"type:varchar(24);not null;column:evaluations_tajweed_level" json:"evaluations_tajweed_level"`
	EvaluationHafalanLevel EvaluationLevel `gorm:"type:varchar(24);not null;column:evaluations_hafalan_level" json:"evaluations_hafalan_level"`
	EvaluationTartilLevel  EvaluationLevel `gorm:"type:varchar(24);not null;column:evaluations_tartil_level" json:"evaluations_tartil_level"`

	EvaluationVersesCount     int     `gorm:"not null;default:0;column:evaluations_verses_count" json:"evaluations_verses_count"`
	EvaluationAdditionalNotes *string `gorm:"type:text;column:evaluations_additional_notes" json:"evaluations_additional_notes,omitempty"`

	EvaluationCreatedAt time.Time `gorm:"column:evaluations_created_at;autoCreateTime;index:idx_evaluations_user_created,priority:2,sort:desc" json:"evaluations_created_at"`
	EvaluationUpdatedAt time.Time `gorm:"column:evaluations_updated_at;autoUpdateTime" json:"evaluations_updated_at"`
}

func (EvaluationModel) TableName() string {
	return "evaluations"
}

func (m *EvaluationModel) BeforeCreate(tx *gorm.DB) error {
	if m.EvaluationID == uuid.Nil {
		m.EvaluationID = uuid.New()
	}
	return nil
}
