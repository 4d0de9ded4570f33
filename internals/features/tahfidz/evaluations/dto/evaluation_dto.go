package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "tahfidzku_backend/internals/features/tahfidz/evaluations/model"
)

/* =========================================================
   CREATE EVALUATION
   ========================================================= */

type CreateEvaluationRequest struct {
	SessionID   uuid.UUID `json:"evaluations_session_id" validate:"required"`
	UserID      uuid.UUID `json:"evaluations_user_id" validate:"required"`
	EvaluatorID uuid.UUID `json:"evaluations_evaluator_id"` // opsional; default dari token

	TajweedLevel m.EvaluationLevel `json:"evaluations_tajweed_level" validate:"required,oneof=belum_hafal hafal_tidak_lancar hafal_lancar hafal_sangat_lancar"`
	HafalanLevel m.EvaluationLevel `json:"evaluations_hafalan_level" validate:"required,oneof=belum_hafal hafal_tidak_lancar hafal_lancar hafal_sangat_lancar"`
	TartilLevel  m.EvaluationLevel `json:"evaluations_tartil_level" validate:"required,oneof=belum_hafal hafal_tidak_lancar hafal_lancar hafal_sangat_lancar"`

	VersesCount     int     `json:"evaluations_verses_count" validate:"gte=0"`
	AdditionalNotes *string `json:"evaluations_additional_notes"`
}

func (r *CreateEvaluationRequest) Normalize() {
	if r.AdditionalNotes != nil {
		v := strings.TrimSpace(*r.AdditionalNotes)
		if v == "" {
			r.AdditionalNotes = nil
		} else {
			r.AdditionalNotes = &v
		}
	}
}

func (r CreateEvaluationRequest) ToModel() m.EvaluationModel {
	return m.EvaluationModel{
		EvaluationSessionID:       r.SessionID,
		EvaluationUserID:          r.UserID,
		EvaluationEvaluatorID:     r.EvaluatorID,
		EvaluationTajweedLevel:    r.TajweedLevel,
		EvaluationHafalanLevel:    r.HafalanLevel,
		EvaluationTartilLevel:     r.TartilLevel,
		EvaluationVersesCount:     r.VersesCount,
		EvaluationAdditionalNotes: r.AdditionalNotes,
	}
}

/* =========================================================
   CREATE SESSION
   ========================================================= */

type CreateSessionRequest struct {
	ClassID uuid.UUID `json:"sessions_class_id" validate:"required"`
	GuruID  uuid.UUID `json:"sessions_guru_id"` // opsional; default dari token
	// Tanggal kalender "YYYY-MM-DD" (zona institusi)
	Date  string  `json:"sessions_date" validate:"required,datetime=2006-01-02"`
	Notes *string `json:"sessions_notes"`
}

func (r *CreateSessionRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		if v == "" {
			r.Notes = nil
		} else {
			r.Notes = &v
		}
	}
}

func (r CreateSessionRequest) ToModel(date time.Time) m.SessionModel {
	return m.SessionModel{
		SessionClassID: r.ClassID,
		SessionGuruID:  r.GuruID,
		SessionDate:    date,
		SessionNotes:   r.Notes,
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

// EvaluationWithBadges: hasil tulis evaluasi + badge baru (info tambahan,
// bukan prasyarat keberhasilan simpan).
type EvaluationWithBadges struct {
	Evaluation m.EvaluationModel `json:"evaluation"`
	NewBadges  []string          `json:"new_badges"`
}

// SessionFullnessResponse: progres penilaian satu sesi.
type SessionFullnessResponse struct {
	SessionID uuid.UUID `json:"sessions_id"`
	Enrolled  int64     `json:"enrolled"`
	Evaluated int64     `json:"evaluated"`
	IsFull    bool      `json:"is_full"`
}
