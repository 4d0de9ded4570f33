package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "tahfidzku_backend/internals/features/tahfidz/classes/model"
	"tahfidzku_backend/internals/features/tahfidz/evaluations/model"
	helper "tahfidzku_backend/internals/helpers"
)

// ErrAlreadyGraded: santri sudah dinilai penilai yang sama pada sesi itu.
// Ini hasil penolakan unique constraint di store, bukan pre-check.
var ErrAlreadyGraded = errors.New("santri sudah dinilai pada sesi ini")

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

/* =========================================================
   CREATE (jalur insert ber-constraint)
   ========================================================= */

// Create menyimpan satu evaluasi. Duplikat (sesi, santri, penilai)
// dikembalikan sebagai ErrAlreadyGraded tanpa baris parsial.
func (s *Service) Create(ev *model.EvaluationModel) error {
	if err := s.DB.Create(ev).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return ErrAlreadyGraded
		}
		return err
	}
	return nil
}

/* =========================================================
   HISTORY LOADER
   ========================================================= */

// HistoryItem: satu evaluasi + tanggal sesinya, bahan hitung streak.
type HistoryItem struct {
	EvaluationID    uuid.UUID             `json:"evaluations_id"`
	SessionID       uuid.UUID             `json:"evaluations_session_id"`
	SessionDate     time.Time             `json:"sessions_date"`
	TajweedLevel    model.EvaluationLevel `json:"evaluations_tajweed_level"`
	HafalanLevel    model.EvaluationLevel `json:"evaluations_hafalan_level"`
	TartilLevel     model.EvaluationLevel `json:"evaluations_tartil_level"`
	VersesCount     int                   `json:"evaluations_verses_count"`
	AdditionalNotes *string               `json:"evaluations_additional_notes,omitempty"`
	CreatedAt       time.Time             `json:"evaluations_created_at"`
}

const historySelect = `
	evaluations.evaluations_id               AS evaluation_id,
	evaluations.evaluations_session_id       AS session_id,
	sessions.sessions_date                   AS session_date,
	evaluations.evaluations_tajweed_level    AS tajweed_level,
	evaluations.evaluations_hafalan_level    AS hafalan_level,
	evaluations.evaluations_tartil_level     AS tartil_level,
	evaluations.evaluations_verses_count     AS verses_count,
	evaluations.evaluations_additional_notes AS additional_notes,
	evaluations.evaluations_created_at       AS created_at`

// ListHistory: seluruh evaluasi milik santri, join tanggal sesi,
// urut naik per tanggal (tie-break: created_at lalu id, deterministik).
// Santri tanpa evaluasi → slice kosong, bukan error.
func (s *Service) ListHistory(userID uuid.UUID) ([]HistoryItem, error) {
	items := make([]HistoryItem, 0)
	err := s.DB.Table("evaluations").
		Select(historySelect).
		Joins("JOIN sessions ON sessions.sessions_id = evaluations.evaluations_session_id").
		Where("evaluations.evaluations_user_id = ?", userID).
		Order("sessions.sessions_date ASC, evaluations.evaluations_created_at ASC, evaluations.evaluations_id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListHistoryPaged: varian berhalaman untuk tampilan riwayat.
func (s *Service) ListHistoryPaged(userID uuid.UUID, offset, limit int) ([]HistoryItem, int64, error) {
	var total int64
	if err := s.DB.Table("evaluations").
		Where("evaluations_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]HistoryItem, 0)
	err := s.DB.Table("evaluations").
		Select(historySelect).
		Joins("JOIN sessions ON sessions.sessions_id = evaluations.evaluations_session_id").
		Where("evaluations.evaluations_user_id = ?", userID).
		Order("sessions.sessions_date ASC, evaluations.evaluations_created_at ASC, evaluations.evaluations_id ASC").
		Offset(offset).Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

/* =========================================================
   SESSION FULLNESS
   ========================================================= */

type SessionFullness struct {
	Enrolled  int64
	Evaluated int64
	IsFull    bool
}

// Fullness: sesi "penuh" saat semua santri terdaftar di kelasnya
// sudah punya evaluasi pada sesi tersebut.
func (s *Service) Fullness(sessionID uuid.UUID) (SessionFullness, error) {
	var sess model.SessionModel
	if err := s.DB.Where("sessions_id = ?", sessionID).Take(&sess).Error; err != nil {
		return SessionFullness{}, err
	}

	var enrolled int64
	if err := s.DB.Model(&classModel.ClassEnrollmentModel{}).
		Where("class_enrollments_class_id = ?", sess.SessionClassID).
		Count(&enrolled).Error; err != nil {
		return SessionFullness{}, err
	}

	var evaluated int64
	if err := s.DB.Table("evaluations").
		Where("evaluations_session_id = ?", sessionID).
		Distinct("evaluations_user_id").
		Count(&evaluated).Error; err != nil {
		return SessionFullness{}, err
	}

	return SessionFullness{
		Enrolled:  enrolled,
		Evaluated: evaluated,
		IsFull:    enrolled > 0 && evaluated >= enrolled,
	}, nil
}
