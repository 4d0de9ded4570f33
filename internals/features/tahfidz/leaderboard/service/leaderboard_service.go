package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "tahfidzku_backend/internals/features/tahfidz/classes/model"
)

// TopN: jumlah maksimal entri papan peringkat.
const TopN = 5

type Entry struct {
	UserID      uuid.UUID `json:"user_id"`
	FullName    string    `json:"full_name"`
	TotalVerses int       `json:"total_verses"`
	Rank        int       `json:"rank"`
}

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// WeekWindow: batas pekan ISO berjalan — Senin 00:00:00 s/d Minggu 23:59:59
// pada zona kalender now.
func WeekWindow(now time.Time) (start, end time.Time) {
	loc := now.Location()
	wd := int(now.Weekday())
	if wd == 0 { // Minggu
		wd = 7
	}
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -(wd - 1))
	end = start.AddDate(0, 0, 7).Add(-time.Second)
	return start, end
}

type sumRow struct {
	UserID uuid.UUID `gorm:"column:user_id"`
	Total  int       `gorm:"column:total"`
}

// Weekly: papan peringkat pekan berjalan untuk satu kelas.
// enabled=false saat fitur dimatikan per kelas — dibedakan dari peringkat
// kosong ("belum ada setoran"). Agregasi (filter, group, window) didorong
// ke query, bukan di memori.
func (s *Service) Weekly(classID uuid.UUID, now time.Time) (entries []Entry, enabled bool, err error) {
	var cls classModel.ClassModel
	if err := s.DB.Where("classes_id = ?", classID).Take(&cls).Error; err != nil {
		return nil, false, err
	}
	if !cls.ClassEnableLeaderboard {
		return nil, false, nil
	}

	var studentIDs []uuid.UUID
	if err := s.DB.Model(&classModel.ClassEnrollmentModel{}).
		Where("class_enrollments_class_id = ?", classID).
		Pluck("class_enrollments_user_id", &studentIDs).Error; err != nil {
		return nil, true, err
	}
	if len(studentIDs) == 0 {
		return []Entry{}, true, nil
	}

	start, end := WeekWindow(now)

	// Group-sum per santri; total nol tidak ikut peringkat
	// ("belum setoran pekan ini", bukan peringkat terbawah).
	var rows []sumRow
	if err := s.DB.Table("evaluations").
		Select("evaluations_user_id AS user_id, SUM(evaluations_verses_count) AS total").
		Where("evaluations_user_id IN ?", studentIDs).
		Where("evaluations_created_at BETWEEN ? AND ?", start, end).
		Group("evaluations_user_id").
		Having("SUM(evaluations_verses_count) > 0").
		Order("total DESC, user_id ASC").
		Limit(TopN).
		Scan(&rows).Error; err != nil {
		return nil, true, err
	}

	names, err := s.fullNames(studentIDs)
	if err != nil {
		return nil, true, err
	}

	entries = make([]Entry, 0, len(rows))
	for i, r := range rows {
		entries = append(entries, Entry{
			UserID:      r.UserID,
			FullName:    names[r.UserID],
			TotalVerses: r.Total,
			Rank:        i + 1,
		})
	}
	return entries, true, nil
}

func (s *Service) fullNames(ids []uuid.UUID) (map[uuid.UUID]string, error) {
	var users []classModel.UserModel
	if err := s.DB.Where("users_id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.UserID] = u.UserFullName
	}
	return names, nil
}
