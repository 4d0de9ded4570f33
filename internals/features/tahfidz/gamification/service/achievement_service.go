package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	evalService "tahfidzku_backend/internals/features/tahfidz/evaluations/service"
	"tahfidzku_backend/internals/features/tahfidz/gamification/model"
	helper "tahfidzku_backend/internals/helpers"
)

/* =========================================================
   ACHIEVEMENT SERVICE (pipeline: riwayat → facts → aturan → award)
   ========================================================= */

type AchievementService struct {
	DB    *gorm.DB
	Rules []BadgeRule
}

func NewAchievementService(db *gorm.DB, rules []BadgeRule) *AchievementService {
	return &AchievementService{DB: db, Rules: rules}
}

// EarnedSlugs: himpunan slug badge yang sudah diraih santri.
func (s *AchievementService) EarnedSlugs(userID uuid.UUID) (map[string]struct{}, error) {
	var slugs []string
	err := s.DB.Table("user_badges").
		Select("badges.badges_slug").
		Joins("JOIN badges ON badges.badges_id = user_badges.user_badges_badge_id").
		Where("user_badges.user_badges_user_id = ?", userID).
		Scan(&slugs).Error
	if err != nil {
		return nil, err
	}
	earned := make(map[string]struct{}, len(slugs))
	for _, sl := range slugs {
		earned[sl] = struct{}{}
	}
	return earned, nil
}

/* =========================================================
   AWARDER
   ========================================================= */

// Award: resolve slug → definisi badge, insert satu baris per slug.
// Tabrakan unique (santri, badge) = "sudah diraih" (run paralel kalah
// race), di-skip tanpa error. Slug tanpa definisi di katalog di-skip +
// dicatat (mismatch katalog vs tabel aturan).
// Return: slug yang benar-benar tersimpan run ini (bisa kosong).
func (s *AchievementService) Award(userID uuid.UUID, slugs []string) ([]string, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var defs []model.BadgeModel
	if err := s.DB.Where("badges_slug IN ?", slugs).Find(&defs).Error; err != nil {
		return nil, err
	}
	bySlug := make(map[string]model.BadgeModel, len(defs))
	for _, d := range defs {
		bySlug[d.BadgeSlug] = d
	}

	awarded := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		def, ok := bySlug[slug]
		if !ok {
			log.Printf("⚠️ Badge %q lolos aturan tapi tidak ada di katalog — dilewati", slug)
			continue
		}
		ub := model.UserBadgeModel{
			UserBadgeUserID:  userID,
			UserBadgeBadgeID: def.BadgeID,
		}
		if err := s.DB.Create(&ub).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				// sudah diberikan run lain
				continue
			}
			return awarded, err
		}
		awarded = append(awarded, slug)
	}
	return awarded, nil
}

/* =========================================================
   CHECK (aman diulang kapan pun: murni + idempoten)
   ========================================================= */

// CheckBadges: muat riwayat + earned set, hitung facts, jalankan tabel
// aturan, lalu award. Return slug badge yang baru tersimpan.
func (s *AchievementService) CheckBadges(userID uuid.UUID) ([]string, error) {
	history, err := evalService.New(s.DB).ListHistory(userID)
	if err != nil {
		return nil, err
	}

	earned, err := s.EarnedSlugs(userID)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(history))
	notes := make([]string, 0, len(history))
	for _, h := range history {
		dates = append(dates, h.SessionDate)
		if h.AdditionalNotes != nil {
			notes = append(notes, *h.AdditionalNotes)
		}
	}

	facts := BadgeFacts{
		EvaluationCount: len(history),
		MaxStreak:       MaxStreak(dates),
		Notes:           notes,
	}

	return s.Award(userID, NewlyQualified(s.Rules, facts, earned))
}

/* =========================================================
   QUERIES (tampilan)
   ========================================================= */

// ListEarned: badge yang diraih santri, terbaru dulu, plus definisinya.
func (s *AchievementService) ListEarned(userID uuid.UUID) ([]model.UserBadgeModel, error) {
	out := make([]model.UserBadgeModel, 0)
	err := s.DB.Preload("Badge").
		Where("user_badges_user_id = ?", userID).
		Order("user_badges_awarded_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Catalog: seluruh katalog badge, urut kategori.
func (s *AchievementService) Catalog() ([]model.BadgeModel, error) {
	out := make([]model.BadgeModel, 0)
	err := s.DB.Order("badges_category ASC, badges_slug ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
