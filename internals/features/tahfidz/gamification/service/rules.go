package service

import "strings"

/* =========================================================
   ATURAN BADGE (tabel deklaratif)
   ========================================================= */

// BadgeFacts: fakta turunan dari riwayat evaluasi seorang santri.
type BadgeFacts struct {
	EvaluationCount int
	MaxStreak       int
	Notes           []string // catatan tambahan semua evaluasi
}

// BadgeRule: satu aturan — slug + predikat murni atas facts.
// Menambah aturan = menambah entri tabel, bukan mengubah alur.
type BadgeRule struct {
	Slug      string
	Qualifies func(BadgeFacts) bool
}

// Slug aturan bawaan.
const (
	SlugFirstStep    = "first-step"
	SlugHighAchiever = "high-achiever"
	SlugHafalJuz30   = "hafal-juz-30"
	SlugStreak7Days  = "streak-7-days"
)

// DefaultBadgeRules: tabel aturan bawaan. keywords untuk "hafal-juz-30"
// (substring case-insensitive pada catatan, bukan exact match).
func DefaultBadgeRules(keywords []string) []BadgeRule {
	return []BadgeRule{
		{
			Slug:      SlugFirstStep,
			Qualifies: func(f BadgeFacts) bool { return f.EvaluationCount >= 1 },
		},
		{
			Slug:      SlugHighAchiever,
			Qualifies: func(f BadgeFacts) bool { return f.EvaluationCount >= 10 },
		},
		{
			Slug:      SlugHafalJuz30,
			Qualifies: func(f BadgeFacts) bool { return anyNoteContains(f.Notes, keywords) },
		},
		{
			Slug:      SlugStreak7Days,
			Qualifies: func(f BadgeFacts) bool { return f.MaxStreak >= 7 },
		},
	}
}

// NewlyQualified: evaluasi semua aturan sekaligus (bukan rantai prioritas)
// dan saring yang sudah pernah diraih. Murni; idempoten saat output run
// pertama digabung ke earned.
func NewlyQualified(rules []BadgeRule, facts BadgeFacts, earned map[string]struct{}) []string {
	newSlugs := make([]string, 0, len(rules))
	for _, rule := range rules {
		if _, ok := earned[rule.Slug]; ok {
			continue
		}
		if rule.Qualifies(facts) {
			newSlugs = append(newSlugs, rule.Slug)
		}
	}
	return newSlugs
}

func anyNoteContains(notes, keywords []string) bool {
	for _, n := range notes {
		ln := strings.ToLower(n)
		for _, kw := range keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(ln, strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}
