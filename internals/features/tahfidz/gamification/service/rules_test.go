package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testKeywords = []string{"juz 30", "juz amma"}

func earnedSet(slugs ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		m[s] = struct{}{}
	}
	return m
}

func TestRulesFirstEvaluation(t *testing.T) {
	rules := DefaultBadgeRules(testKeywords)
	got := NewlyQualified(rules, BadgeFacts{EvaluationCount: 1}, earnedSet())
	assert.Equal(t, []string{SlugFirstStep}, got)
}

func TestRulesHighAchieverThresholdExactlyTen(t *testing.T) {
	rules := DefaultBadgeRules(testKeywords)

	got := NewlyQualified(rules, BadgeFacts{EvaluationCount: 9}, earnedSet(SlugFirstStep))
	assert.Empty(t, got)

	got = NewlyQualified(rules, BadgeFacts{EvaluationCount: 10}, earnedSet(SlugFirstStep))
	assert.Equal(t, []string{SlugHighAchiever}, got)
}

func TestRulesKeywordMatchCaseInsensitiveSubstring(t *testing.T) {
	rules := DefaultBadgeRules(testKeywords)
	facts := BadgeFacts{
		EvaluationCount: 1,
		Notes:           []string{"Lulus setoran hafalan JUZ 30, alhamdulillah"},
	}
	got := NewlyQualified(rules, facts, earnedSet(SlugFirstStep))
	assert.Equal(t, []string{SlugHafalJuz30}, got)

	facts.Notes = []string{"Setoran lancar"}
	assert.Empty(t, NewlyQualified(rules, facts, earnedSet(SlugFirstStep)))
}

func TestRulesStreakSevenDays(t *testing.T) {
	rules := DefaultBadgeRules(testKeywords)

	facts := BadgeFacts{EvaluationCount: 7, MaxStreak: 6}
	assert.Empty(t, NewlyQualified(rules, facts, earnedSet(SlugFirstStep)))

	facts.MaxStreak = 7
	assert.Equal(t, []string{SlugStreak7Days}, NewlyQualified(rules, facts, earnedSet(SlugFirstStep)))
}

func TestRulesAlreadyEarnedFiltered(t *testing.T) {
	rules := DefaultBadgeRules(testKeywords)
	facts := BadgeFacts{EvaluationCount: 12, MaxStreak: 8}
	got := NewlyQualified(rules, facts, earnedSet(SlugFirstStep, SlugHighAchiever, SlugStreak7Days))
	assert.Empty(t, got)
}

// Idempoten: gabungkan output run pertama ke earned → run kedua kosong.
func TestRulesIdempotentAcrossRuns(t *testing.T) {
	rules := DefaultBadgeRules(testKeywords)
	facts := BadgeFacts{
		EvaluationCount: 10,
		MaxStreak:       7,
		Notes:           []string{"Lulus setoran hafalan Juz 30"},
	}

	earned := earnedSet()
	first := NewlyQualified(rules, facts, earned)
	assert.ElementsMatch(t, []string{SlugFirstStep, SlugHighAchiever, SlugHafalJuz30, SlugStreak7Days}, first)

	for _, s := range first {
		earned[s] = struct{}{}
	}
	assert.Empty(t, NewlyQualified(rules, facts, earned))
}

// Menambah aturan = menambah entri tabel, alur tidak berubah.
func TestRulesTableIsExtensible(t *testing.T) {
	rules := append(DefaultBadgeRules(testKeywords), BadgeRule{
		Slug:      "marathon-reciter",
		Qualifies: func(f BadgeFacts) bool { return f.EvaluationCount >= 100 },
	})
	got := NewlyQualified(rules, BadgeFacts{EvaluationCount: 100}, earnedSet(
		SlugFirstStep, SlugHighAchiever,
	))
	assert.Equal(t, []string{"marathon-reciter"}, got)
}
