package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "tahfidzku_backend/internals/features/tahfidz/classes/model"
	evalModel "tahfidzku_backend/internals/features/tahfidz/evaluations/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&classModel.UserModel{},
		&classModel.ClassModel{},
		&classModel.ClassEnrollmentModel{},
		&evalModel.SessionModel{},
		&evalModel.EvaluationModel{},
	))
	return db
}

/* =========================================================
   WEEK WINDOW
   ========================================================= */

func TestWeekWindowMidweek(t *testing.T) {
	// Rabu 10 Jan 2024 → pekan Senin 8 Jan s/d Minggu 14 Jan
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	start, end := WeekWindow(now)

	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC), end)
}

func TestWeekWindowMondayStartsToday(t *testing.T) {
	now := time.Date(2024, 1, 8, 0, 0, 1, 0, time.UTC)
	start, _ := WeekWindow(now)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), start)
}

// Minggu masuk pekan yang DIMULAI Senin sebelumnya, bukan pekan berikutnya.
func TestWeekWindowSundayBelongsToCurrentWeek(t *testing.T) {
	now := time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC)
	start, end := WeekWindow(now)

	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC), end)
}

func TestWeekWindowKeepsLocation(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, wib)
	start, end := WeekWindow(now)

	assert.Equal(t, "WIB", start.Location().String())
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, wib), start)
	assert.Equal(t, time.Date(2024, 1, 14, 23, 59, 59, 0, wib), end)
}

/* =========================================================
   WEEKLY (agregasi per kelas)
   ========================================================= */

type fixture struct {
	db      *gorm.DB
	class   classModel.ClassModel
	session evalModel.SessionModel
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := openTestDB(t)

	cls := classModel.ClassModel{ClassName: "Tahfidz A", ClassGuruID: uuid.New()}
	require.NoError(t, db.Create(&cls).Error)

	sess := evalModel.SessionModel{
		SessionClassID: cls.ClassID,
		SessionGuruID:  cls.ClassGuruID,
		SessionDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&sess).Error)

	return &fixture{
		db:      db,
		class:   cls,
		session: sess,
		now:     time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), // Rabu
	}
}

func (f *fixture) enrollStudent(t *testing.T, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, f.db.Create(&classModel.UserModel{
		UserID:       id,
		UserFullName: name,
	}).Error)
	require.NoError(t, f.db.Create(&classModel.ClassEnrollmentModel{
		ClassEnrollmentClassID: f.class.ClassID,
		ClassEnrollmentUserID:  id,
	}).Error)
	return id
}

// createdAt diisi eksplisit supaya filter jendela pekan teruji.
func (f *fixture) addEvaluation(t *testing.T, studentID uuid.UUID, verses int, createdAt time.Time) {
	t.Helper()
	require.NoError(t, f.db.Create(&evalModel.EvaluationModel{
		EvaluationSessionID:    f.session.SessionID,
		EvaluationUserID:       studentID,
		EvaluationEvaluatorID:  uuid.New(),
		EvaluationTajweedLevel: evalModel.LevelHafalLancar,
		EvaluationHafalanLevel: evalModel.LevelHafalLancar,
		EvaluationTartilLevel:  evalModel.LevelHafalLancar,
		EvaluationVersesCount:  verses,
		EvaluationCreatedAt:    createdAt,
	}).Error)
}

func TestWeeklyRankingExcludesZeroTotals(t *testing.T) {
	f := newFixture(t)
	svc := New(f.db)

	a := f.enrollStudent(t, "Ahmad")
	b := f.enrollStudent(t, "Bilal")
	c := f.enrollStudent(t, "Citra")

	inWeek := time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)
	f.addEvaluation(t, a, 12, inWeek)
	f.addEvaluation(t, b, 0, inWeek)
	f.addEvaluation(t, c, 5, inWeek)

	entries, enabled, err := svc.Weekly(f.class.ClassID, f.now)
	require.NoError(t, err)
	require.True(t, enabled)
	require.Len(t, entries, 2)

	assert.Equal(t, a, entries[0].UserID)
	assert.Equal(t, "Ahmad", entries[0].FullName)
	assert.Equal(t, 12, entries[0].TotalVerses)
	assert.Equal(t, 1, entries[0].Rank)

	assert.Equal(t, c, entries[1].UserID)
	assert.Equal(t, 5, entries[1].TotalVerses)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestWeeklySumsMultipleEvaluations(t *testing.T) {
	f := newFixture(t)
	svc := New(f.db)

	a := f.enrollStudent(t, "Ahmad")
	b := f.enrollStudent(t, "Bilal")

	sess2 := evalModel.SessionModel{
		SessionClassID: f.class.ClassID,
		SessionGuruID:  f.class.ClassGuruID,
		SessionDate:    time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.db.Create(&sess2).Error)

	inWeek := time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)
	f.addEvaluation(t, a, 4, inWeek)
	require.NoError(t, f.db.Create(&evalModel.EvaluationModel{
		EvaluationSessionID:    sess2.SessionID,
		EvaluationUserID:       a,
		EvaluationEvaluatorID:  uuid.New(),
		EvaluationTajweedLevel: evalModel.LevelHafalLancar,
		EvaluationHafalanLevel: evalModel.LevelHafalLancar,
		EvaluationTartilLevel:  evalModel.LevelHafalLancar,
		EvaluationVersesCount:  6,
		EvaluationCreatedAt:    time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC),
	}).Error)
	f.addEvaluation(t, b, 7, inWeek)

	entries, _, err := svc.Weekly(f.class.ClassID, f.now)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, a, entries[0].UserID)
	assert.Equal(t, 10, entries[0].TotalVerses)
	assert.Equal(t, b, entries[1].UserID)
	assert.Equal(t, 7, entries[1].TotalVerses)
}

func TestWeeklyIgnoresEvaluationsOutsideWindow(t *testing.T) {
	f := newFixture(t)
	svc := New(f.db)

	a := f.enrollStudent(t, "Ahmad")
	b := f.enrollStudent(t, "Bilal")

	// pekan sebelumnya → tidak ikut dihitung
	f.addEvaluation(t, a, 30, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC))
	f.addEvaluation(t, b, 3, time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC))

	entries, _, err := svc.Weekly(f.class.ClassID, f.now)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, b, entries[0].UserID)
}

func TestWeeklyCapsAtTopN(t *testing.T) {
	f := newFixture(t)
	svc := New(f.db)

	inWeek := time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)
	for i := 0; i < TopN+2; i++ {
		id := f.enrollStudent(t, fmt.Sprintf("Santri %d", i+1))
		f.addEvaluation(t, id, 10+i, inWeek)
	}

	entries, _, err := svc.Weekly(f.class.ClassID, f.now)
	require.NoError(t, err)
	require.Len(t, entries, TopN)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, entries[i-1].TotalVerses, e.TotalVerses)
		}
	}
}

func TestWeeklyDisabledClassShortCircuits(t *testing.T) {
	f := newFixture(t)
	svc := New(f.db)

	a := f.enrollStudent(t, "Ahmad")
	f.addEvaluation(t, a, 12, time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC))

	require.NoError(t, f.db.Model(&classModel.ClassModel{}).
		Where("classes_id = ?", f.class.ClassID).
		Update("classes_enable_leaderboard", false).Error)

	entries, enabled, err := svc.Weekly(f.class.ClassID, f.now)
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Empty(t, entries)
}

func TestWeeklyEmptyClassEnabledButEmpty(t *testing.T) {
	f := newFixture(t)
	svc := New(f.db)

	entries, enabled, err := svc.Weekly(f.class.ClassID, f.now)
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestWeeklyUnknownClass(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)

	_, _, err := svc.Weekly(uuid.New(), time.Now())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
