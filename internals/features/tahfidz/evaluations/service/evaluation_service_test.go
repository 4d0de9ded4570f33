package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "tahfidzku_backend/internals/features/tahfidz/classes/model"
	"tahfidzku_backend/internals/features/tahfidz/evaluations/model"
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
		&classModel.ClassModel{},
		&classModel.ClassEnrollmentModel{},
		&model.SessionModel{},
		&model.EvaluationModel{},
	))
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedSession(t *testing.T, db *gorm.DB, classID uuid.UUID, date time.Time) model.SessionModel {
	t.Helper()
	sess := model.SessionModel{
		SessionClassID: classID,
		SessionGuruID:  uuid.New(),
		SessionDate:    date,
	}
	require.NoError(t, db.Create(&sess).Error)
	return sess
}

func newEvaluation(sessionID, userID, evaluatorID uuid.UUID, verses int, notes *string) *model.EvaluationModel {
	return &model.EvaluationModel{
		EvaluationSessionID:       sessionID,
		EvaluationUserID:          userID,
		EvaluationEvaluatorID:     evaluatorID,
		EvaluationTajweedLevel:    model.LevelHafalLancar,
		EvaluationHafalanLevel:    model.LevelHafalTidakLancar,
		EvaluationTartilLevel:     model.LevelHafalLancar,
		EvaluationVersesCount:     verses,
		EvaluationAdditionalNotes: notes,
	}
}

/* =========================================================
   CREATE + DUPLIKAT
   ========================================================= */

func TestCreateDuplicateReturnsErrAlreadyGraded(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)

	sess := seedSession(t, db, uuid.New(), day(2024, 3, 4))
	student := uuid.New()
	guru := uuid.New()

	require.NoError(t, svc.Create(newEvaluation(sess.SessionID, student, guru, 5, nil)))

	// (sesi, santri, penilai) sama → ditolak constraint, bukan error lain
	err := svc.Create(newEvaluation(sess.SessionID, student, guru, 8, nil))
	require.ErrorIs(t, err, ErrAlreadyGraded)

	var count int64
	require.NoError(t, db.Model(&model.EvaluationModel{}).
		Where("evaluations_session_id = ?", sess.SessionID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateDifferentEvaluatorAllowed(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)

	sess := seedSession(t, db, uuid.New(), day(2024, 3, 4))
	student := uuid.New()

	require.NoError(t, svc.Create(newEvaluation(sess.SessionID, student, uuid.New(), 5, nil)))
	require.NoError(t, svc.Create(newEvaluation(sess.SessionID, student, uuid.New(), 3, nil)))
}

/* =========================================================
   HISTORY LOADER
   ========================================================= */

func TestListHistoryOrderedByDateAscending(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	student := uuid.New()
	classID := uuid.New()

	// sengaja disisipkan acak, harus keluar urut tanggal naik
	for _, d := range []int{10, 3, 7} {
		sess := seedSession(t, db, classID, day(2024, 2, d))
		require.NoError(t, svc.Create(newEvaluation(sess.SessionID, student, uuid.New(), d, nil)))
	}

	items, err := svc.ListHistory(student)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, 3, items[0].VersesCount)
	require.Equal(t, 7, items[1].VersesCount)
	require.Equal(t, 10, items[2].VersesCount)
	require.True(t, items[0].SessionDate.Before(items[1].SessionDate))
	require.True(t, items[1].SessionDate.Before(items[2].SessionDate))
}

func TestListHistoryUnknownStudentEmptyNotError(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)

	items, err := svc.ListHistory(uuid.New())
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestListHistoryOnlyOwnEvaluations(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	classID := uuid.New()
	a, b := uuid.New(), uuid.New()

	sess := seedSession(t, db, classID, day(2024, 2, 1))
	require.NoError(t, svc.Create(newEvaluation(sess.SessionID, a, uuid.New(), 5, nil)))
	require.NoError(t, svc.Create(newEvaluation(sess.SessionID, b, uuid.New(), 9, nil)))

	items, err := svc.ListHistory(a)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].VersesCount)
}

func TestListHistoryPaged(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	student := uuid.New()
	classID := uuid.New()

	for d := 1; d <= 5; d++ {
		sess := seedSession(t, db, classID, day(2024, 2, d))
		require.NoError(t, svc.Create(newEvaluation(sess.SessionID, student, uuid.New(), d, nil)))
	}

	items, total, err := svc.ListHistoryPaged(student, 2, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, items, 2)
	require.Equal(t, 3, items[0].VersesCount)
	require.Equal(t, 4, items[1].VersesCount)
}

/* =========================================================
   SESSION FULLNESS
   ========================================================= */

func TestFullnessProgression(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)

	cls := classModel.ClassModel{ClassName: "Tahfidz A", ClassGuruID: uuid.New()}
	require.NoError(t, db.Create(&cls).Error)

	s1, s2 := uuid.New(), uuid.New()
	for _, sid := range []uuid.UUID{s1, s2} {
		require.NoError(t, db.Create(&classModel.ClassEnrollmentModel{
			ClassEnrollmentClassID: cls.ClassID,
			ClassEnrollmentUserID:  sid,
		}).Error)
	}

	sess := seedSession(t, db, cls.ClassID, day(2024, 2, 1))

	f, err := svc.Fullness(sess.SessionID)
	require.NoError(t, err)
	require.EqualValues(t, 2, f.Enrolled)
	require.EqualValues(t, 0, f.Evaluated)
	require.False(t, f.IsFull)

	require.NoError(t, svc.Create(newEvaluation(sess.SessionID, s1, sess.SessionGuruID, 5, nil)))
	f, err = svc.Fullness(sess.SessionID)
	require.NoError(t, err)
	require.EqualValues(t, 1, f.Evaluated)
	require.False(t, f.IsFull)

	require.NoError(t, svc.Create(newEvaluation(sess.SessionID, s2, sess.SessionGuruID, 7, nil)))
	f, err = svc.Fullness(sess.SessionID)
	require.NoError(t, err)
	require.EqualValues(t, 2, f.Evaluated)
	require.True(t, f.IsFull)
}

func TestFullnessEmptyClassNeverFull(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)

	sess := seedSession(t, db, uuid.New(), day(2024, 2, 1))
	f, err := svc.Fullness(sess.SessionID)
	require.NoError(t, err)
	require.EqualValues(t, 0, f.Enrolled)
	require.False(t, f.IsFull)
}

func TestFullnessUnknownSession(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)

	_, err := svc.Fullness(uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
