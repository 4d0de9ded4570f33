package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel: satu kelas tahfidz, dimiliki satu guru.
// classes_enable_leaderboard: saklar papan peringkat mingguan per kelas.
type ClassModel struct {
	ClassID                uuid.UUID `gorm:"type:uuid;primaryKey;column:classes_id" json:"classes_id"`
	ClassName              string    `gorm:"type:varchar(120);not null;column:classes_name" json:"classes_name"`
	ClassGuruID            uuid.UUID `gorm:"type:uuid;not null;column:classes_guru_id;index:idx_classes_guru" json:"classes_guru_id"`
	ClassEnableLeaderboard bool      `gorm:"not null;default:true;column:classes_enable_leaderboard" json:"classes_enable_leaderboard"`

	ClassCreatedAt time.Time `gorm:"column:classes_created_at;autoCreateTime" json:"classes_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:classes_updated_at;autoUpdateTime" json:"classes_updated_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}

// ClassEnrollmentModel: keanggotaan santri di kelas.
// Unik per (kelas, santri) — populasi untuk fullness sesi & leaderboard.
type ClassEnrollmentModel struct {
	ClassEnrollmentID      uuid.UUID `gorm:"type:uuid;primaryKey;column:class_enrollments_id" json:"class_enrollments_id"`
	ClassEnrollmentClassID uuid.UUID `gorm:"type:uuid;not null;column:class_enrollments_class_id;uniqueIndex:uq_class_enrollments_class_user,priority:1" json:"class_enrollments_class_id"`
	ClassEnrollmentUserID  uuid.UUID `gorm:"type:uuid;not null;column:class_enrollments_user_id;uniqueIndex:uq_class_enrollments_class_user,priority:2" json:"class_enrollments_user_id"`

	ClassEnrollmentCreatedAt time.Time `gorm:"column:class_enrollments_created_at;autoCreateTime" json:"class_enrollments_created_at"`
}

func (ClassEnrollmentModel) TableName() string {
	return "class_enrollments"
}

func (m *ClassEnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassEnrollmentID == uuid.Nil {
		m.ClassEnrollmentID = uuid.New()
	}
	return nil
}

// UserModel: proyeksi read-only dari tabel users (dikelola layanan auth).
// Dipakai untuk menampilkan nama di leaderboard.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey;column:users_id" json:"users_id"`
	UserFullName string    `gorm:"type:varchar(120);not null;column:users_full_name" json:"users_full_name"`
}

func (UserModel) TableName() string {
	return "users"
}
