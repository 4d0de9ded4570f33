package database

import (
	"log"

	"gorm.io/gorm"

	classModel "tahfidzku_backend/internals/features/tahfidz/classes/model"
	evalModel "tahfidzku_backend/internals/features/tahfidz/evaluations/model"
	gamiModel "tahfidzku_backend/internals/features/tahfidz/gamification/model"
)

// AutoMigrateTahfidz: migrasi skema untuk fitur tahfidz.
// Production memakai skema terkelola (SQL); ini untuk dev & test.
func AutoMigrateTahfidz(db *gorm.DB) {
	if err := db.AutoMigrate(
		&classModel.UserModel{},
		&classModel.ClassModel{},
		&classModel.ClassEnrollmentModel{},
		&evalModel.SessionModel{},
		&evalModel.EvaluationModel{},
		&gamiModel.BadgeModel{},
		&gamiModel.UserBadgeModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
