package seeds

import (
	badges "tahfidzku_backend/internals/seeds/badges"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Gamifikasi
	badges.SeedBadgesFromJSON(db, "internals/seeds/badges/data_badges.json")
}
