package badges

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/tahfidz/gamification/model"
)

type BadgeSeed struct {
	BadgeSlug        string `json:"badges_slug"`
	BadgeName        string `json:"badges_name"`
	BadgeDescription string `json:"badges_description"`
	BadgeIcon        string `json:"badges_icon"`
	BadgeCategory    string `json:"badges_category"`
}

func SeedBadgesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal baca file JSON: %v", err)
	}

	var data []BadgeSeed
	if err := json.Unmarshal(content, &data); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, item := range data {
		var existing model.BadgeModel
		if err := db.Where("badges_slug = ?", item.BadgeSlug).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Badge %s sudah ada, lewati...", item.BadgeSlug)
			continue
		}

		record := model.BadgeModel{
			BadgeSlug:        item.BadgeSlug,
			BadgeName:        item.BadgeName,
			BadgeDescription: item.BadgeDescription,
			BadgeIcon:        item.BadgeIcon,
			BadgeCategory:    item.BadgeCategory,
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("❌ Gagal insert badge %s: %v", item.BadgeSlug, err)
		} else {
			log.Printf("✅ Berhasil insert badge %s", item.BadgeSlug)
		}
	}
}
