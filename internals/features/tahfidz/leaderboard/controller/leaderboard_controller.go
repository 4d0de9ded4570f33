package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "tahfidzku_backend/internals/features/tahfidz/leaderboard/service"
	helper "tahfidzku_backend/internals/helpers"
	"tahfidzku_backend/internals/helpers/dbtime"
)

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

/*
=========================================================

	WEEKLY
	GET /api/u/classes/:id/leaderboard
	=========================================================
*/
func (ctl *LeaderboardController) Weekly(c *fiber.Ctx) error {
	param := strings.TrimSpace(c.Params("id"))
	classID, err := uuid.Parse(param)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	now := time.Now().In(dbtime.AppLocation())
	entries, enabled, err := service.New(ctl.DB).Weekly(classID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat papan peringkat")
	}

	// enabled=false ≠ peringkat kosong: FE perlu bedakan "fitur mati"
	// dari "belum ada setoran pekan ini".
	if !enabled {
		return helper.Success(c, "Papan peringkat dimatikan untuk kelas ini", fiber.Map{
			"enabled": false,
			"entries": []service.Entry{},
		})
	}
	if entries == nil {
		entries = []service.Entry{}
	}

	start, end := service.WeekWindow(now)
	return helper.Success(c, "Papan peringkat pekan ini", fiber.Map{
		"enabled":    true,
		"entries":    entries,
		"week_start": dbtime.FormatDate(start),
		"week_end":   dbtime.FormatDate(end),
	})
}
