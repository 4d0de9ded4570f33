package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "tahfidzku_backend/internals/features/tahfidz/classes/model"
	helper "tahfidzku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

type updateLeaderboardFlagRequest struct {
	Enable *bool `json:"classes_enable_leaderboard"`
}

/*
=========================================================

	TOGGLE LEADERBOARD
	PATCH /api/a/classes/:id/leaderboard
	=========================================================
*/
func (ctl *ClassController) UpdateLeaderboardFlag(c *fiber.Ctx) error {
	param := strings.TrimSpace(c.Params("id"))
	classID, err := uuid.Parse(param)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req updateLeaderboardFlagRequest
	if err := c.BodyParser(&req); err != nil || req.Enable == nil {
		return helper.Error(c, fiber.StatusBadRequest, "classes_enable_leaderboard wajib diisi (true/false)")
	}

	var cls model.ClassModel
	if err := ctl.DB.Where("classes_id = ?", classID).Take(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat kelas")
	}

	if err := ctl.DB.Model(&cls).
		Update("classes_enable_leaderboard", *req.Enable).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah pengaturan kelas")
	}

	return helper.Success(c, "Pengaturan papan peringkat diperbarui", fiber.Map{
		"classes_id":                 classID,
		"classes_enable_leaderboard": *req.Enable,
	})
}
