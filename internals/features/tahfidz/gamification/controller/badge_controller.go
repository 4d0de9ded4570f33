package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/configs"
	dto "tahfidzku_backend/internals/features/tahfidz/gamification/dto"
	service "tahfidzku_backend/internals/features/tahfidz/gamification/service"
	helper "tahfidzku_backend/internals/helpers"
)

type BadgeController struct {
	DB          *gorm.DB
	Validator   *validator.Validate
	Achievement *service.AchievementService
}

func NewBadgeController(db *gorm.DB) *BadgeController {
	return &BadgeController{
		DB:        db,
		Validator: validator.New(),
		Achievement: service.NewAchievementService(
			db,
			service.DefaultBadgeRules(configs.BadgeKeywords()),
		),
	}
}

func (ctl *BadgeController) getID(c *fiber.Ctx) (uuid.UUID, error) {
	param := strings.TrimSpace(c.Params("id"))
	if param == "" {
		return uuid.Nil, errors.New("missing id")
	}
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

/*
=========================================================

	CHECK (recompute manual — aman diulang)
	POST /api/u/students/:id/badges/check
	=========================================================
*/
func (ctl *BadgeController) CheckBadges(c *fiber.Ctx) error {
	studentID, err := ctl.getID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	newBadges, err := ctl.Achievement.CheckBadges(studentID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengecek badge")
	}
	if newBadges == nil {
		newBadges = []string{}
	}

	return helper.Success(c, "Pengecekan badge selesai", fiber.Map{
		"new_badges": newBadges,
	})
}

/*
=========================================================

	EARNED
	GET /api/u/students/:id/badges
	=========================================================
*/
func (ctl *BadgeController) ListEarned(c *fiber.Ctx) error {
	studentID, err := ctl.getID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	earned, err := ctl.Achievement.ListEarned(studentID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat badge santri")
	}

	return helper.Success(c, "Badge yang sudah diraih", earned)
}

/*
=========================================================

	CATALOG
	GET /api/public/badges
	=========================================================
*/
func (ctl *BadgeController) Catalog(c *fiber.Ctx) error {
	catalog, err := ctl.Achievement.Catalog()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat katalog badge")
	}
	return helper.Success(c, "Katalog badge", catalog)
}

/*
=========================================================

	CREATE (admin)
	POST /api/a/badges
	=========================================================
*/
func (ctl *BadgeController) CreateBadge(c *fiber.Ctx) error {
	var req dto.CreateBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	badge := req.ToModel()
	if err := ctl.DB.Create(&badge).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug badge sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat badge")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Badge berhasil dibuat", badge)
}
