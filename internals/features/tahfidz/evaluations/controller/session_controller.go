package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tahfidzku_backend/internals/features/tahfidz/evaluations/dto"
	model "tahfidzku_backend/internals/features/tahfidz/evaluations/model"
	helper "tahfidzku_backend/internals/helpers"
	"tahfidzku_backend/internals/helpers/dbtime"
	helperAuth "tahfidzku_backend/internals/middlewares/auth"
)

type SessionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{
		DB:        db,
		Validator: validator.New(),
	}
}

/*
=========================================================

	CREATE
	POST /api/u/sessions
	=========================================================
*/
func (ctl *SessionController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if req.GuruID == uuid.Nil {
		req.GuruID = helperAuth.UserIDFromLocals(c)
	}
	if req.GuruID == uuid.Nil {
		return helper.Error(c, fiber.StatusBadRequest, "Guru tidak diketahui")
	}

	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := dbtime.ParseDate(req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	sess := req.ToModel(date)
	if err := ctl.DB.Create(&sess).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat sesi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi berhasil dibuat", sess)
}

/*
=========================================================

	LIST PER KELAS
	GET /api/u/classes/:id/sessions
	=========================================================
*/
func (ctl *SessionController) ListClassSessions(c *fiber.Ctx) error {
	classID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	sessions := make([]model.SessionModel, 0)
	if err := ctl.DB.
		Where("sessions_class_id = ?", classID).
		Order("sessions_date DESC").
		Find(&sessions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat sesi kelas")
	}

	return helper.Success(c, "Daftar sesi kelas", sessions)
}
