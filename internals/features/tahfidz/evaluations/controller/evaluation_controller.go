package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/configs"
	dto "tahfidzku_backend/internals/features/tahfidz/evaluations/dto"
	service "tahfidzku_backend/internals/features/tahfidz/evaluations/service"
	gamiService "tahfidzku_backend/internals/features/tahfidz/gamification/service"
	helper "tahfidzku_backend/internals/helpers"
	helperAuth "tahfidzku_backend/internals/middlewares/auth"
)

/* =========================
   Controller
   ========================= */

type EvaluationController struct {
	DB          *gorm.DB
	Validator   *validator.Validate
	Achievement *gamiService.AchievementService
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{
		DB:        db,
		Validator: validator.New(),
		Achievement: gamiService.NewAchievementService(
			db,
			gamiService.DefaultBadgeRules(configs.BadgeKeywords()),
		),
	}
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	param := strings.TrimSpace(c.Params(name))
	if param == "" {
		return uuid.Nil, errors.New("missing " + name)
	}
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, errors.New("invalid " + name)
	}
	return id, nil
}

/*
=========================================================

	CREATE
	POST /api/u/evaluations
	=========================================================
*/
func (ctl *EvaluationController) CreateEvaluation(c *fiber.Ctx) error {
	var req dto.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	// penilai default dari token
	if req.EvaluatorID == uuid.Nil {
		req.EvaluatorID = helperAuth.UserIDFromLocals(c)
	}
	if req.EvaluatorID == uuid.Nil {
		return helper.Error(c, fiber.StatusBadRequest, "Penilai tidak diketahui")
	}

	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ev := req.ToModel()
	if err := service.New(ctl.DB).Create(&ev); err != nil {
		if errors.Is(err, service.ErrAlreadyGraded) {
			return helper.Error(c, fiber.StatusConflict, "Santri sudah dinilai pada sesi ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan evaluasi")
	}

	// Cek badge setelah tulis sukses: best-effort, kegagalan tidak
	// membatalkan evaluasi yang sudah tersimpan.
	newBadges := []string{}
	if got, err := ctl.Achievement.CheckBadges(ev.EvaluationUserID); err != nil {
		log.Printf("⚠️ Cek badge gagal untuk santri %s (diabaikan): %v", ev.EvaluationUserID, err)
	} else if got != nil {
		newBadges = got
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Evaluasi berhasil disimpan", dto.EvaluationWithBadges{
		Evaluation: ev,
		NewBadges:  newBadges,
	})
}

/*
=========================================================

	HISTORY
	GET /api/u/students/:id/evaluations
	Query: page, per_page
	=========================================================
*/
func (ctl *EvaluationController) ListStudentEvaluations(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	items, total, err := service.New(ctl.DB).ListHistoryPaged(studentID, paging.Offset, paging.Limit)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat riwayat evaluasi")
	}

	return helper.Success(c, "Riwayat evaluasi", fiber.Map{
		"evaluations": items,
		"pagination":  helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

/*
=========================================================

	FULLNESS
	GET /api/u/sessions/:id/fullness
	=========================================================
*/
func (ctl *EvaluationController) SessionFullness(c *fiber.Ctx) error {
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	full, err := service.New(ctl.DB).Fullness(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat progres sesi")
	}

	return helper.Success(c, "Progres penilaian sesi", dto.SessionFullnessResponse{
		SessionID: sessionID,
		Enrolled:  full.Enrolled,
		Evaluated: full.Evaluated,
		IsFull:    full.IsFull,
	})
}
