// file: internals/features/tahfidz/evaluations/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evalController "tahfidzku_backend/internals/features/tahfidz/evaluations/controller"
)

/*
User routes: baca riwayat & progres sesi
Mount contoh: EvaluationUserRoutes(app.Group("/api/u"), db)
*/
func EvaluationUserRoutes(r fiber.Router, db *gorm.DB) {
	evalCtl := evalController.NewEvaluationController(db)
	sessCtl := evalController.NewSessionController(db)

	r.Get("/students/:id/evaluations", evalCtl.ListStudentEvaluations) // GET /api/u/students/:id/evaluations
	r.Get("/sessions/:id/fullness", evalCtl.SessionFullness)           // GET /api/u/sessions/:id/fullness
	r.Get("/classes/:id/sessions", sessCtl.ListClassSessions)          // GET /api/u/classes/:id/sessions
}

/*
Guru routes: entri data (evaluasi & sesi)
*/
func EvaluationGuruRoutes(r fiber.Router, db *gorm.DB) {
	evalCtl := evalController.NewEvaluationController(db)
	sessCtl := evalController.NewSessionController(db)

	r.Post("/evaluations", evalCtl.CreateEvaluation) // POST /api/u/evaluations
	r.Post("/sessions", sessCtl.CreateSession)       // POST /api/u/sessions
}
