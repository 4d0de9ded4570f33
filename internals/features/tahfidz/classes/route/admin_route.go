// file: internals/features/tahfidz/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "tahfidzku_backend/internals/features/tahfidz/classes/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classController.NewClassController(db)
	r.Patch("/classes/:id/leaderboard", ctl.UpdateLeaderboardFlag) // PATCH /api/a/classes/:id/leaderboard
}
