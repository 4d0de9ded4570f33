// file: internals/features/tahfidz/leaderboard/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lbController "tahfidzku_backend/internals/features/tahfidz/leaderboard/controller"
)

func LeaderboardUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lbController.NewLeaderboardController(db)
	r.Get("/classes/:id/leaderboard", ctl.Weekly) // GET /api/u/classes/:id/leaderboard
}
