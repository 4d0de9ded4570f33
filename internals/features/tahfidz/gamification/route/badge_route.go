// file: internals/features/tahfidz/gamification/route/badge_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeController "tahfidzku_backend/internals/features/tahfidz/gamification/controller"
)

/*
Public routes: katalog badge (read-only)
*/
func BadgePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := badgeController.NewBadgeController(db)
	r.Get("/badges", ctl.Catalog) // GET /api/public/badges
}

/*
User routes: badge santri + recompute manual
*/
func BadgeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := badgeController.NewBadgeController(db)
	r.Get("/students/:id/badges", ctl.ListEarned)         // GET  /api/u/students/:id/badges
	r.Post("/students/:id/badges/check", ctl.CheckBadges) // POST /api/u/students/:id/badges/check
}

/*
Admin routes: kelola katalog
*/
func BadgeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := badgeController.NewBadgeController(db)
	r.Post("/badges", ctl.CreateBadge) // POST /api/a/badges
}
