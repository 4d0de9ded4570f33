// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	classRoute "tahfidzku_backend/internals/features/tahfidz/classes/route"
	evalRoute "tahfidzku_backend/internals/features/tahfidz/evaluations/route"
	badgeRoute "tahfidzku_backend/internals/features/tahfidz/gamification/route"
	lbRoute "tahfidzku_backend/internals/features/tahfidz/leaderboard/route"
	authMiddleware "tahfidzku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authJWT := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	badgeRoute.BadgePublicRoutes(public, db)

	// ===================== USER (semua role login) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authJWT)
	evalRoute.EvaluationUserRoutes(user, db)
	badgeRoute.BadgeUserRoutes(user, db)
	lbRoute.LeaderboardUserRoutes(user, db)

	// ===================== GURU (entri data) =====================
	log.Println("[INFO] Setting up GURU group...")
	guru := app.Group("/api/u", authJWT, authMiddleware.RequireRoles(constants.GuruAndAbove...))
	evalRoute.EvaluationGuruRoutes(guru, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authJWT, authMiddleware.RequireRoles(constants.AdminOnly...))
	badgeRoute.BadgeAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
}
