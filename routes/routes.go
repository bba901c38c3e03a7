package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"luxurystay-backend/controllers"
	"luxurystay-backend/middleware"
	"luxurystay-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the route tree. The room list and
// detail endpoints are public; everything else requires a signed-in user, and
// the admin groups require the admin role.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	uc *controllers.UserController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/google", ac.GoogleLogin)
			auth.POST("/logout", middleware.AuthMiddleware(), ac.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), ac.Me)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)

			rooms.POST("", middleware.AuthMiddleware(models.RoleAdmin), rc.CreateRoom)
			rooms.PATCH("/:id", middleware.AuthMiddleware(models.RoleAdmin), rc.UpdateRoom)
			rooms.PUT("/:id", middleware.AuthMiddleware(models.RoleAdmin), rc.UpdateRoom)
			rooms.DELETE("/:id", middleware.AuthMiddleware(models.RoleAdmin), rc.DeleteRoom)
		}

		reservations := api.Group("/reservations", middleware.AuthMiddleware())
		{
			reservations.POST("", resc.CreateReservation)
			reservations.GET("/mine", resc.GetMyReservations)
			reservations.GET("/:id", resc.GetReservation)
			reservations.POST("/:id/pay", resc.PayReservation)
			reservations.POST("/:id/cancel", resc.CancelReservation)
			reservations.DELETE("/:id", resc.DeleteReservation)

			admin := reservations.Group("", middleware.AuthMiddleware(models.RoleAdmin))
			{
				admin.GET("", resc.GetReservations)
				admin.PATCH("/:id/status", resc.UpdateReservationStatus)
				admin.POST("/bulk/status", resc.BulkUpdateStatus)
				admin.POST("/bulk/delete", resc.BulkDelete)
			}
		}

		users := api.Group("/users", middleware.AuthMiddleware(models.RoleAdmin))
		{
			users.GET("", uc.GetUsers)
			users.GET("/:id", uc.GetUser)
			users.PATCH("/:id/role", uc.UpdateUserRole)
			users.DELETE("/:id", uc.DeleteUser)
		}
	}

	return r
}
