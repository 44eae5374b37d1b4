package routes

import (
	"net/http"

	"majestea-api/handlers"
	"majestea-api/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full /api surface against the given store.
func SetupRoutes(r *gin.Engine, s store.Store) {
	restaurant := handlers.NewRestaurantHandler(s)
	menu := handlers.NewMenuHandler(s)
	reservations := handlers.NewReservationHandler(s)
	reviews := handlers.NewReviewHandler(s)
	gallery := handlers.NewGalleryHandler(s)
	health := handlers.NewHealthHandler(s)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Bienvenue sur l'API Majestea",
				"version": "1.0.0",
			})
		})

		api.GET("/restaurant", restaurant.GetInfo)

		api.GET("/menu", menu.List)
		api.GET("/menu/:categoryId", menu.GetCategory)

		api.POST("/reservations", reservations.Create)
		api.GET("/reservations", reservations.List)
		api.GET("/reservations/:id", reservations.Get)
		api.PATCH("/reservations/:id/status", reservations.UpdateStatus)

		api.GET("/reviews", reviews.List)
		api.POST("/reviews", reviews.Create)

		api.GET("/gallery", gallery.List)
		api.GET("/gallery/:category", gallery.ListByCategory)

		api.GET("/health", health.Check)
	}
}
