package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	router.GET("/health", healthHandler)

	api := router.Group("/api")

	articles := api.Group("/articles")
	articles.GET("", listArticles(deps))
	articles.GET("/:id", getArticle(deps))
	articles.POST("", createArticle(deps))
	articles.PUT("/:id", updateArticle(deps))
	articles.DELETE("/:id", deleteArticle(deps))
	articles.PATCH("/:id/status", patchArticleStatus(deps))
	articles.POST("/:id/notify", notifyArticle(deps))

	categories := api.Group("/categories")
	categories.GET("", listCategories(deps))
	categories.GET("/:id", getCategory(deps))
	categories.POST("", createCategory(deps))
	categories.PUT("/:id", updateCategory(deps))
	categories.DELETE("/:id", deleteCategory(deps))

	networks := api.Group("/networks")
	networks.GET("", listNetworks(deps))
	networks.GET("/:id", getNetwork(deps))
	networks.POST("", createNetwork(deps))
	networks.PUT("/:id", updateNetwork(deps))
	networks.DELETE("/:id", deleteNetwork(deps))

	api.GET("/notifications", listNotifications(deps))
	api.POST("/import", importArticles(deps))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}
