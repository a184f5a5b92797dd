package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	h "pokedex/internal/http/handlers"
	"pokedex/internal/http/middleware"
	"pokedex/internal/logger"
)

// NewRouter wires the facade surface. Handlers carry their own service
// dependencies; the router only owns middleware and the route table.
func NewRouter(log *logger.Logger, pokemons *h.PokemonHandler, trainers *h.TrainerHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		v1 := api.Group("/v1")

		pk := v1.Group("/pokemons")
		pk.GET("", pokemons.List)
		pk.GET("/:id", pokemons.GetByID)
		pk.POST("", pokemons.Create)
		pk.PUT("/:id", pokemons.Update)
		pk.PATCH("/:id", pokemons.Patch)
		pk.DELETE("/:id", pokemons.Delete)

		tr := v1.Group("/trainers")
		tr.GET("", trainers.List)
		tr.GET("/:id", trainers.GetByID)
		tr.POST("", trainers.BulkCreate)
		tr.PUT("/:id", trainers.Update)
		tr.DELETE("/:id", trainers.Delete)
	}

	return r
}
