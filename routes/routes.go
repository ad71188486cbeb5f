package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"clientpulse-backend/config"
	"clientpulse-backend/controllers"
	"clientpulse-backend/middleware"
	"clientpulse-backend/store"
	"clientpulse-backend/utils"
)

func SetupRouter(cfg config.Config, st store.Store, log *logrus.Logger) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.AccessLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	clientCtl := controllers.NewClientController(st)
	followUpCtl := controllers.NewFollowUpController(st)
	interactionCtl := controllers.NewInteractionController(st)

	api := r.Group("/api")
	{
		clients := api.Group("/clients")
		{
			clients.GET("", clientCtl.List)
			clients.GET("/:id", clientCtl.Get)
			clients.POST("", clientCtl.Create)
			clients.PUT("/:id", clientCtl.Update)
			clients.DELETE("/:id", clientCtl.Delete)
		}

		followUps := api.Group("/follow-ups")
		{
			followUps.GET("", followUpCtl.List)
			followUps.GET("/:id", followUpCtl.Get)
			followUps.POST("", followUpCtl.Create)
			followUps.PUT("/:id", followUpCtl.Update)
			followUps.DELETE("/:id", followUpCtl.Delete)
		}

		interactions := api.Group("/interactions")
		{
			interactions.GET("", interactionCtl.List)
			// by-client listing, not a get-by-id
			interactions.GET("/:clientId", interactionCtl.ListByClient)
			interactions.POST("", interactionCtl.Create)
			interactions.DELETE("/:id", interactionCtl.Delete)
		}
	}

	registerFallback(r, cfg.StaticDir, log)

	return r
}

// registerFallback serves built frontend assets for non-API routes, with an
// index.html fallback for client-side routing. Unknown /api routes always get
// a JSON 404.
func registerFallback(r *gin.Engine, dir string, log *logrus.Logger) {
	index := filepath.Join(dir, "index.html")
	serveAssets := false
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			serveAssets = true
		} else {
			log.Debugf("static dir %q not found, API only", dir)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			utils.RespondWithError(c, http.StatusNotFound, "Not found")
			return
		}
		if !serveAssets {
			c.Status(http.StatusNotFound)
			return
		}
		asset := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(asset); err == nil && !info.IsDir() {
			c.File(asset)
			return
		}
		c.File(index)
	})
}
