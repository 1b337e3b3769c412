package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"editorial-cms/internal/importer"
	"editorial-cms/internal/mailer"
	articlesvc "editorial-cms/internal/service/article"
	categorysvc "editorial-cms/internal/service/category"
	networksvc "editorial-cms/internal/service/network"
	notificationsvc "editorial-cms/internal/service/notification"
)

// Deps groups the services the router dispatches to.
type Deps struct {
	Articles      *articlesvc.Service
	Categories    *categorysvc.Service
	Networks      *networksvc.Service
	Notifications *notificationsvc.Service
	Importer      *importer.Importer
	Mailer        *mailer.Mailer

	PublicBaseURL    string
	NotifyRecipients []string
	CORSOrigins      []string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with all API routes wired.
func New(addr string, logger *log.Logger, deps Deps) *Server {
	router := buildRouter(logger, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}
