package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fluxo_propostas/docs"
	"fluxo_propostas/internal/adapter/http/handlers"
	"fluxo_propostas/internal/app"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Import     *handlers.ImportHandler
	Proposal   *handlers.ProposalHandler
	Simulation *handlers.SimulationHandler
	Freight    *handlers.FreightHandler
}

func NewHandlers(c *app.Container) Handlers {
	return Handlers{
		Import:     handlers.NewImportHandler(c.Importer),
		Proposal:   handlers.NewProposalHandler(c.ProposalUC, c.Lifecycle),
		Simulation: handlers.NewSimulationHandler(c.Simulations),
		Freight:    handlers.NewFreightHandler(c.Freight, c.Shipments),
	}
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addImportRoutes(v1, h.Import)
	addProposalRoutes(v1, h)
	return router
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, c *app.Container) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(c.Config.HTTP.Port),
		Handler:           NewRouter(NewHandlers(c)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("[http] listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "[http] recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.InfoContext(c.Request.Context(), "[http] request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
