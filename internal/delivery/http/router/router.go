package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"hrbridge/internal/config"
	"hrbridge/internal/delivery/http/handler"
	"hrbridge/internal/delivery/http/middleware"
	"hrbridge/internal/usecase"
)

type Router struct {
	app             *fiber.App
	config          *config.Config
	session         usecase.SessionUsecase
	healthHandler   *handler.HealthHandler
	sessionHandler  *handler.SessionHandler
	documentHandler *handler.DocumentHandler
	meetingHandler  *handler.MeetingHandler
	callbackHandler *handler.CallbackHandler
	logHandler      *handler.LogHandler
}

func NewRouter(
	cfg *config.Config,
	session usecase.SessionUsecase,
	healthHandler *handler.HealthHandler,
	sessionHandler *handler.SessionHandler,
	documentHandler *handler.DocumentHandler,
	meetingHandler *handler.MeetingHandler,
	callbackHandler *handler.CallbackHandler,
	logHandler *handler.LogHandler,
) *Router {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: customErrorHandler,
	})

	return &Router{
		app:             app,
		config:          cfg,
		session:         session,
		healthHandler:   healthHandler,
		sessionHandler:  sessionHandler,
		documentHandler: documentHandler,
		meetingHandler:  meetingHandler,
		callbackHandler: callbackHandler,
		logHandler:      logHandler,
	}
}

func (r *Router) Setup() *fiber.App {
	// Middleware
	r.app.Use(recover.New())
	r.app.Use(requestid.New())
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	if r.config.IsDevelopment() {
		r.app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	// Health check route
	r.app.Get("/health", r.healthHandler.Health)

	// External auth callback (must be at root level for redirect)
	r.app.Get("/auth/callback", r.callbackHandler.Complete)

	guard := middleware.SessionGuard(r.session)

	api := r.app.Group("/api")
	{
		// Session routes; open so login/registration can happen
		session := api.Group("/session")
		{
			session.Get("", r.sessionHandler.Snapshot)
			session.Post("/login", r.sessionHandler.Login)
			session.Post("/register", r.sessionHandler.Register)
			session.Get("/refresh", r.sessionHandler.Refresh)
			session.Post("/logout", r.sessionHandler.Logout)
		}

		// Document routes; guarded
		documents := api.Group("/documents", guard)
		{
			documents.Get("", r.documentHandler.List)
			documents.Post("", r.documentHandler.Upload)
			documents.Get("/zoho/status", r.documentHandler.ZohoStatus)
			documents.Post("/zoho/disconnect", r.documentHandler.DisconnectZoho)
			documents.Get("/zoho/connect", r.documentHandler.ZohoConnect)
			documents.Get("/:id", r.documentHandler.Get)
			documents.Get("/:id/status", r.documentHandler.RefreshStatus)
			documents.Post("/:id/reset", r.documentHandler.Reset)
			documents.Post("/:id/sign", r.documentHandler.CreateSigningRequest)
			documents.Get("/:id/sign/:email", r.documentHandler.SigningURL)
			documents.Get("/:id/download", r.documentHandler.Download)
		}

		// Meeting routes; guarded
		meetings := api.Group("/meetings", guard)
		{
			meetings.Get("", r.meetingHandler.List)
			meetings.Post("", r.meetingHandler.Create)
			meetings.Delete("/:id", r.meetingHandler.Delete)
			meetings.Get("/zoom/status", r.meetingHandler.ZoomStatus)
			meetings.Get("/zoom/connect", r.meetingHandler.ZoomConnect)
			meetings.Post("/video-signature", r.meetingHandler.VideoSignature)
		}

		// Audit log routes; guarded
		logs := api.Group("/logs", guard)
		{
			logs.Get("", r.logHandler.Recent)
		}
	}

	return r.app
}

func (r *Router) GetApp() *fiber.App {
	return r.app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
		"error": fiber.Map{
			"code":    code,
			"message": err.Error(),
		},
	})
}
