package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/msnglobalit/attendance-backend-go/internal/handler/http/middleware"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	intakeHandler IntakeHandler,
	reportHandler ReportHandler,
	rosterHandler RosterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-msnglobalit"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Mark)
				r.Get("/", attendanceHandler.ListByDate)
				r.Get("/all", attendanceHandler.ListAll)
				r.Delete("/", attendanceHandler.Clear)
				r.Get("/export", attendanceHandler.Export)
			})

			r.Route("/intake", func(r chi.Router) {
				r.Post("/process", intakeHandler.Process)
				r.Get("/status", intakeHandler.Status)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", reportHandler.Daily)
				r.Get("/monthly", reportHandler.Monthly)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", rosterHandler.List)
				r.Post("/upload", rosterHandler.Upload)
			})
		})
	})
	return r
}
