package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	payrollHandler PayrollHandler,
	vacationHandler VacationHandler,
	settlementHandler SettlementHandler,
	indicatorsHandler IndicatorsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-core"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/preview", payrollHandler.Preview)
		})

		r.Route("/indicators", func(r chi.Router) {
			r.Put("/", indicatorsHandler.Upsert)
			r.Get("/{year}/{month}", indicatorsHandler.GetByPeriod)
		})

		r.Route("/vacations/{employeeID}", func(r chi.Router) {
			r.Post("/sync", vacationHandler.Synchronize)
			r.Get("/summary", vacationHandler.GetSummary)
			r.Post("/allocations", vacationHandler.Allocate)
		})

		r.Route("/settlements", func(r chi.Router) {
			r.Get("/causes", settlementHandler.ListCauses)
			r.Post("/preview", settlementHandler.Preview)
			r.Post("/", settlementHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/versions", settlementHandler.ListVersions)
				r.Post("/recalculate", settlementHandler.Recalculate)
			})
		})
	})
	return r
}
