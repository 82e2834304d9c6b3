package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions carries what both routers share
type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func newBaseRouter(opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	return r
}

// NewAPIRouter mounts the employees API
func NewAPIRouter(opts RouterOptions, employeeHandler EmployeeHandler) *chi.Mux {
	r := newBaseRouter(opts)

	r.Route("/api/employees", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Get("/", employeeHandler.ListEmployees)
		r.Post("/", employeeHandler.CreateEmployee)
		r.Route("/{empId}", func(r chi.Router) {
			r.Put("/", employeeHandler.UpdateEmployee)
			r.Delete("/", employeeHandler.DeleteEmployee)
			r.Put("/attendance", employeeHandler.SetDayStatus)
		})
	})

	return r
}

// NewSheetRouter mounts the attendance sheet endpoints
func NewSheetRouter(opts RouterOptions, sheetHandler SheetHandler, reportHandler ReportHandler) *chi.Mux {
	r := newBaseRouter(opts)

	r.Route("/sheet", func(r chi.Router) {
		r.Get("/", sheetHandler.GetSheet)
		r.Put("/period", sheetHandler.SelectPeriod)
		r.Post("/reload", sheetHandler.Reload)
		r.Post("/save", sheetHandler.Save)

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", sheetHandler.AddEmployee)
			r.Route("/{empId}", func(r chi.Router) {
				r.Put("/", sheetHandler.RenameEmployee)
				r.Delete("/", sheetHandler.RemoveEmployee)
				r.Put("/days/{day}", sheetHandler.UpdateDayStatus)
			})
		})

		r.Get("/message", sheetHandler.GetMessage)
		r.Get("/events", sheetHandler.Stream)

		r.Get("/export.csv", reportHandler.ExportCSV)
		r.Get("/export.xlsx", reportHandler.ExportXLSX)
	})

	return r
}
