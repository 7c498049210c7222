package wire

import (
	"net/http"

	"menu-booking/internal/adaptor"
	"menu-booking/internal/data/repository"
	"menu-booking/internal/usecase"
	"menu-booking/pkg/database"
	"menu-booking/pkg/middleware"
	"menu-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router. The database handle
// is threaded through explicitly so the booking committer can be selected
// from its capabilities.
func Wiring(db database.PgxIface, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, db, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, db, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, db database.PgxIface, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.Route("/api/v1", func(r chi.Router) {
		wireCategory(r, handler.Category)
		wireSubcategory(r, handler.Subcategory)
		wireItem(r, handler.Item, handler.Addon)
		wireAddon(r, handler.Addon)
		wireBooking(r, handler.Booking)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			utils.ResponseInternalError(w, "database unreachable")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
