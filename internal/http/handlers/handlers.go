package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/planventura/eventos-api/internal/http/middleware"
	"github.com/planventura/eventos-api/internal/ratelimit"
	"github.com/planventura/eventos-api/internal/service"
	"github.com/planventura/eventos-api/internal/storage"
)

// Handlers holds every HTTP endpoint of the API. Construction wires the
// services in once; each file in this package covers one resource.
type Handlers struct {
	auth         service.AuthService
	users        service.UserService
	events       service.EventService
	reservations service.ReservationService
	catalog      service.CatalogService
	guard        *middleware.SessionGuard
	blobs        storage.BlobStore
	limiter      *ratelimit.Limiter
	sessionTTL   time.Duration
}

func New(
	auth service.AuthService,
	users service.UserService,
	events service.EventService,
	reservations service.ReservationService,
	catalog service.CatalogService,
	guard *middleware.SessionGuard,
	blobs storage.BlobStore,
	limiter *ratelimit.Limiter,
	sessionTTL time.Duration,
) *Handlers {
	return &Handlers{
		auth:         auth,
		users:        users,
		events:       events,
		reservations: reservations,
		catalog:      catalog,
		guard:        guard,
		blobs:        blobs,
		limiter:      limiter,
		sessionTTL:   sessionTTL,
	}
}

// Routes mounts every endpoint. Credential endpoints sit behind the rate
// limiter; mutation endpoints sit behind the session guard for their kind.
func (h *Handlers) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.limiter.Middleware)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/registerorga", h.RegisterOrganizer)
		r.Post("/loginorga", h.LoginOrganizer)
	})
	r.Post("/logout", h.Logout)
	r.Get("/auth/check", h.Check)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Get("/{id}", h.GetEvent)
		r.Group(func(r chi.Router) {
			r.Use(h.guard.RequireOrganizer)
			r.Post("/", h.CreateEvent)
			r.Put("/{id}", h.UpdateEvent)
			r.Delete("/{id}", h.DeleteEvent)
		})
	})

	r.With(h.guard.RequireOrganizer).Get("/organizer-events", h.ListOrganizerEvents)

	r.Get("/organizers", h.ListOrganizers)
	r.Get("/locations", h.ListLocations)

	r.Route("/users", func(r chi.Router) {
		r.Use(h.guard.RequireUser)
		r.Get("/me", h.Me)
		r.Get("/{id}", h.GetUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Use(h.guard.RequireUser)
		r.Get("/", h.ListReservations)
		r.Post("/", h.CreateReservation)
		r.Delete("/{eventId}", h.CancelReservation)
	})
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
