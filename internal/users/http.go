package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/userhub-io/userhub/internal/platform/middleware"
	requestutil "github.com/userhub-io/userhub/internal/platform/request"
	"github.com/userhub-io/userhub/internal/platform/respond"
	"github.com/userhub-io/userhub/internal/platform/sec"
	"github.com/userhub-io/userhub/pkg/listquery"
)

type Handler struct {
	service  *Service
	verifier middleware.TokenVerifier
}

func NewHandler(service *Service, verifier middleware.TokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Routes returns a [chi.Router] with the user CRUD endpoints.
//
// Reads are public; mutations require a verified admin token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listUsers)
	router.Get("/{id}", handler.getUser)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.Authenticate(handler.verifier))
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createUser)
		adminRoute.Put("/{id}", handler.updateUser)
		adminRoute.Delete("/{id}", handler.deleteUser)
	})

	return router
}

// userRequest represents the JSON payload for create and update.
type userRequest struct {
	Username string `json:"username"`
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	query := listquery.FromRequest(request)

	users, err := handler.service.List(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")

	user, err := handler.service.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input userRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Create(request.Context(), input.Username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")

	var input userRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.Update(request.Context(), userID, input.Username); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")

	user, err := handler.service.Delete(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
