package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/userhub-io/userhub/internal/platform/constants"
	"github.com/userhub-io/userhub/internal/platform/respond"
)

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /login : Issues a short-lived admin token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)

	return router
}

// login handles POST /api/v1/login requests.
//
// The request body is ignored; there are no credentials to check in this
// issuance path.
//
// # Returns
//   - Writes HTTP 200 OK with a signed token.
//   - Writes HTTP 500 if signing fails.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	token, err := handler.authService.Login(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, map[string]string{
		constants.FieldToken: token,
	})
}
