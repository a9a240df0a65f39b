package api

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/nileshdj/inkpost/internal/api/handlers"
	"github.com/nileshdj/inkpost/internal/api/middleware"
	"github.com/nileshdj/inkpost/internal/utils"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Content *handlers.ContentHandler
}

// SetupRouter mounts the API routes and wraps them in the middleware stack.
func SetupRouter(h Handlers, corsOptions cors.Options, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	mux.HandleFunc("POST /api/content/{user_id}", h.Content.Create)
	mux.HandleFunc("GET /api/content/{id}", h.Content.Get)
	mux.HandleFunc("PUT /api/content/{id}", h.Content.Update)
	mux.HandleFunc("DELETE /api/content/{id}", h.Content.Delete)

	// The methodless pattern matches any request the routes above do not,
	// so method mismatches land here as 404 rather than 405.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusNotFound, "404 Not Found")
	})

	var handler http.Handler = mux
	handler = cors.New(corsOptions).Handler(handler)
	handler = middleware.Logger(log)(handler)
	handler = middleware.RequestID(handler)
	return handler
}
