package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS permits cross-origin requests from any origin. The frontend is served
// separately and the API carries no credentials.
var CORS = cors.Handler(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Accept", "Content-Type"},
	MaxAge:         300,
})
