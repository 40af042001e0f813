package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// idFromURL extracts and parses the named URL parameter as a domain ID. A
// malformed ID is a validation error, which the boundary maps to 400 rather
// than 404.
func idFromURL(r *http.Request, name string) (domain.ID, error) {
	id, err := domain.ParseID(chi.URLParam(r, name))
	if err != nil {
		return "", domain.NewValidationError(name, "must be a 24-character hex ID", err)
	}
	return id, nil
}
