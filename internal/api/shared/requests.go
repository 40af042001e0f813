package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/mesto-api/internal/domain"
)

// Validate is the shared validator instance for request payloads. The
// imageurl tag checks URL-shaped fields (avatars, card links) against the
// domain's link pattern.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only errors on an empty tag name.
	_ = v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return domain.ValidLink(fl.Field().String())
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
