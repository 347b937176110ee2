package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Dwieght/deer-sub000/internal/config"
	"github.com/Dwieght/deer-sub000/internal/repository"
	"github.com/Dwieght/deer-sub000/internal/service"
)

type Handlers struct {
	AuthService       service.AuthService
	SubmissionService service.SubmissionService
	ShopService       service.ShopService
	ContentService    service.ContentService
	ModerationService service.ModerationService
	Repo              *repository.Repository
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:       services.Auth,
		SubmissionService: services.Submission,
		ShopService:       services.Shop,
		ContentService:    services.Content,
		ModerationService: services.Moderation,
		Repo:              repo,
		Cfg:               cfg,
		Validate:          validator.New(),
	}
}

// decodeJSON reads the request body into dst; a malformed body is a
// client error, never an internal one.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body")
	}
	return nil
}

// parseInlineImage decodes an inline image submission, either a
// data:<type>;base64,<payload> URL or bare base64. The encoded size is
// checked against the upload cap before decoding.
func parseInlineImage(encoded string, maxEncoded int64) ([]byte, string, error) {
	if encoded == "" {
		return nil, "", errors.New("image data is required")
	}
	if int64(len(encoded)) > maxEncoded {
		return nil, "", fmt.Errorf("image data exceeds the %d byte limit", maxEncoded)
	}

	contentType := "image/jpeg"
	payload := encoded
	if strings.HasPrefix(encoded, "data:") {
		rest := strings.TrimPrefix(encoded, "data:")
		parts := strings.SplitN(rest, ";base64,", 2)
		if len(parts) != 2 {
			return nil, "", errors.New("invalid image data URL")
		}
		if parts[0] != "" {
			contentType = parts[0]
		}
		payload = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errors.New("invalid base64 image data")
	}

	return data, contentType, nil
}

// inAllowSet reports whether the uppercased value is in the allow-set.
// Values outside the set are rejected by callers, never coerced.
func inAllowSet(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
