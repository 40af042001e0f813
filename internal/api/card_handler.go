package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/service"
)

// CardHandler handles the card endpoints. All of them sit behind the auth
// middleware; ownership checks for mutations live in the service layer.
type CardHandler struct {
	cardService service.CardService
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		cardService: cardService,
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /cards.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.ListCards(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataEnvelope{Data: cards})
}

// CreateCard handles POST /cards.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	callerID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized)
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, domain.NewValidationError("body", "must be valid JSON", domain.ErrValidation))
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	card, err := h.cardService.CreateCard(r.Context(), callerID, req.Name, req.Link)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, DataEnvelope{Data: card})
}

// DeleteCard handles DELETE /cards/{cardId}.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	callerID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized)
		return
	}

	cardID, err := idFromURL(r, "cardId")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	card, err := h.cardService.DeleteCard(r.Context(), callerID, cardID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataEnvelope{Data: card})
}

// LikeCard handles PUT /cards/{cardId}/likes.
func (h *CardHandler) LikeCard(w http.ResponseWriter, r *http.Request) {
	h.mutateLikes(w, r, h.cardService.LikeCard)
}

// UnlikeCard handles DELETE /cards/{cardId}/likes.
func (h *CardHandler) UnlikeCard(w http.ResponseWriter, r *http.Request) {
	h.mutateLikes(w, r, h.cardService.UnlikeCard)
}

// mutateLikes is the shared body of the like and unlike endpoints, which
// differ only in the service call they make.
func (h *CardHandler) mutateLikes(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, callerID, cardID domain.ID) (*domain.Card, error),
) {
	callerID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized)
		return
	}

	cardID, err := idFromURL(r, "cardId")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	card, err := op(r.Context(), callerID, cardID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataEnvelope{Data: card})
}
