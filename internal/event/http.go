package event

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/buscaeventos/backend/internal/apperr"
	"github.com/buscaeventos/backend/internal/httpenv"
	"github.com/buscaeventos/backend/internal/schema"
)

// ServiceProvider é a superfície do serviço consumida pelos handlers.
type ServiceProvider interface {
	List(ctx context.Context) ([]Event, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Event, error)
	Create(ctx context.Context, input CreateInput) (*Event, error)
	Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Handler expõe os endpoints REST de eventos.
type Handler struct {
	service ServiceProvider
}

// NewHandler cria o handler de eventos.
func NewHandler(service ServiceProvider) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registra as rotas do módulo; todas exigem bearer token.
func (h *Handler) RegisterRoutes(r chi.Router, authMW func(http.Handler) http.Handler) {
	r.Use(authMW)
	r.Get("/", h.list)
	r.Get("/{id}", h.getByID)
	r.With(schema.DecodeValid[CreateInput]()).Post("/", h.create)
	r.With(schema.DecodeValid[UpdateInput]()).Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusOK, events, "Events retrieved successfully.")
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	evt, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusOK, evt, "Event retrieved successfully.")
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	payload := schema.Payload[CreateInput](r.Context())

	evt, err := h.service.Create(r.Context(), *payload)
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusCreated, evt, "Event created successfully.")
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	payload := schema.Payload[UpdateInput](r.Context())

	evt, err := h.service.Update(r.Context(), id, *payload)
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusOK, evt, "Event updated successfully.")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusOK, nil, "Event deleted successfully.")
}

func pathID(r *http.Request) (primitive.ObjectID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	if raw == "" {
		return primitive.NilObjectID, apperr.Validation("Event ID is required.")
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Event ID is invalid.")
	}
	return id, nil
}
