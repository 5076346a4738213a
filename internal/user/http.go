package user

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/buscaeventos/backend/internal/apperr"
	"github.com/buscaeventos/backend/internal/httpenv"
	"github.com/buscaeventos/backend/internal/schema"
	"github.com/buscaeventos/backend/internal/storage"
)

// maxUploadBytes limita o multipart do cadastro (imagem de perfil inclusa).
const maxUploadBytes = 10 << 20

// ServiceProvider é a superfície do serviço consumida pelos handlers.
type ServiceProvider interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, input CreateInput) (*User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}

// Handler expõe os endpoints REST de usuários.
type Handler struct {
	service ServiceProvider
	uploads storage.Store
}

// NewHandler cria o handler com serviço e armazenamento de uploads.
func NewHandler(service ServiceProvider, uploads storage.Store) *Handler {
	return &Handler{service: service, uploads: uploads}
}

// RegisterRoutes registra as rotas do módulo, espelhando o encadeamento
// original: validação → autenticação → existência → handler.
func (h *Handler) RegisterRoutes(r chi.Router, authMW, limitMW func(http.Handler) http.Handler) {
	r.With(authMW).Get("/", h.list)
	r.With(authMW, RequireUser(h.service)).Get("/{id}", h.getByID)
	r.With(limitMW).Post("/", h.create)
	r.With(authMW, RequireUser(h.service)).Put("/{id}", h.update)
	r.With(authMW, RequireUser(h.service)).Delete("/{id}", h.delete)
	r.With(limitMW, schema.DecodeValid[LoginInput]()).Post("/login", h.login)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusOK, users, "Users found successfully.")
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	httpenv.WriteData(w, http.StatusOK, FromContext(r.Context()), "User retrieved successfully.")
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	input, upload, err := h.decodeCreate(r)
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	if err := schema.Validate(input); err != nil {
		httpenv.WriteError(w, err)
		return
	}

	if upload != nil {
		stored, err := h.saveUpload(r, upload)
		if err != nil {
			httpenv.WriteError(w, err)
			return
		}
		input.ProfileImage = &stored
	}

	created, err := h.service.Create(r.Context(), *input)
	if err != nil {
		h.discardUpload(r.Context(), input.ProfileImage)
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusCreated, created, "User created successfully.")
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	input, upload, err := h.decodeUpdate(r)
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	if err := schema.Validate(input); err != nil {
		httpenv.WriteError(w, err)
		return
	}

	if upload != nil {
		stored, err := h.saveUpload(r, upload)
		if err != nil {
			httpenv.WriteError(w, err)
			return
		}
		input.ProfileImage = &stored
	}

	target := FromContext(r.Context())
	if err := h.service.Update(r.Context(), target.ID, *input); err != nil {
		h.discardUpload(r.Context(), input.ProfileImage)
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusOK, nil, "User successfully updated.")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	target := FromContext(r.Context())
	if err := h.service.Delete(r.Context(), target.ID); err != nil {
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusOK, nil, "User successfully deleted.")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	payload := schema.Payload[LoginInput](r.Context())

	result, err := h.service.Login(r.Context(), *payload)
	if err != nil {
		httpenv.WriteError(w, err)
		return
	}

	httpenv.WriteData(w, http.StatusOK, result, "Login successful.")
}

type uploadedFile struct {
	field string
}

// decodeCreate aceita multipart (app móvel) ou JSON puro.
func (h *Handler) decodeCreate(r *http.Request) (*CreateInput, *uploadedFile, error) {
	if !isMultipart(r) {
		var input CreateInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return nil, nil, apperr.Validation("Invalid request body.")
		}
		input.ProfileImage = nil
		return &input, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, apperr.Validation("Invalid multipart body.")
	}

	input := CreateInput{
		Email:    r.FormValue("email"),
		Username: r.FormValue("username"),
		CPF:      r.FormValue("cpf"),
		ZipCode:  r.FormValue("zipCode"),
		Password: r.FormValue("password"),
	}

	return &input, hasFile(r, "profileImage"), nil
}

func (h *Handler) decodeUpdate(r *http.Request) (*UpdateInput, *uploadedFile, error) {
	if !isMultipart(r) {
		var input UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return nil, nil, apperr.Validation("Invalid request body.")
		}
		input.ProfileImage = nil
		return &input, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, apperr.Validation("Invalid multipart body.")
	}

	input := UpdateInput{
		Email:    formValue(r, "email"),
		Username: formValue(r, "username"),
		CPF:      formValue(r, "cpf"),
		ZipCode:  formValue(r, "zipCode"),
		Password: formValue(r, "password"),
	}

	return &input, hasFile(r, "profileImage"), nil
}

// saveUpload persiste o arquivo enviado e devolve o nome armazenado.
func (h *Handler) saveUpload(r *http.Request, upload *uploadedFile) (string, error) {
	file, header, err := r.FormFile(upload.field)
	if err != nil {
		return "", apperr.Validation("Invalid profile image upload.")
	}
	defer file.Close()

	return h.uploads.Save(r.Context(), header.Filename, file)
}

// discardUpload apaga upload órfão depois de uma gravação que falhou.
// Falha na limpeza é apenas logada.
func (h *Handler) discardUpload(ctx context.Context, name *string) {
	if name == nil || h.uploads == nil {
		return
	}
	if err := h.uploads.Remove(ctx, *name); err != nil {
		log.Warn().Err(err).Str("file", *name).Msg("falha ao remover upload órfão")
	}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if values, ok := r.MultipartForm.Value[key]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}

func hasFile(r *http.Request, field string) *uploadedFile {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil
	}
	return &uploadedFile{field: field}
}
