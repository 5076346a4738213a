package user

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/buscaeventos/backend/internal/apperr"
)

type stubService struct {
	users     []User
	user      *User
	created   *User
	login     *LoginResult
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	loginErr  error

	lastCreate *CreateInput
	deleteCnt  int
}

func (s *stubService) List(_ context.Context) ([]User, error) {
	return s.users, s.listErr
}

func (s *stubService) Get(_ context.Context, _ uuid.UUID) (*User, error) {
	return s.user, s.getErr
}

func (s *stubService) Create(_ context.Context, input CreateInput) (*User, error) {
	s.lastCreate = &input
	return s.created, s.createErr
}

func (s *stubService) Update(_ context.Context, _ uuid.UUID, _ UpdateInput) error {
	return s.updateErr
}

func (s *stubService) Delete(_ context.Context, _ uuid.UUID) error {
	s.deleteCnt++
	if s.deleteCnt > 1 {
		return apperr.NotFound("User not found.")
	}
	return s.deleteErr
}

func (s *stubService) Login(_ context.Context, _ LoginInput) (*LoginResult, error) {
	return s.login, s.loginErr
}

type stubStore struct {
	saved   []string
	removed []string
	saveErr error
}

func (s *stubStore) Save(_ context.Context, originalName string, _ io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	name := "stored-" + originalName
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *stubStore) Remove(_ context.Context, name string) error {
	s.removed = append(s.removed, name)
	return nil
}

func passthrough(next http.Handler) http.Handler {
	return next
}

func newTestRouter(svc *stubService, store *stubStore) *chi.Mux {
	r := chi.NewRouter()
	handler := NewHandler(svc, store)
	r.Route("/api/v1/users", func(r chi.Router) {
		handler.RegisterRoutes(r, passthrough, passthrough)
	})
	return r
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal(body.Bytes(), &envelope); err != nil {
		t.Fatalf("resposta não é JSON: %v", err)
	}
	return envelope
}

func TestListUsersStripsPassword(t *testing.T) {
	svc := &stubService{users: []User{{
		ID:       uuid.New(),
		Email:    "a@b.com",
		Username: "abc",
		CPF:      "111",
		ZipCode:  "22222",
		Password: "$argon2id$segredo",
	}}}
	router := newTestRouter(svc, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("resposta expõe o campo password: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "segredo") {
		t.Fatal("resposta expõe o hash da senha")
	}

	envelope := decodeEnvelope(t, rec.Body)
	if envelope["message"] != "Users found successfully." {
		t.Fatalf("message = %v", envelope["message"])
	}
}

func TestListUsersEmptyIsNotFound(t *testing.T) {
	svc := &stubService{listErr: apperr.NotFound("No users registered.")}
	router := newTestRouter(svc, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperado 404", rec.Code)
	}

	envelope := decodeEnvelope(t, rec.Body)
	if envelope["status"] != "fail" {
		t.Fatalf("status = %v, esperado fail", envelope["status"])
	}
	if envelope["timestamp"] == nil {
		t.Fatal("envelope de erro sem timestamp")
	}
}

func TestCreateUserJSON(t *testing.T) {
	created := &User{ID: uuid.New(), Email: "a@b.com", Username: "abc", CPF: "111", ZipCode: "22222", Password: "hash"}
	svc := &stubService{created: created}
	router := newTestRouter(svc, &stubStore{})

	payload := `{"email":"a@b.com","username":"abc","cpf":"111","zipCode":"22222","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado 201: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("resposta do cadastro expõe o campo password")
	}
	if svc.lastCreate == nil || svc.lastCreate.Password != "longenough" {
		t.Fatal("payload não chegou ao serviço")
	}
}

func TestCreateUserValidation(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubStore{})

	payload := `{"email":"a@b.com","username":"abc","cpf":"111","zipCode":"22222","password":"curta"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("violação não nomeia o campo: %s", rec.Body.String())
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := &stubService{createErr: apperr.DuplicateField("email")}
	router := newTestRouter(svc, &stubStore{})

	payload := `{"email":"a@b.com","username":"abc","cpf":"111","zipCode":"22222","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, esperado 409", rec.Code)
	}

	envelope := decodeEnvelope(t, rec.Body)
	if envelope["status"] != "fail" {
		t.Fatalf("status = %v, esperado fail", envelope["status"])
	}
	if envelope["message"] != "email already exists." {
		t.Fatalf("message = %v", envelope["message"])
	}
}

func TestCreateUserMultipartCleansOrphanUpload(t *testing.T) {
	svc := &stubService{createErr: apperr.DuplicateField("cpf")}
	store := &stubStore{}
	router := newTestRouter(svc, store)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	_ = writer.WriteField("email", "a@b.com")
	_ = writer.WriteField("username", "abc")
	_ = writer.WriteField("cpf", "111")
	_ = writer.WriteField("zipCode", "22222")
	_ = writer.WriteField("password", "longenough")
	part, _ := writer.CreateFormFile("profileImage", "me.png")
	_, _ = part.Write([]byte("png-bytes"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, esperado 409: %s", rec.Code, rec.Body.String())
	}
	if len(store.saved) != 1 {
		t.Fatalf("uploads salvos = %d, esperado 1", len(store.saved))
	}
	if len(store.removed) != 1 || store.removed[0] != store.saved[0] {
		t.Fatalf("upload órfão não foi removido: %v", store.removed)
	}
}

func TestGetUserByIDLoadsFromExistenceMiddleware(t *testing.T) {
	target := &User{ID: uuid.New(), Email: "a@b.com", Username: "abc"}
	svc := &stubService{user: target}
	router := newTestRouter(svc, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/"+target.ID.String(), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), target.ID.String()) {
		t.Fatal("resposta não contém o usuário carregado")
	}
}

func TestGetUserByIDInvalidID(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/nao-é-uuid", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", rec.Code)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := &stubService{getErr: apperr.NotFound("User not found.")}
	router := newTestRouter(svc, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/"+uuid.NewString(), nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperado 404", rec.Code)
	}
}

func TestDeleteUserTwice(t *testing.T) {
	target := &User{ID: uuid.New()}
	svc := &stubService{user: target}
	router := newTestRouter(svc, &stubStore{})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+target.ID.String(), nil))
	if first.Code != http.StatusOK {
		t.Fatalf("primeira remoção: status = %d, esperado 200", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+target.ID.String(), nil))
	if second.Code != http.StatusNotFound {
		t.Fatalf("segunda remoção: status = %d, esperado 404", second.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := &stubService{loginErr: apperr.Authentication("Invalid username or password.")}
	router := newTestRouter(svc, &stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login",
		strings.NewReader(`{"username":"abc","password":"errada123"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", rec.Code)
	}

	envelope := decodeEnvelope(t, rec.Body)
	if envelope["status"] != "fail" {
		t.Fatalf("status = %v, esperado fail", envelope["status"])
	}
	if envelope["message"] != "Invalid username or password." {
		t.Fatalf("message = %v", envelope["message"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	router := newTestRouter(&stubService{}, &stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(`{"username":"abc"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", rec.Code)
	}
}

func TestLoginSuccessReturnsTokenAndID(t *testing.T) {
	id := uuid.New()
	svc := &stubService{login: &LoginResult{Token: "assinado", ID: id}}
	router := newTestRouter(svc, &stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login",
		strings.NewReader(`{"username":"abc","password":"longenough"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}

	envelope := decodeEnvelope(t, rec.Body)
	data, _ := envelope["data"].(map[string]any)
	if data["token"] != "assinado" {
		t.Fatalf("token = %v", data["token"])
	}
	if data["id"] != id.String() {
		t.Fatalf("id = %v", data["id"])
	}
}
