package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypra/recipe-api/internal/application"
	"github.com/rizkypra/recipe-api/internal/testutil"
	"github.com/rizkypra/recipe-api/pkg/helpers"
)

func newUserRouter() (*gin.Engine, *application.UserService) {
	users := testutil.NewFakeUserRepo()
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	svc := application.NewUserService(users, jwt, nil, nil, nil, false)
	h := NewUserHandler(svc, nil, "localhost", false)

	r := gin.New()
	g := r.Group("/api")
	g.POST("/users", h.Register)
	g.POST("/login", h.Login)
	return r, svc
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newUserRouter()

	w := doJSON(t, r, http.MethodPost, "/api/users", `{
		"email": "Test2@Example.com",
		"password": "testpass123",
		"name": "Test"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	var u UserResponse
	if err := json.Unmarshal(env.Data, &u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if u.Email != "Test2@example.com" {
		t.Errorf("email = %q, want normalized domain", u.Email)
	}
	if u.IsStaff || u.IsSuperuser {
		t.Error("registered users must not be staff or superuser")
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	r, _ := newUserRouter()

	// password shorter than 8 characters
	w := doJSON(t, r, http.MethodPost, "/api/users", `{"email": "t@example.com", "password": "pw"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("short password status = %d, want 400", w.Code)
	}

	// not an email
	w = doJSON(t, r, http.MethodPost, "/api/users", `{"email": "not-an-email", "password": "testpass123"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad email status = %d, want 400", w.Code)
	}
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	r, _ := newUserRouter()

	body := `{"email": "test@example.com", "password": "testpass123", "name": "Test"}`
	if w := doJSON(t, r, http.MethodPost, "/api/users", body); w.Code != http.StatusCreated {
		t.Fatalf("first register status = %d (body %s)", w.Code, w.Body.String())
	}
	w := doJSON(t, r, http.MethodPost, "/api/users", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newUserRouter()

	if w := doJSON(t, r, http.MethodPost, "/api/users", `{"email": "test@example.com", "password": "testpass123"}`); w.Code != http.StatusCreated {
		t.Fatalf("register status = %d (body %s)", w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodPost, "/api/login", `{"email": "test@EXAMPLE.com", "password": "testpass123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	var access, refresh bool
	for _, c := range cookies {
		switch c.Name {
		case "access_token":
			access = c.Value != ""
		case "refresh_token":
			refresh = c.Value != ""
		}
	}
	if !access || !refresh {
		t.Fatalf("cookies = %+v, want access_token and refresh_token set", cookies)
	}
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	r, _ := newUserRouter()

	if w := doJSON(t, r, http.MethodPost, "/api/users", `{"email": "test@example.com", "password": "testpass123"}`); w.Code != http.StatusCreated {
		t.Fatalf("register status = %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/login", `{"email": "test@example.com", "password": "wrongpass1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (body %s)", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/login", `{"email": "nobody@example.com", "password": "testpass123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user status = %d, want 401", w.Code)
	}
}

func TestProfileEndpoints(t *testing.T) {
	users := testutil.NewFakeUserRepo()
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	svc := application.NewUserService(users, jwt, nil, nil, nil, false)
	h := NewUserHandler(svc, nil, "localhost", false)

	u, err := svc.Register(context.Background(), "test@example.com", "testpass123", "Test")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	r := gin.New()
	g := r.Group("/api")
	g.Use(asUser(u.ID))
	g.GET("/me", h.GetProfile)
	g.PATCH("/me", h.UpdateProfile)

	w := doJSON(t, r, http.MethodGet, "/api/me", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get profile status = %d (body %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	var got UserResponse
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Email != "test@example.com" || got.Name != "Test" {
		t.Fatalf("profile = %+v", got)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/me", `{"name": "Renamed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update profile status = %d (body %s)", w.Code, w.Body.String())
	}
	env = decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Renamed" {
		t.Fatalf("name = %q", got.Name)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	users := testutil.NewFakeUserRepo()
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	svc := application.NewUserService(users, jwt, nil, nil, nil, false)
	h := NewUserHandler(svc, nil, "localhost", false)

	r := gin.New()
	g := r.Group("/api")
	g.Use(asUser("00000000-0000-0000-0000-000000000999"))
	g.PATCH("/me", h.UpdateProfile)

	w := doJSON(t, r, http.MethodPatch, "/api/me", `{"name": "Ghost"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (body %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Message != "user not found" {
		t.Fatalf("message = %q, want a generic not-found message", env.Message)
	}
}
