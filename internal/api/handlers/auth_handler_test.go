package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/auth"
	"github.com/infoaidtech/backend/internal/models"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubAuthService struct {
	user *models.User
	err  error
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string, role models.UserRole) (*models.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, "tok-123", nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, "tok-123", nil
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd services.ProfileUpdate) (*models.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	return s.err
}

func (s *stubAuthService) Logout(ctx context.Context, claims *auth.Claims) error { return s.err }

func (s *stubAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.User{*s.user}, nil
}

func (s *stubAuthService) DeleteUser(ctx context.Context, id string) error { return s.err }

func authRouter(svc services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterResponds201(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Name: "Alice", Email: "alice@example.com"}
	r := authRouter(&stubAuthService{user: user})

	w := postJSON(r, "/register", `{"name":"Alice","email":"alice@example.com","password":"secret12"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("code %d, body %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env["message"] != "User registered successfully" {
		t.Fatalf("message %v", env["message"])
	}
	body, ok := env["body"].(map[string]any)
	if !ok || body["token"] != "tok-123" {
		t.Fatalf("body %v", env["body"])
	}
}

func TestRegisterValidation(t *testing.T) {
	r := authRouter(&stubAuthService{})

	// short password
	w := postJSON(r, "/register", `{"name":"Alice","email":"alice@example.com","password":"123"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password: code %d", w.Code)
	}
	// malformed email
	w = postJSON(r, "/register", `{"name":"Alice","email":"nope","password":"secret12"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad email: code %d", w.Code)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	r := authRouter(&stubAuthService{
		err: utils.E(utils.CodeUnauthorized, "AuthService.Login", "invalid email or password", nil),
	})

	w := postJSON(r, "/login", `{"email":"alice@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("code %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env["message"] != "invalid email or password" {
		t.Fatalf("message %v", env["message"])
	}
}

func TestPasswordNeverSerialized(t *testing.T) {
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "$2a$10$hash",
	}
	r := authRouter(&stubAuthService{user: user})

	w := postJSON(r, "/login", `{"email":"alice@example.com","password":"secret12"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "$2a$10$hash") {
		t.Fatal("password hash leaked into the response")
	}
}
