package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/auth"
	"github.com/infoaidtech/backend/internal/cache"
	"github.com/infoaidtech/backend/internal/models"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserRepo struct {
	user *models.User
}

func (r *stubUserRepo) Create(ctx context.Context, u *models.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if r.user != nil && r.user.ID == id {
		cp := *r.user
		return &cp, nil
	}
	return nil, utils.ErrNotFound
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, utils.ErrNotFound
}

func (r *stubUserRepo) Replace(ctx context.Context, u *models.User) error { return nil }
func (r *stubUserRepo) List(ctx context.Context) ([]models.User, error)  { return nil, nil }
func (r *stubUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

type stubDenylist struct {
	revoked map[string]bool
	err     error
}

func (d *stubDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d.revoked == nil {
		d.revoked = map[string]bool{}
	}
	d.revoked[jti] = true
	return nil
}

func (d *stubDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.revoked[jti], nil
}

func authTestRouter(t *testing.T, issuer *auth.Issuer, users *stubUserRepo, denylist *stubDenylist, admin bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Convert a nil *stubDenylist into a nil interface so the middleware's
	// nil check sees "no denylist" rather than a typed-nil interface.
	var dl cache.Denylist
	if denylist != nil {
		dl = denylist
	}
	group := r.Group("/", RequireAuth(issuer, users, dl))
	if admin {
		group.Use(RequireAdmin())
	}
	group.GET("/secret", func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func activeUser() *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "alice@example.com",
		Role:     models.RoleUser,
		IsActive: true,
	}
}

func TestRequireAuthHappyPath(t *testing.T) {
	user := activeUser()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	r := authTestRouter(t, issuer, &stubUserRepo{user: user}, nil, false)

	token, err := issuer.Issue(user.ID.Hex())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if w := get(r, token); w.Code != http.StatusOK {
		t.Fatalf("code %d, body %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthRejections(t *testing.T) {
	user := activeUser()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	r := authTestRouter(t, issuer, &stubUserRepo{user: user}, nil, false)

	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: code %d", w.Code)
	}
	if w := get(r, "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: code %d", w.Code)
	}

	expired := &auth.Issuer{Secret: []byte("test-secret"), TTL: -time.Minute}
	tok, _ := expired.Issue(user.ID.Hex())
	if w := get(r, tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: code %d", w.Code)
	}

	// valid token, but the subject no longer exists
	tok, _ = issuer.Issue(primitive.NewObjectID().Hex())
	if w := get(r, tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown subject: code %d", w.Code)
	}

	user.IsActive = false
	tok, _ = issuer.Issue(user.ID.Hex())
	if w := get(r, tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("deactivated user: code %d", w.Code)
	}
}

func TestRequireAuthRevokedToken(t *testing.T) {
	user := activeUser()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	denylist := &stubDenylist{}
	r := authTestRouter(t, issuer, &stubUserRepo{user: user}, denylist, false)

	token, err := issuer.Issue(user.ID.Hex())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := denylist.Revoke(context.Background(), claims.ID, time.Hour); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if w := get(r, token); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token: code %d", w.Code)
	}
}

func TestRequireAuthDenylistUnavailable(t *testing.T) {
	user := activeUser()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	denylist := &stubDenylist{err: errors.New("redis: connection refused")}
	r := authTestRouter(t, issuer, &stubUserRepo{user: user}, denylist, false)

	token, err := issuer.Issue(user.ID.Hex())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// An unreachable denylist fails open rather than locking callers out.
	if w := get(r, token); w.Code != http.StatusOK {
		t.Fatalf("code %d, body %s", w.Code, w.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	user := activeUser()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	r := authTestRouter(t, issuer, &stubUserRepo{user: user}, nil, true)

	token, err := issuer.Issue(user.ID.Hex())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if w := get(r, token); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin: code %d", w.Code)
	}

	user.Role = models.RoleAdmin
	if w := get(r, token); w.Code != http.StatusOK {
		t.Fatalf("admin: code %d, body %s", w.Code, w.Body.String())
	}
}
