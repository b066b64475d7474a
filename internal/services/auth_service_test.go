package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/infoaidtech/backend/internal/auth"
	"github.com/infoaidtech/backend/internal/models"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	for _, other := range r.users {
		if other.Email == u.Email {
			return utils.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeUserRepo) Replace(ctx context.Context, u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return utils.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeDenylist struct {
	revoked map[string]bool
}

func (d *fakeDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d.revoked == nil {
		d.revoked = map[string]bool{}
	}
	d.revoked[jti] = true
	return nil
}

func (d *fakeDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return d.revoked[jti], nil
}

func newAuthService(users *fakeUserRepo) AuthService {
	return NewAuthService(users, auth.NewIssuer("test-secret", time.Hour), nil)
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	user, token, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret12", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("no token issued")
	}
	if user.Role != models.RoleUser {
		t.Fatalf("default role %q", user.Role)
	}
	if !user.IsActive {
		t.Fatal("new account not active")
	}
	if user.Password == "secret12" {
		t.Fatal("password stored in plaintext")
	}

	logged, token, err := svc.Login(context.Background(), "alice@example.com", "secret12")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || logged.ID != user.ID {
		t.Fatalf("login returned wrong user")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	if _, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret12", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "Other", "alice@example.com", "secret34", "")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("duplicate email: got %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	if _, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret12", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "secret12"); !utils.IsCode(err, utils.CodeUnauthorized) {
		t.Fatalf("unknown email: got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !utils.IsCode(err, utils.CodeUnauthorized) {
		t.Fatalf("wrong password: got %v", err)
	}

	for _, u := range users.users {
		u.IsActive = false
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "secret12"); !utils.IsCode(err, utils.CodeUnauthorized) {
		t.Fatalf("deactivated account: got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	user, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret12", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	err = svc.ChangePassword(context.Background(), user.ID, "wrong", "newpass12")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("wrong current password: got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "secret12", "newpass12"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "newpass12"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "secret12"); err == nil {
		t.Fatal("old password still accepted")
	}
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	alice, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret12", "")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "secret12", ""); err != nil {
		t.Fatalf("register bob: %v", err)
	}

	taken := "bob@example.com"
	_, err = svc.UpdateProfile(context.Background(), alice.ID, ProfileUpdate{Email: &taken})
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("taken email: got %v", err)
	}

	name := "Alice B"
	updated, err := svc.UpdateProfile(context.Background(), alice.ID, ProfileUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if updated.Name != "Alice B" || updated.Email != "alice@example.com" {
		t.Fatalf("partial update broken: %+v", updated)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	denylist := &fakeDenylist{}
	svc := NewAuthService(newFakeUserRepo(), auth.NewIssuer("test-secret", time.Hour), denylist)

	claims := &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   primitive.NewObjectID().Hex(),
		ID:        "jti-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if revoked, _ := denylist.IsRevoked(context.Background(), "jti-1"); !revoked {
		t.Fatal("jti not revoked")
	}
}

func TestDeleteUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	user, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret12", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), "not-hex"); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("bad id: got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), user.ID.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), user.ID.Hex()); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("second delete: got %v", err)
	}
}
