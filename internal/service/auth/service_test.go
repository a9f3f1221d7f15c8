package auth

import (
	"testing"

	"gather_server/internal/dto/request"
	"gather_server/internal/service/servicetest"
	"gather_server/pkg/errorx"
	"gather_server/pkg/util/jwt"
)

func newTestService(t *testing.T) (*authService, *servicetest.Store) {
	t.Helper()
	jwt.Init("test-secret", 15, 720)
	repos, store := servicetest.NewRepositories()
	return NewAuthService(repos), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)

	reg, err := svc.Register(request.RegisterRequest{
		Email:    "alice@example.com",
		Nickname: "Alice",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if reg.UserId == "" || reg.UserId[0] != 'U' {
		t.Fatalf("user id = %q, want U-prefixed", reg.UserId)
	}
	if reg.AccessToken == "" || reg.RefreshToken == "" {
		t.Fatal("expected a token pair")
	}
	claims, err := jwt.ParseToken(reg.AccessToken)
	if err != nil {
		t.Fatalf("parse access token failed: %v", err)
	}
	if claims.UserID != reg.UserId || claims.Subject != "access_token" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	login, err := svc.Login(request.LoginRequest{Email: "alice@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.UserId != reg.UserId {
		t.Fatalf("login user = %q, want %q", login.UserId, reg.UserId)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	req := request.RegisterRequest{Email: "alice@example.com", Nickname: "Alice", Password: "correct horse"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := svc.Register(req)
	if errorx.GetCode(err) != errorx.CodeBadRequest {
		t.Fatalf("code = %d, want bad request", errorx.GetCode(err))
	}
}

// Wrong password and unknown email must be indistinguishable.
func TestLoginRejections(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Register(request.RegisterRequest{
		Email: "alice@example.com", Nickname: "Alice", Password: "correct horse",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for _, req := range []request.LoginRequest{
		{Email: "alice@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "correct horse"},
	} {
		_, err := svc.Login(req)
		if errorx.GetCode(err) != errorx.CodeUnauthorized {
			t.Fatalf("login %q: code = %d, want unauthorized", req.Email, errorx.GetCode(err))
		}
		if err.Error() != "invalid email or password" {
			t.Fatalf("login %q: message = %q", req.Email, err.Error())
		}
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Refresh(request.RefreshTokenRequest{RefreshToken: "not-a-token"})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("code = %d, want unauthorized", errorx.GetCode(err))
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t)
	access, err := jwt.GenerateAccessToken("Usomeone")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	_, err = svc.Refresh(request.RefreshTokenRequest{RefreshToken: access})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("code = %d, want unauthorized", errorx.GetCode(err))
	}
}

// Without a pinned token id the refresh token counts as revoked.
func TestRefreshRejectsUnpinnedToken(t *testing.T) {
	svc, _ := newTestService(t)
	refresh, _, err := jwt.GenerateRefreshToken("Usomeone")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	_, err = svc.Refresh(request.RefreshTokenRequest{RefreshToken: refresh})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("code = %d, want unauthorized", errorx.GetCode(err))
	}
}
