package user

import (
	"testing"

	"gather_server/internal/service/servicetest"
	"gather_server/pkg/errorx"
)

func TestGetAndSearch(t *testing.T) {
	repos, store := servicetest.NewRepositories()
	store.AddUser("Ua", "alice@example.com", "Alice")
	svc := NewUserService(repos)

	profile, err := svc.Get("Ua")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if profile.Nickname != "Alice" || profile.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	found, err := svc.SearchByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if found.UserId != "Ua" {
		t.Fatalf("user id = %q, want Ua", found.UserId)
	}

	if _, err := svc.Get("Unobody"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want not found", errorx.GetCode(err))
	}
	if _, err := svc.SearchByEmail("nobody@example.com"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want not found", errorx.GetCode(err))
	}
}
