package jwt

import (
	"testing"
	"time"
)

// The Redis refresh-token pin uses RefreshExpiry for its TTL; it must track
// whatever lifetime Init configured or the pin dies before the token does.
func TestRefreshExpiryFollowsInit(t *testing.T) {
	Init("test-secret", 15, 720)
	if got := RefreshExpiry(); got != 720*time.Hour {
		t.Fatalf("RefreshExpiry() = %v, want %v", got, 720*time.Hour)
	}

	Init("test-secret", 15, 24)
	if got := RefreshExpiry(); got != 24*time.Hour {
		t.Fatalf("RefreshExpiry() = %v, want %v", got, 24*time.Hour)
	}
}

func TestRefreshTokenOutlivesItsClaimedExpiry(t *testing.T) {
	Init("test-secret", 15, 1)

	token, tokenId, err := GenerateRefreshToken("U1")
	if err != nil {
		t.Fatalf("generate refresh token failed: %v", err)
	}
	if tokenId == "" {
		t.Fatal("expected a token id for server-side pinning")
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse refresh token failed: %v", err)
	}
	if claims.Subject != "refresh_token" || claims.TokenID != tokenId {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining > RefreshExpiry() {
		t.Fatalf("token lifetime %v exceeds the pin TTL %v", remaining, RefreshExpiry())
	}
}
