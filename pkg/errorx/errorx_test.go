package errorx

import (
	"errors"
	"net/http"
	"testing"
)

func TestGetCode(t *testing.T) {
	if got := GetCode(New(CodeNotFound, "x")); got != CodeNotFound {
		t.Fatalf("code = %d, want %d", got, CodeNotFound)
	}
	wrapped := Wrap(errors.New("boom"), CodeConflict, "dup")
	if got := GetCode(wrapped); got != CodeConflict {
		t.Fatalf("code = %d, want %d", got, CodeConflict)
	}
	if got := GetCode(errors.New("plain")); got != CodeServerBusy {
		t.Fatalf("code = %d, want server busy fallback", got)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := New(CodeBadRequest, "nope").Error(); got != "nope" {
		t.Fatalf("message = %q", got)
	}
	wrapped := Wrap(errors.New("boom"), CodeBadRequest, "nope")
	if got := wrapped.Error(); got != "nope: boom" {
		t.Fatalf("message = %q", got)
	}
	if errors.Unwrap(wrapped).Error() != "boom" {
		t.Fatal("expected the cause to unwrap")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code int
		want int
	}{
		{CodeSuccess, http.StatusOK},
		{CodeInvalidParam, http.StatusBadRequest},
		{CodeBadRequest, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeServerBusy, http.StatusInternalServerError},
		{CodeDBError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.code); got != tc.want {
			t.Errorf("HTTPStatus(%d) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(CodeNotFound, "missing")) {
		t.Fatal("CodeNotFound must be not-found")
	}
	if !IsNotFound(errors.New("record not found")) {
		t.Fatal("the raw gorm message must be not-found")
	}
	if IsNotFound(New(CodeBadRequest, "nope")) {
		t.Fatal("other codes must not be not-found")
	}
	if IsNotFound(nil) {
		t.Fatal("nil must not be not-found")
	}
}

func TestIsConflict(t *testing.T) {
	if !IsConflict(Wrap(errors.New("duplicate"), CodeConflict, "dup")) {
		t.Fatal("CodeConflict must be conflict")
	}
	if IsConflict(New(CodeNotFound, "missing")) {
		t.Fatal("other codes must not be conflict")
	}
}
