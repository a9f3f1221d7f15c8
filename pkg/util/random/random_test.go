package random

import (
	"testing"
	"time"
)

func TestGetNowAndLenRandomStringLength(t *testing.T) {
	for _, length := range []int{6, 10, 19} {
		if got := GetNowAndLenRandomString(length); len(got) != length {
			t.Errorf("len = %d, want %d", len(got), length)
		}
	}
}

func TestGetNowAndLenRandomStringPrefix(t *testing.T) {
	got := GetNowAndLenRandomString(19)
	want := time.Now().Format("060102")
	if got[:6] != want {
		t.Errorf("prefix = %q, want %q", got[:6], want)
	}
}

func TestGetRandomIntDigits(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := GetRandomInt(6)
		if n < 100000 || n > 999999 {
			t.Fatalf("n = %d, want 6 digits", n)
		}
	}
}
