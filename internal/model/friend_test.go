package model

import "testing"

func TestOrderPair(t *testing.T) {
	cases := []struct {
		a, b         string
		want1, want2 string
	}{
		{"Ua", "Ub", "Ua", "Ub"},
		{"Ub", "Ua", "Ua", "Ub"},
		{"Ua", "Ua", "Ua", "Ua"},
	}
	for _, tc := range cases {
		got1, got2 := OrderPair(tc.a, tc.b)
		if got1 != tc.want1 || got2 != tc.want2 {
			t.Errorf("OrderPair(%q, %q) = (%q, %q), want (%q, %q)",
				tc.a, tc.b, got1, got2, tc.want1, tc.want2)
		}
	}
}
