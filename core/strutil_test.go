package core

import "testing"

func TestUtoa(t *testing.T) {
	testCases := []struct {
		value uint32
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{500000, "500000"},
		{4294967295, "4294967295"},
	}

	for _, tc := range testCases {
		if got := utoa(tc.value); got != tc.want {
			t.Errorf("utoa(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestUtoa64(t *testing.T) {
	testCases := []struct {
		value uint64
		want  string
	}{
		{0, "0"},
		{1000000, "1000000"},
		{4294967296, "4294967296"},
		{18446744073709551615, "18446744073709551615"},
	}

	for _, tc := range testCases {
		if got := utoa64(tc.value); got != tc.want {
			t.Errorf("utoa64(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
