package internal

import "testing"

func TestIsPlausibleEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@campus.edu", true},
		{"ALICE@CAMPUS.EDU", true},
		{"a.b+c_d%e@sub.domain.org", true},
		{"bob@x.co", true},
		{"", false},
		{"alice", false},
		{"alice@", false},
		{"@campus.edu", false},
		{"alice@campus", false},
		{"alice@campus.e", false},
		{"alice campus@x.edu", false},
		{"alice@campus.edu extra", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsPlausibleEmail(tt.email); got != tt.want {
				t.Errorf("IsPlausibleEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
