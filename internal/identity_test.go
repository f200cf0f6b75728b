package internal

import "testing"

func TestNewSession(t *testing.T) {
	cfg := &Config{Admins: []string{"admin@campus.edu"}}

	s := NewSession("  Admin@Campus.EDU ", cfg)
	if s.Email != "admin@campus.edu" {
		t.Errorf("NewSession() email = %q, want lowercased trimmed form", s.Email)
	}
	if !s.Admin {
		t.Error("NewSession() should flag allow-listed emails as admin")
	}
	if !s.LoggedIn() {
		t.Error("session with an email should be logged in")
	}

	user := NewSession("bob@campus.edu", cfg)
	if user.Admin {
		t.Error("NewSession() should not flag unlisted emails as admin")
	}

	anon := NewSession("", cfg)
	if anon.LoggedIn() || anon.Admin {
		t.Error("empty email must yield a logged-out, non-admin session")
	}
}
