package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"autivision/data"
)

func newTestService(t *testing.T) (*Service, *data.UserRepository) {
	t.Helper()
	db, err := data.Open("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	users := data.NewUserRepository(db)
	return NewService(users), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected alice, got %s", user.Username)
	}
	if user.Password == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.Register(ctx, "alice", "other")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	// The failed attempt must not have created a second record.
	exists, err := users.ExistsByUsername(ctx, "alice")
	if err != nil || !exists {
		t.Fatalf("expected alice to exist exactly once: %v", err)
	}
	if _, err := svc.Login(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("original credentials no longer valid: %v", err)
	}
}

func TestRegisterValidatesFieldLengths(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct{ username, password string }{
		{"abc", "password"},
		{"averyveryverylongusername", "password"},
		{"alice", "abc"},
		{"alice", "averyveryverylongpassword"},
	}
	for _, tc := range cases {
		err := svc.Register(ctx, tc.username, tc.password)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError for %q/%q, got %v", tc.username, tc.password, err)
		}
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, "alice", "wrong")
	_, unknownUser := svc.Login(ctx, "nobody", "s3cret")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatal("login errors disclose which field was wrong")
	}
}
