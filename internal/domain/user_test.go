package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	user, err := NewUser("jane", "jane@example.com", "hashed", now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.ID != 0 {
		t.Errorf("Expected unassigned ID, got %d", user.ID)
	}
	if !user.CreatedAt.Equal(now) || user.CreatedAt.Location() != time.UTC {
		t.Errorf("Expected CreatedAt %v in UTC, got %v", now, user.CreatedAt)
	}
	if user.UpdatedAt != nil {
		t.Error("Expected nil UpdatedAt for a new user")
	}

	_, err = NewUser("", "", "hashed", now)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if strings.Join(vErr.Fields, ",") != "username,email" {
		t.Errorf("Expected missing username,email, got %v", vErr.Fields)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("Expected error to wrap ErrValidation")
	}
}

func TestUserJSONHidesSecrets(t *testing.T) {
	token := "secret-token"
	user := User{ID: 1, Username: "jane", Email: "jane@example.com", HashedPassword: "hash", Token: &token}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "hash") || strings.Contains(string(data), token) {
		t.Errorf("Expected password hash and token to be omitted, got %s", data)
	}
}

func TestUserSummaryUsesISOTimestamps(t *testing.T) {
	created := time.Date(2023, 12, 24, 12, 34, 56, 0, time.UTC)
	user := User{Username: "jane", Email: "jane@example.com", CreatedAt: created}

	data, err := json.Marshal(user.Summary())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"username":"jane","email":"jane@example.com","createdAt":"2023-12-24T12:34:56Z","updatedAt":null}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}
