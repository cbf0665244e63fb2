package models

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestUser_JSONNeverLeaksHash pins the invariant that the password hash is
// excluded from every serialized form of a user.
func TestUser_JSONNeverLeaksHash(t *testing.T) {
	user := User{
		ID:           "user-1",
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "$2a$10$stored-hash",
	}

	b, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(string(b), "stored-hash") || strings.Contains(string(b), "password") {
		t.Errorf("serialized user leaks credential material: %s", b)
	}
}

func TestUser_Public(t *testing.T) {
	user := User{
		ID:           "user-1",
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "$2a$10$stored-hash",
	}

	publicUser := user.Public()

	want := PublicUser{ID: "user-1", Email: "alice@example.com", Name: "Alice"}
	if publicUser != want {
		t.Errorf("expected %+v, got %+v", want, publicUser)
	}
}

func TestUser_TableName(t *testing.T) {
	if (User{}).TableName() != "users" {
		t.Errorf("unexpected table name: %s", (User{}).TableName())
	}
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	if !(UserUpdate{}).IsEmpty() {
		t.Error("zero-value update must be empty")
	}

	name := "Robert"
	if (UserUpdate{Name: &name}).IsEmpty() {
		t.Error("update with a name must not be empty")
	}
}

func TestUserUpdate_PartialJSON(t *testing.T) {
	var update UserUpdate
	if err := json.Unmarshal([]byte(`{"name":"Robert"}`), &update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if update.Email != nil {
		t.Error("absent email must decode as nil")
	}
	if update.Name == nil || *update.Name != "Robert" {
		t.Errorf("unexpected name: %v", update.Name)
	}
}
