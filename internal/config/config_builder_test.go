package config

import (
	"errors"
	"testing"
	"time"
)

// buildFrom merges the given configs through the builder the same way
// GetStructuredConfig does, without touching process env or flags.
func buildFrom(configs ...*StructuredConfig) (*StructuredConfig, error) {
	b := newConfigBuilder()
	b.configs = append(b.configs, configs...)
	return b.build()
}

// TestBuild_FirstSourceWins verifies the merge priority: a value set by an
// earlier source is not overridden by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	envLike := &StructuredConfig{
		App: App{TokenSignKey: "env-secret"},
		Storage: Storage{DB: DB{
			DSN: "postgres://env",
		}},
	}
	fileLike := &StructuredConfig{
		App: App{
			TokenSignKey: "file-secret",
			TokenIssuer:  "file-issuer",
		},
		Storage: Storage{DB: DB{
			DSN: "postgres://file",
		}},
	}

	cfg, err := buildFrom(envLike, fileLike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.TokenSignKey != "env-secret" {
		t.Errorf("earlier source must win, got sign key %s", cfg.App.TokenSignKey)
	}
	if cfg.Storage.DB.DSN != "postgres://env" {
		t.Errorf("earlier source must win, got DSN %s", cfg.Storage.DB.DSN)
	}
	// gaps are filled from later sources
	if cfg.App.TokenIssuer != "file-issuer" {
		t.Errorf("expected issuer from later source, got %s", cfg.App.TokenIssuer)
	}
}

func TestBuild_AppliesDefaults(t *testing.T) {
	cfg, err := buildFrom(&StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/users"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.HTTPAddress != defaultHTTPAddress {
		t.Errorf("expected default address, got %s", cfg.Server.HTTPAddress)
	}
	if cfg.App.TokenDuration != defaultTokenDuration {
		t.Errorf("expected default token duration, got %s", cfg.App.TokenDuration)
	}
	if cfg.Storage.DB.Driver != defaultDBDriver {
		t.Errorf("expected default driver, got %s", cfg.Storage.DB.Driver)
	}
}

// TestBuild_MissingSignKeyFails verifies that the builder refuses to produce a
// config without a signing key even when everything else is present.
func TestBuild_MissingSignKeyFails(t *testing.T) {
	_, err := buildFrom(&StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/users"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
	})
	if !errors.Is(err, ErrNoTokenSignKey) {
		t.Fatalf("expected ErrNoTokenSignKey, got %v", err)
	}
}

func TestBuild_SourceErrorPropagates(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("source exploded")

	_, err := b.build()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
