package app

import (
	"testing"

	"stageline.io/stageline/internal/config"
)

func TestBuildCORSConfig_DefaultsToLocalDevOrigin(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			AllowedOrigins:   nil,
			AllowCredentials: true,
		},
	}

	got := buildCORSConfig(cfg)
	if got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want false", got.AllowAllOrigins)
	}
	if !got.AllowCredentials {
		t.Fatalf("AllowCredentials = %v, want true", got.AllowCredentials)
	}
	if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "http://localhost:5173" {
		t.Fatalf("AllowOrigins = %#v, want the local dev origin", got.AllowOrigins)
	}
}

func TestBuildCORSConfig_WildcardDisablesCredentials(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			AllowedOrigins:   []string{"*"},
			AllowCredentials: true,
		},
	}

	got := buildCORSConfig(cfg)
	if !got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want true", got.AllowAllOrigins)
	}
	if got.AllowCredentials {
		t.Fatalf("AllowCredentials = %v, want false", got.AllowCredentials)
	}
	if len(got.AllowOrigins) != 0 {
		t.Fatalf("AllowOrigins = %#v, want empty", got.AllowOrigins)
	}
}

func TestBuildCORSConfig_ExplicitOrigins(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			AllowedOrigins:   []string{"https://app.stageline.example"},
			AllowCredentials: true,
		},
	}

	got := buildCORSConfig(cfg)
	if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "https://app.stageline.example" {
		t.Fatalf("AllowOrigins = %#v", got.AllowOrigins)
	}
	if !got.AllowCredentials {
		t.Fatalf("AllowCredentials = %v, want true", got.AllowCredentials)
	}
}

func TestPublicPrefixesCoverLoginAndHealth(t *testing.T) {
	want := map[string]bool{
		"/api/v1/auth/login": false,
		"/api/v1/healthz":    false,
	}
	for _, prefix := range publicPrefixes {
		if _, ok := want[prefix]; ok {
			want[prefix] = true
		}
	}
	for prefix, seen := range want {
		if !seen {
			t.Fatalf("public prefix %q is not registered", prefix)
		}
	}
}
