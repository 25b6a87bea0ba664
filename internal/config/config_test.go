package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.JWTExpiry != 720*time.Hour {
		t.Errorf("JWTExpiry = %v, want 720h", cfg.JWTExpiry)
	}
	if cfg.Credits.SignupBonus != 50 {
		t.Errorf("SignupBonus = %d, want 50", cfg.Credits.SignupBonus)
	}
	if cfg.Credits.SaveReward != 1 || cfg.Credits.ShareReward != 3 {
		t.Errorf("engagement rewards = %d/%d, want 1/3",
			cfg.Credits.SaveReward, cfg.Credits.ShareReward)
	}
	if cfg.Credits.ReportReward != 1 || cfg.Credits.ReportReasonReward != 2 {
		t.Errorf("report rewards = %d/%d, want 1/2",
			cfg.Credits.ReportReward, cfg.Credits.ReportReasonReward)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("CREDITS_SIGNUP_BONUS", "100")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if cfg.Credits.SignupBonus != 100 {
		t.Errorf("SignupBonus = %d, want 100", cfg.Credits.SignupBonus)
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")
	t.Setenv("CREDITS_SIGNUP_BONUS", "lots")

	cfg := Load()
	if cfg.JWTExpiry != 720*time.Hour {
		t.Errorf("JWTExpiry = %v, want 720h fallback", cfg.JWTExpiry)
	}
	if cfg.Credits.SignupBonus != 50 {
		t.Errorf("SignupBonus = %d, want 50 fallback", cfg.Credits.SignupBonus)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5433", DBUser: "app",
		DBPassword: "pw", DBName: "hub", DBSSLMode: "require",
	}
	want := "host=db user=app password=pw dbname=hub port=5433 sslmode=require TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}
