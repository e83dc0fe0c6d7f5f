package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func validTestConfig() AppConfig {
	return AppConfig{
		MongoURI:            "mongodb://localhost:27017",
		MongoDatabase:       "collectam_web_test",
		SessionKey:          "test-signing-key-0123456789ABCDEF",
		AuthAPIBaseURL:      "http://localhost:5000",
		DashboardAPIBaseURL: "http://localhost:8080",
		BaseURL:             "http://localhost:3000",
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(nil, validTestConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig: unexpected error: %v", err)
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := validTestConfig()
	cfg.MongoURI = "localhost:27017"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for MongoDB URI without scheme")
	}
}

func TestValidateConfig_BadBackendURLs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"auth URL without scheme", func(c *AppConfig) { c.AuthAPIBaseURL = "localhost:5000" }},
		{"auth URL empty", func(c *AppConfig) { c.AuthAPIBaseURL = "" }},
		{"dashboard URL without host", func(c *AppConfig) { c.DashboardAPIBaseURL = "http://" }},
		{"dashboard URL wrong scheme", func(c *AppConfig) { c.DashboardAPIBaseURL = "ftp://localhost:8080" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(&cfg)
			if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateConfig_EmptySessionKey(t *testing.T) {
	cfg := validTestConfig()
	cfg.SessionKey = ""
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for empty session key")
	}
}
