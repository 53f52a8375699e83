package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	assert.Equal(t, ".pdf", cfg.Document.FileExtension)
	assert.Equal(t, "incoming", cfg.Document.IncomingFolder)
	assert.Equal(t, "stamped", cfg.Document.StampedFolder)
	assert.Equal(t, "signatures", cfg.Document.SignatureFolder)
	assert.Equal(t, 150.0, cfg.Placement.FixedStampWidth)
	assert.Equal(t, 50.0, cfg.Placement.FixedStampHeight)
	assert.Equal(t, 10*time.Minute, cfg.Placement.GeometryCacheTTL)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Placement: PlacementConfig{
			FixedStampWidth:  200,
			FixedStampHeight: 80,
			GeometryCacheTTL: 30, // bare number in yaml means seconds
		},
	}
	cfg.applyDefaults()

	assert.Equal(t, 200.0, cfg.Placement.FixedStampWidth)
	assert.Equal(t, 80.0, cfg.Placement.FixedStampHeight)
	assert.Equal(t, 30*time.Second, cfg.Placement.GeometryCacheTTL)
}

func TestEnvHelpers(t *testing.T) {
	cfg := Config{App: AppConfig{Env: "development"}}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.App.Env = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
