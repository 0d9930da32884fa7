package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := map[string]string{
		"production":  "release",
		"prod":        "release",
		"release":     "release",
		"test":        "test",
		"testing":     "test",
		"development": "debug",
		"dev":         "debug",
		"":            "debug",
		"anything":    "debug",
	}
	for in, want := range tests {
		assert.Equal(t, want, MapEnvToGinMode(in), in)
	}
}

func TestNewCommand_Flags(t *testing.T) {
	cmd := NewCommand()
	assert.Equal(t, "server", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("env"))
	assert.NotNil(t, cmd.Flags().Lookup("auto-migrate"))
}
