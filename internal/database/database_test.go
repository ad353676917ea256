package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schemasync/internal/config"
)

func TestConnectRejectsMalformedDSN(t *testing.T) {
	_, err := Connect(config.EnvironmentConfig{
		Name: "development",
		URL:  "=not a dsn=",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "development", "the failing environment is named in the error")
}
