package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanEnvValue(t *testing.T) {
	assert.Equal(t, "db.example.com", cleanEnvValue("  db.example.com \n"))
	assert.Equal(t, "pass!word", cleanEnvValue(`pass\!word`))
	assert.Equal(t, "", cleanEnvValue("   "))
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("RDS_HOST", "")
	t.Setenv("RDS_PORT", "")
	t.Setenv("RDS_USER", "")
	t.Setenv("RDS_DATABASE", "")

	config := NewConfig()
	assert.Equal(t, "localhost", config.Host)
	assert.Equal(t, 3306, config.Port)
	assert.Equal(t, "root", config.User)
	assert.Equal(t, "modutour", config.Database)
}

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Setenv("RDS_HOST", " rds.internal \\")
	t.Setenv("RDS_PORT", "3307")
	t.Setenv("RDS_USER", "app")
	t.Setenv("RDS_PASSWORD", "secret")
	t.Setenv("RDS_DATABASE", "tour")

	config := NewConfig()
	assert.Equal(t, "rds.internal", config.Host)
	assert.Equal(t, 3307, config.Port)
	assert.Equal(t, "app", config.User)
	assert.Equal(t, "secret", config.Password)
	assert.Equal(t, "tour", config.Database)
}

func TestNewConfigInvalidPortFallsBack(t *testing.T) {
	t.Setenv("RDS_PORT", "not-a-port")

	config := NewConfig()
	assert.Equal(t, 3306, config.Port)
}
