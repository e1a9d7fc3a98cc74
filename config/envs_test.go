package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := initConfig()
		assert.Equal(t, 20, cfg.MazeCols)
		assert.Equal(t, 20, cfg.MazeRows)
		assert.Equal(t, "skip", cfg.Policy)
		assert.InDelta(t, 0.15, cfg.Density, 1e-9)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("MAZE_COLS", "12")
		t.Setenv("MAZE_DENSITY", "0.4")
		t.Setenv("MAZE_THEME", "space")

		cfg := initConfig()
		assert.Equal(t, 12, cfg.MazeCols)
		assert.InDelta(t, 0.4, cfg.Density, 1e-9)
		assert.Equal(t, "space", cfg.Theme)
	})
}

func TestValidateServer(t *testing.T) {
	cfg := Config{}
	err := cfg.ValidateServer()
	assert.ErrorContains(t, err, "JWT_SECRET")
	assert.ErrorContains(t, err, "DB_HOST")

	assert.Equal(t,
		"environment variable DB_HOST is not set\n"+
			"environment variable DB_USER is not set\n"+
			"environment variable DB_PASS is not set\n"+
			"environment variable JWT_SECRET is not set",
		err.Error())

	cfg = Config{DBHost: "db", JWTSecret: "s"}
	assert.Equal(t,
		"environment variable DB_USER is not set\nenvironment variable DB_PASS is not set",
		cfg.ValidateServer().Error())

	cfg = Config{DBHost: "db", DBUser: "u", DBPassword: "p", JWTSecret: "s"}
	assert.NoError(t, cfg.ValidateServer())
}
