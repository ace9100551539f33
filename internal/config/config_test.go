package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DB_PASSWORD", "test_db_password")
	os.Unsetenv("BOT_TOKEN")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "")
	os.Unsetenv("DB_PASSWORD")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_WithDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DICTIONARIES_FILE", "ALLOWED_USERS_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "gasoline", cfg.Database.Name)
	assert.Equal(t, "gasoline", cfg.Database.User)
	assert.Equal(t, "configs/dictionaries.yaml", cfg.DictionariesFile)
	assert.Equal(t, "configs/allowed_users.yaml", cfg.AllowedUsersFile)
}
