package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AllowAllSentinel in the whitelist grants access to every user.
const AllowAllSentinel int64 = 0

// AllowedUser is one whitelist entry.
type AllowedUser struct {
	TelegramID int64  `yaml:"telegram_id"`
	Name       string `yaml:"name"`
}

// AuthService checks users against the configured whitelist. Pure lookup,
// no side effects.
type AuthService struct {
	users    map[int64]AllowedUser
	allowAll bool
}

// NewAuthService creates an auth service from whitelist entries. An empty
// whitelist, like the sentinel entry, grants access to everyone.
func NewAuthService(users []AllowedUser) *AuthService {
	s := &AuthService{
		users:    make(map[int64]AllowedUser, len(users)),
		allowAll: len(users) == 0,
	}
	for _, u := range users {
		if u.TelegramID == AllowAllSentinel {
			s.allowAll = true
			continue
		}
		s.users[u.TelegramID] = u
	}
	return s
}

// LoadWhitelist reads the allowed users YAML file.
func LoadWhitelist(path string) ([]AllowedUser, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read whitelist file: %w", err)
	}

	var file struct {
		Users []AllowedUser `yaml:"users"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse whitelist file: %w", err)
	}

	return file.Users, nil
}

// IsAuthorized reports whether the user may interact with the bot.
func (s *AuthService) IsAuthorized(userID int64) bool {
	if s.allowAll {
		return true
	}
	_, ok := s.users[userID]
	return ok
}

// UserName returns the configured display name for a whitelisted user.
func (s *AuthService) UserName(userID int64) string {
	if u, ok := s.users[userID]; ok {
		return u.Name
	}
	return ""
}

// Count returns the number of explicit whitelist entries.
func (s *AuthService) Count() int {
	return len(s.users)
}
