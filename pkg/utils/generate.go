package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== PASSWORD ====================

// GenerateTempPassword returns 2*n lowercase hex characters from crypto/rand.
func GenerateTempPassword(n int) (string, error) {
	if n <= 0 {
		n = 4
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// ==================== AVATAR ====================

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// GenerateAvatarURL builds the default avatar, seeded by the name without whitespace.
func GenerateAvatarURL(name string) string {
	seed := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)

	return avatarBaseURL + url.QueryEscape(seed)
}

// ==================== QUERY ====================

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
