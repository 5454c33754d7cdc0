package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

const joinCodeLength = 6

// GenerateGameID - generates a new unique game id.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateJoinCode - a short code players can type in to find a game.
func GenerateJoinCode() string {
	code := strings.ReplaceAll(uuid.NewString(), "-", "")

	return strings.ToUpper(code[:joinCodeLength])
}

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
