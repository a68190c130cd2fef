package store

import "strings"

// Document keys. The layout mirrors the browser storage slots the session
// state was originally kept in.
const (
	CurrentUserKey    = "currentUser"
	CurrentProfileKey = "currentProfile"

	profilePrefix = "profile:"
	quizPrefix    = "quiz:"
)

// ProfileKey returns the per-user profile history key.
func ProfileKey(userID string) string {
	return profilePrefix + userID
}

// QuizResultPrefix returns the key prefix under which a user's quiz results
// are stored.
func QuizResultPrefix(userID string) string {
	return quizPrefix + userID + ":"
}

// QuizResultKey returns the key for a single quiz result.
func QuizResultKey(userID, resultID string) string {
	return QuizResultPrefix(userID) + resultID
}

// UserIDFromProfileKey extracts the user ID from a profile key.
func UserIDFromProfileKey(key string) (string, bool) {
	if !strings.HasPrefix(key, profilePrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, profilePrefix), true
}
