package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key for a user's login session.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("login:%d", userID)
}

// QuizPayloadKey returns the cache key for a user's generated quiz payload.
// The key is derived from the quiz settings so that repeated requests with
// identical parameters within one session reuse the cached payload instead
// of re-invoking the generation service.
func (r *CacheKeyStruct) QuizPayloadKey(userID int, examName, quizType string, topics []string, questionCount int) string {
	raw := fmt.Sprintf("%s|%s|%s|%d", examName, quizType, strings.Join(topics, ","), questionCount)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("user:%d:quiz:%s", userID, hex.EncodeToString(sum[:8]))
}

// UserStatsKey returns the cache key for a user's aggregate exam statistics.
func (r *CacheKeyStruct) UserStatsKey(userID int) string {
	return fmt.Sprintf("user:%d:stats", userID)
}

var CacheKey = NewCacheKeyStruct()
