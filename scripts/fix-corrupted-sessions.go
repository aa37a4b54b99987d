// Command fix-corrupted-sessions removes stored sessions that can no longer be
// decoded, which otherwise surface as DataLoss errors on every start
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/quest-dash/internal/entities"
)

const sessionPattern = "quest_dash:session:*"

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning stored sessions...")

	iter := client.Scan(ctx, 0, sessionPattern, 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := inspect(key, data); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d sessions, found %d corrupted\n", checkedCount, len(corruptedKeys))
	if len(corruptedKeys) == 0 {
		return
	}

	fmt.Print("\nDelete these sessions? The affected profiles will need to log in again (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty answer aborts

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}
	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
}

// inspect returns why the stored session is unusable, or "" when it is fine
func inspect(key, data string) string {
	var sess entities.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return "malformed JSON"
	}
	if sess.AccessToken == "" {
		return "missing access token"
	}
	if profile := strings.TrimPrefix(key, strings.TrimSuffix(sessionPattern, "*")); sess.Profile != profile {
		return fmt.Sprintf("profile %q stored under %q", sess.Profile, profile)
	}
	if sess.ExpiresAt.IsZero() {
		return "missing expiry"
	}
	return ""
}
