package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/godruoyi/go-snowflake"
)

const (
	CookieKey       = "HELLO_ADP_USERNAME"
	usernamePrefix  = "user_"
	usernameMaxAge  = 365 * 24 * time.Hour
	snowflakeEpoch  = "2024-01-01T00:00:00Z"
	snowflakeWorker = 1
)

func setupSnowflake() {
	// https://snowsta.mp
	startTime, _ := time.Parse(time.RFC3339, snowflakeEpoch)
	snowflake.SetStartTime(startTime)
	snowflake.SetMachineID(snowflakeWorker)
}

func generateUsername() string {
	return usernamePrefix + strconv.FormatUint(snowflake.ID(), 10)
}

func usernameID(username string) (uint64, bool) {
	rest, ok := strings.CutPrefix(username, usernamePrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// getAvatarURL returns "" for names it did not generate.
func getAvatarURL(username string) string {
	id, ok := usernameID(username)
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://robohash.org/%d?set=set4", id)
}

// commenterName reads the anonymous username cookie, issuing a new one when
// it is missing or malformed.
func commenterName(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieKey); err == nil {
		if _, ok := usernameID(c.Value); ok {
			return c.Value
		}
	}

	username := generateUsername()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieKey,
		Value:    username,
		Path:     "/",
		MaxAge:   int(usernameMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return username
}
