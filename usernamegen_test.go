package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAvatarURL(t *testing.T) {
	require.Equal(t, "https://robohash.org/42?set=set4", getAvatarURL("user_42"))
	require.Empty(t, getAvatarURL("jane"))
	require.Empty(t, getAvatarURL("user_abc"))
}

func TestCommenterName_IssuesCookie(t *testing.T) {
	setupSnowflake()

	rec := httptest.NewRecorder()
	name := commenterName(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	require.True(t, strings.HasPrefix(name, "user_"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CookieKey, cookies[0].Name)
	require.Equal(t, name, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
}

func TestCommenterName_ReusesValidCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieKey, Value: "user_7"})
	rec := httptest.NewRecorder()

	require.Equal(t, "user_7", commenterName(rec, req))
	require.Empty(t, rec.Result().Cookies())
}

func TestCommenterName_ReplacesForgedCookie(t *testing.T) {
	setupSnowflake()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieKey, Value: "admin"})
	rec := httptest.NewRecorder()

	name := commenterName(rec, req)
	require.NotEqual(t, "admin", name)
	require.Len(t, rec.Result().Cookies(), 1)
}
