package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nextstep_backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.Mode = "test"
	cfg.Session.CookieName = "auth_token"
	cfg.Session.TTL = 7 * 24 * time.Hour
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	return NewApp(cfg)
}

func doJSON(t *testing.T, a *App, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registrationPayload(username string) map[string]interface{} {
	return map[string]interface{}{
		"username":        username,
		"password":        "secret123",
		"confirmPassword": "secret123",
		"email":           username + "@example.com",
		"firstName":       "Jamie",
		"lastName":        "Lee",
		"grade":           10,
	}
}

func register(t *testing.T, a *App, username string) *http.Cookie {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/auth/register", registrationPayload(username))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("registration did not set the session cookie")
	return nil
}

func TestRegisterSetsCookieAndHidesPassword(t *testing.T) {
	a := newTestApp(t)

	w := doJSON(t, a, http.MethodPost, "/api/auth/register", registrationPayload("jamie"))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "jamie", body["username"])
	assert.NotContains(t, body, "password")
	assert.NotEmpty(t, body["referralCode"])

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	me := doJSON(t, a, http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "jamie", decodeBody(t, me)["username"])
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	a := newTestApp(t)
	register(t, a, "jamie")

	w := doJSON(t, a, http.MethodPost, "/api/auth/register", registrationPayload("jamie"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, w)["message"])
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	a := newTestApp(t)

	payload := registrationPayload("jamie")
	payload["confirmPassword"] = "different"
	w := doJSON(t, a, http.MethodPost, "/api/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	a := newTestApp(t)
	register(t, a, "jamie")

	w := doJSON(t, a, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "jamie", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jamie", decodeBody(t, w)["username"])

	w = doJSON(t, a, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "jamie", "password": "wrong",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid username or password", decodeBody(t, w)["message"])
}

func TestProtectedRoutesRejectMissingAndBogusTokens(t *testing.T) {
	a := newTestApp(t)

	w := doJSON(t, a, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	bogus := &http.Cookie{Name: "auth_token", Value: "deadbeef"}
	w = doJSON(t, a, http.MethodGet, "/api/auth/me", nil, bogus)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// The stale cookie must be cleared.
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestLogoutEndsSession(t *testing.T) {
	a := newTestApp(t)
	cookie := register(t, a, "jamie")

	w := doJSON(t, a, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", decodeBody(t, w)["message"])

	w = doJSON(t, a, http.MethodGet, "/api/auth/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSeededCatalog(t *testing.T) {
	a := newTestApp(t)

	w := doJSON(t, a, http.MethodGet, "/api/modules", nil)
	require.Equal(t, http.StatusOK, w.Code)
	modules := decodeList(t, w)
	require.Len(t, modules, 3)
	assert.Equal(t, "Career Exploration Fundamentals", modules[0]["title"])
	assert.Equal(t, "Interview Skills Mastery", modules[2]["title"])

	w = doJSON(t, a, http.MethodGet, "/api/modules/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid module ID", decodeBody(t, w)["message"])

	w = doJSON(t, a, http.MethodGet, "/api/modules/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Module not found", decodeBody(t, w)["message"])

	w = doJSON(t, a, http.MethodGet, "/api/modules/category/Skill%20Building", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)

	w = doJSON(t, a, http.MethodGet, "/api/achievements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 4)

	w = doJSON(t, a, http.MethodGet, "/api/scholarships", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 3)
}

func currentPoints(t *testing.T, a *App, cookie *http.Cookie) float64 {
	t.Helper()
	w := doJSON(t, a, http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	return decodeBody(t, w)["points"].(float64)
}

// Module 1 is worth 250 points and unlocks the 250-point Career Explorer
// achievement. A second identical submission credits the module again.
func TestCompletingAModuleTwiceCreditsTwice(t *testing.T) {
	a := newTestApp(t)
	cookie := register(t, a, "jamie")

	payload := map[string]interface{}{"moduleId": 1, "progress": 100, "isCompleted": true}

	w := doJSON(t, a, http.MethodPost, "/api/user/progress", payload, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(500), currentPoints(t, a, cookie))

	w = doJSON(t, a, http.MethodPost, "/api/user/progress", payload, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(750), currentPoints(t, a, cookie))

	w = doJSON(t, a, http.MethodGet, "/api/user/achievements", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	unlocked := decodeList(t, w)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "Career Explorer", unlocked[0]["title"])
}

func TestCareerGenerationRequiresThreeCompletedModules(t *testing.T) {
	a := newTestApp(t)
	cookie := register(t, a, "jamie")

	w := doJSON(t, a, http.MethodPost, "/api/career/generate-recommendations", nil, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Complete at least 3 modules to get career recommendations", decodeBody(t, w)["message"])

	for id := 1; id <= 3; id++ {
		payload := map[string]interface{}{"moduleId": id, "progress": 100, "isCompleted": true}
		resp := doJSON(t, a, http.MethodPost, "/api/user/progress", payload, cookie)
		require.Equal(t, http.StatusOK, resp.Code)
	}

	w = doJSON(t, a, http.MethodPost, "/api/career/generate-recommendations", nil, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	recs := decodeList(t, w)
	require.Len(t, recs, 3)
	assert.Equal(t, "Software Developer", recs[0]["title"])

	w = doJSON(t, a, http.MethodGet, "/api/career/recommendations", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 3)
}

func TestChatFallbackPair(t *testing.T) {
	a := newTestApp(t)
	cookie := register(t, a, "jamie")

	w := doJSON(t, a, http.MethodPost, "/api/chat/messages", map[string]string{"message": "hi"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	pair := decodeList(t, w)
	require.Len(t, pair, 2)
	assert.Equal(t, true, pair[0]["isFromUser"])
	assert.Equal(t, "hi", pair[0]["message"])
	assert.Equal(t, false, pair[1]["isFromUser"])

	w = doJSON(t, a, http.MethodGet, "/api/chat/messages", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestCommentAwardsPoints(t *testing.T) {
	a := newTestApp(t)
	author := register(t, a, "author")
	reader := register(t, a, "reader")

	w := doJSON(t, a, http.MethodPost, "/api/community/posts", map[string]interface{}{
		"title": "Resume tips?", "content": "What works for you?",
	}, author)
	require.Equal(t, http.StatusCreated, w.Code)
	postID := int(decodeBody(t, w)["id"].(float64))

	w = doJSON(t, a, http.MethodPost, fmt.Sprintf("/api/community/posts/%d/comments", postID),
		map[string]string{"content": "Keep it to one page."}, reader)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, float64(5), currentPoints(t, a, reader))

	w = doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/community/posts/%d/comments", postID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)
}

func TestLikeUnlikeCycle(t *testing.T) {
	a := newTestApp(t)
	author := register(t, a, "author")
	reader := register(t, a, "reader")

	w := doJSON(t, a, http.MethodPost, "/api/community/posts", map[string]interface{}{
		"title": "t", "content": "c",
	}, author)
	require.Equal(t, http.StatusCreated, w.Code)
	postID := int(decodeBody(t, w)["id"].(float64))
	likePath := fmt.Sprintf("/api/community/posts/%d/like", postID)

	w = doJSON(t, a, http.MethodPost, likePath, nil, reader)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["isLiked"])
	assert.Equal(t, float64(1), body["likesCount"])

	w = doJSON(t, a, http.MethodPost, likePath, nil, reader)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Post already liked", decodeBody(t, w)["message"])

	// The liker sees the flag in listings, guests do not.
	w = doJSON(t, a, http.MethodGet, "/api/community/posts", nil, reader)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeList(t, w)[0]["isLiked"])

	w = doJSON(t, a, http.MethodGet, "/api/community/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeList(t, w)[0]["isLiked"])

	w = doJSON(t, a, http.MethodDelete, likePath, nil, reader)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["isLiked"])
	assert.Equal(t, float64(0), body["likesCount"])

	w = doJSON(t, a, http.MethodDelete, likePath, nil, reader)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Post not liked", decodeBody(t, w)["message"])
}

func TestUploadAttachment(t *testing.T) {
	a := newTestApp(t)
	cookie := register(t, a, "jamie")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake pdf bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/community/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	fileURL, ok := decodeBody(t, w)["fileUrl"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(fileURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(fileURL, ".pdf"))
}
