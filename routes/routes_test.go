package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vibin_web/auth"
	"vibin_web/middleware"
	"vibin_web/models"
	"vibin_web/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	t      *testing.T
	router *mux.Router
	store  *services.SessionStore
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	rng := services.NewRandomizer(17)
	store := services.NewSessionStore(services.SessionDeps{
		Provider: services.NewMockProvider(rng),
		Rand:     rng,
		Timing: services.Timing{
			ReadReceiptDelay: 50 * time.Millisecond,
			ReplyMinDelay:    50 * time.Millisecond,
			ReplyMaxDelay:    80 * time.Millisecond,
		},
	})
	limiter := middleware.NewLimiterStore(30, 3, time.Minute)
	t.Cleanup(func() {
		limiter.Stop()
		store.CloseAll()
	})

	router := NewRouter(Dependencies{
		Store:   store,
		JWT:     auth.NewJWTManager("test-secret", time.Hour),
		Limiter: limiter,
		Logger:  zap.NewNop(),
	})
	return &testAPI{t: t, router: router, store: store}
}

func (a *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func (a *testAPI) login() {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "emma@example.com", "password": "secret"})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token     string `json:"token"`
		SessionID string `json:"sessionId"`
	}
	decode(a.t, rec, &body)
	require.NotEmpty(a.t, body.Token)
	require.NotEmpty(a.t, body.SessionID)
	a.token = body.Token
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestLoginValidation(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "", "password": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, api.store.Len())
}

func TestAPIRequiresToken(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodGet, "/api/chat/matches", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatFlow(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	rec := api.do(http.MethodGet, "/api/chat/matches", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var matches services.MatchesSnapshot
	decode(t, rec, &matches)
	require.Len(t, matches.Matches, 8)
	third := matches.Matches[2]

	rec = api.do(http.MethodPost, "/api/chat/matches/"+third.ID+"/select", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var selected struct {
		Match    models.Match     `json:"match"`
		Messages []models.Message `json:"messages"`
		Location string           `json:"location"`
	}
	decode(t, rec, &selected)
	assert.Equal(t, third.ID, selected.Match.ID)
	assert.Len(t, selected.Messages, 5)
	assert.Equal(t, "/chat/"+third.ID, selected.Location)

	rec = api.do(http.MethodPost, "/api/chat/matches/unknown/select", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPut, "/api/chat/draft", map[string]string{"text": "hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodPost, "/api/chat/messages", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var sent struct {
		Sent    bool           `json:"sent"`
		Message models.Message `json:"message"`
	}
	decode(t, rec, &sent)
	assert.True(t, sent.Sent)
	assert.Equal(t, "hello", sent.Message.Content)

	assert.Eventually(t, func() bool {
		var conversation services.ConversationSnapshot
		if err := json.Unmarshal(api.do(http.MethodGet, "/api/chat/messages", nil).Body.Bytes(), &conversation); err != nil {
			return false
		}
		return len(conversation.Messages) == 7 && conversation.Messages[6].SenderID == third.ID
	}, time.Second, 20*time.Millisecond)

	rec = api.do(http.MethodPost, "/api/chat/messages", map[string]string{"content": "   "})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &sent)
	assert.False(t, sent.Sent)

	rec = api.do(http.MethodPost, "/api/chat/leave", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSelectWithoutIDOpensMostRecentMatch(t *testing.T) {
	api := newTestAPI(t)
	api.login()
	first := firstMatch(t, api)

	rec := api.do(http.MethodPost, "/api/chat/matches/select", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var selected struct {
		Match    models.Match `json:"match"`
		Location string       `json:"location"`
	}
	decode(t, rec, &selected)
	assert.Equal(t, first, selected.Match.ID)
	assert.Equal(t, "/chat/"+first, selected.Location)
}

func TestSendIsRateLimited(t *testing.T) {
	api := newTestAPI(t)
	api.login()
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/chat/matches/"+firstMatch(t, api)+"/select", nil).Code)

	for i := 0; i < 3; i++ {
		rec := api.do(http.MethodPost, "/api/chat/messages", map[string]string{"content": "hi"})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := api.do(http.MethodPost, "/api/chat/messages", map[string]string{"content": "hi"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func firstMatch(t *testing.T, api *testAPI) string {
	var matches services.MatchesSnapshot
	decode(t, api.do(http.MethodGet, "/api/chat/matches", nil), &matches)
	require.NotEmpty(t, matches.Matches)
	return matches.Matches[0].ID
}

func TestNotificationRoutes(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	type list struct {
		Notifications []models.Notification `json:"notifications"`
		UnreadCount   int                   `json:"unreadCount"`
	}
	var body list
	decode(t, api.do(http.MethodGet, "/api/notifications", nil), &body)
	assert.Len(t, body.Notifications, 6)
	assert.Equal(t, 2, body.UnreadCount)

	decode(t, api.do(http.MethodPatch, "/api/notifications/1/read", nil), &body)
	assert.Equal(t, 1, body.UnreadCount)

	decode(t, api.do(http.MethodPost, "/api/notifications/read-all", nil), &body)
	assert.Zero(t, body.UnreadCount)

	rec := api.do(http.MethodDelete, "/api/notifications/does-not-exist", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &body)
	assert.Len(t, body.Notifications, 6)

	decode(t, api.do(http.MethodDelete, "/api/notifications/2", nil), &body)
	assert.Len(t, body.Notifications, 5)

	settings := models.DefaultNotificationSettings()
	settings.Marketing = true
	rec = api.do(http.MethodPut, "/api/notifications/settings", settings)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.NotificationSettings
	decode(t, api.do(http.MethodGet, "/api/notifications/settings", nil), &got)
	assert.True(t, got.Marketing)
}

func TestSearchRoutes(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var snapshot services.SearchSnapshot
	decode(t, api.do(http.MethodGet, "/api/search", nil), &snapshot)
	assert.Len(t, snapshot.Results, 12)

	bad := models.DefaultSearchFilters()
	bad.AgeRange = [2]int{40, 30}
	rec := api.do(http.MethodPut, "/api/search/filters", bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	good := models.DefaultSearchFilters()
	good.Location = "Paris"
	rec = api.do(http.MethodPut, "/api/search/filters", good)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &snapshot)
	assert.Equal(t, 1, snapshot.ActiveFilters)

	decode(t, api.do(http.MethodPost, "/api/search/filters/tags", map[string]string{"tag": "Art 🎨"}), &snapshot)
	assert.Equal(t, []string{"Art 🎨"}, snapshot.Filters.Tags)

	decode(t, api.do(http.MethodPost, "/api/search/apply", nil), &snapshot)
	assert.GreaterOrEqual(t, len(snapshot.Results), 8)
	assert.LessOrEqual(t, len(snapshot.Results), 27)

	decode(t, api.do(http.MethodPost, "/api/search", map[string]string{"query": "hikers"}), &snapshot)
	assert.Equal(t, "hikers", snapshot.Query)

	decode(t, api.do(http.MethodDelete, "/api/search/filters", nil), &snapshot)
	assert.Equal(t, models.DefaultSearchFilters(), snapshot.Filters)
}

func TestProfileRoutes(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var profile models.OwnProfile
	decode(t, api.do(http.MethodGet, "/api/profile", nil), &profile)
	assert.Equal(t, "Emma Martinez", profile.Name)

	rec := api.do(http.MethodPatch, "/api/profile", map[string]interface{}{"age": 12})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPatch, "/api/profile", map[string]interface{}{"bio": "Hello there"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated struct {
		Notice  models.Notice     `json:"notice"`
		Profile models.OwnProfile `json:"profile"`
	}
	decode(t, rec, &updated)
	assert.Equal(t, "Hello there", updated.Profile.Bio)
	assert.NotEmpty(t, updated.Notice.Title)

	rec = api.do(http.MethodDelete, "/api/profile/photos/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(http.MethodDelete, "/api/profile/photos/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPost, "/api/profile/photos/upload-url", map[string]string{"fileName": "a.jpg", "fileType": "image/jpeg"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestProfileActionRoutes(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var view models.ProfileView
	rec := api.do(http.MethodGet, "/api/profiles/user-7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &view)
	assert.Equal(t, "user-7", view.ID)

	rec = api.do(http.MethodPost, "/api/profiles/user-7/message", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/api/profiles/user-7/like", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var location map[string]string
	decode(t, api.do(http.MethodPost, "/api/profiles/user-7/message", nil), &location)
	assert.Equal(t, "/chat/user-7", location["location"])

	rec = api.do(http.MethodPost, "/api/profiles/user-7/report", map[string]string{"reason": "spam"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var blocked struct {
		Location string `json:"location"`
	}
	decode(t, api.do(http.MethodPost, "/api/profiles/user-7/block", nil), &blocked)
	assert.Equal(t, "/discover", blocked.Location)
}

func TestDiscoverRoute(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var body struct {
		Profiles []models.Profile `json:"profiles"`
	}
	decode(t, api.do(http.MethodGet, "/api/discover", nil), &body)
	assert.Len(t, body.Profiles, 10)

	decode(t, api.do(http.MethodGet, "/api/discover?count=3", nil), &body)
	assert.Len(t, body.Profiles, 3)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/discover?count=abc", nil).Code)
}

func TestLogoutClosesSession(t *testing.T) {
	api := newTestAPI(t)
	api.login()
	require.Equal(t, 1, api.store.Len())

	rec := api.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, api.store.Len())

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/chat/matches", nil).Code)
}
