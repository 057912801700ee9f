// internal/api/router_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"giftwise/internal/auth"
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/common/logger"
	"giftwise/internal/models"
	"giftwise/internal/recommend"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ========== 1. TEST DOUBLES ==========

type stubAuth struct {
	users      map[string]*models.User // token -> user
	lastClient auth.ClientInfo
	loginCreds *auth.Credentials
	loginErr   error
	forgotErr  error
	resetErr   error
	loggedOut  bool
}

func (s *stubAuth) Register(_ context.Context, name, email, _ string, client auth.ClientInfo) (*auth.Credentials, error) {
	s.lastClient = client
	return &auth.Credentials{
		User:      models.SafeUser{ID: "user-1", Name: name, Email: email, Role: models.RoleUser},
		Token:     "fresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (s *stubAuth) Login(_ context.Context, _, _ string, client auth.ClientInfo) (*auth.Credentials, error) {
	s.lastClient = client
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginCreds, nil
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*models.User, *auth.Claims, error) {
	user, ok := s.users[token]
	if !ok {
		return nil, nil, stderrors.NewNotAuthenticatedError()
	}
	return user, &auth.Claims{UserID: user.ID, Email: user.Email, Role: user.Role, SessionID: "sess-1"}, nil
}

func (s *stubAuth) Logout(_ context.Context, _ *auth.Claims) error {
	s.loggedOut = true
	return nil
}

func (s *stubAuth) ForgotPassword(_ context.Context, _ string) error { return s.forgotErr }

func (s *stubAuth) ResetPassword(_ context.Context, _, _ string) error { return s.resetErr }

type stubRecommender struct {
	lastUserID string
	result     recommend.Result
}

func (s *stubRecommender) Recommend(_ context.Context, userID string, _ models.Survey) recommend.Result {
	s.lastUserID = userID
	return s.result
}

type stubHistory struct {
	recs  []models.Recommendation
	stats models.RecommendationStats
	err   error
}

func (s *stubHistory) ListByUser(_ context.Context, _ string, _ int) ([]models.Recommendation, error) {
	return s.recs, s.err
}

func (s *stubHistory) Stats(_ context.Context) (models.RecommendationStats, error) {
	return s.stats, s.err
}

type stubGifts struct {
	byID map[string]*models.Gift
	all  []models.Gift
}

func (s *stubGifts) GetByID(_ context.Context, id string) (*models.Gift, error) {
	gift, ok := s.byID[id]
	if !ok {
		return nil, stderrors.NewGiftNotFoundError(id)
	}
	return gift, nil
}

func (s *stubGifts) ListAll(_ context.Context, _ int) ([]models.Gift, error) {
	return s.all, nil
}

type stubSaved struct {
	gifts map[string]map[string]models.Gift // userID -> giftID -> gift
}

func newStubSaved() *stubSaved {
	return &stubSaved{gifts: map[string]map[string]models.Gift{}}
}

func (s *stubSaved) Save(_ context.Context, userID string, gift models.Gift) error {
	if s.gifts[userID] == nil {
		s.gifts[userID] = map[string]models.Gift{}
	}
	s.gifts[userID][gift.ID] = gift
	return nil
}

func (s *stubSaved) List(_ context.Context, userID string) ([]models.Gift, error) {
	out := make([]models.Gift, 0, len(s.gifts[userID]))
	for _, gift := range s.gifts[userID] {
		out = append(out, gift)
	}
	return out, nil
}

func (s *stubSaved) IsSaved(_ context.Context, userID, giftID string) (bool, error) {
	_, ok := s.gifts[userID][giftID]
	return ok, nil
}

func (s *stubSaved) Remove(_ context.Context, userID, giftID string) error {
	delete(s.gifts[userID], giftID)
	return nil
}

type stubUsers struct {
	users     []models.User
	roleCalls map[string]string
	roleErr   error
}

func (s *stubUsers) List(_ context.Context) ([]models.User, error) { return s.users, nil }

func (s *stubUsers) UpdateRole(_ context.Context, userID, role string) error {
	if s.roleErr != nil {
		return s.roleErr
	}
	if s.roleCalls == nil {
		s.roleCalls = map[string]string{}
	}
	s.roleCalls[userID] = role
	return nil
}

type fixture struct {
	auth        *stubAuth
	recommender *stubRecommender
	history     *stubHistory
	gifts       *stubGifts
	saved       *stubSaved
	users       *stubUsers
	engine      *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		auth: &stubAuth{users: map[string]*models.User{
			"user-token":  {ID: "user-1", Name: "Alice", Email: "alice@example.com", Role: models.RoleUser},
			"admin-token": {ID: "admin-1", Name: "Root", Email: "root@example.com", Role: models.RoleAdmin},
		}},
		recommender: &stubRecommender{result: recommend.Result{
			Gifts: []models.Gift{{ID: "gift-1", Name: "Leather Journal", Price: 25}},
		}},
		history: &stubHistory{stats: models.RecommendationStats{Total: 10, Today: 2, ThisMonth: 5}},
		gifts: &stubGifts{
			byID: map[string]*models.Gift{"1": {ID: "1", Name: "Bookstore Gift Card"}},
			all:  []models.Gift{{ID: "1", Name: "Bookstore Gift Card"}},
		},
		saved: newStubSaved(),
		users: &stubUsers{users: []models.User{
			{ID: "user-1", Name: "Alice", Email: "alice@example.com", Role: models.RoleUser, PasswordHash: "hash"},
		}},
	}

	router := NewRouter(Deps{
		Auth:        f.auth,
		Recommender: f.recommender,
		History:     f.history,
		Gifts:       f.gifts,
		Saved:       f.saved,
		Users:       f.users,
		Cookie:      CookieConfig{Name: "auth_token"},
		Logger:      logger.NewTestLogger(t),
	})
	f.engine = router.Engine()
	return f
}

func (f *fixture) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ========== 2. HEALTH ==========

func TestRouter_Health(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ========== 3. AUTH ROUTES ==========

func TestRouter_Register_SetsCookie(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.Equal(t, "fresh-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestRouter_Register_ForwardsClientInfo(t *testing.T) {
	f := newFixture(t)

	data, err := json.Marshal(map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "e2e-browser/1.0")
	req.RemoteAddr = "203.0.113.9:4410"

	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "203.0.113.9", f.auth.lastClient.IP)
	assert.Equal(t, "e2e-browser/1.0", f.auth.lastClient.UserAgent)
}

func TestRouter_Login_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	f.auth.loginErr = stderrors.NewInvalidCredentialsError()

	rec := f.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeBody(t, rec)["code"])
}

func TestRouter_Me(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodGet, "/api/auth/me", "user-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	user := decodeBody(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, "user-1", user["id"])
	assert.NotContains(t, user, "passwordHash")
}

func TestRouter_Me_Unauthenticated(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Me_CookieAuth(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "user-token"})
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Logout_ClearsCookie(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/auth/logout", "user-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.auth.loggedOut)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
}

func TestRouter_ForgotPassword_RequiresEmail(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ResetPassword_InvalidToken(t *testing.T) {
	f := newFixture(t)
	f.auth.resetErr = stderrors.NewInvalidResetTokenError("token is expired")

	rec := f.request(t, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
		"token": "stale", "password": "brand-new-pass",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RESET_TOKEN", decodeBody(t, rec)["code"])
}

// ========== 4. RECOMMENDATIONS ==========

func TestRouter_Recommend_Anonymous(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/recommendations", "", map[string]interface{}{
		"interests": []string{"Reading"},
		"budget":    []float64{0, 50},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["degraded"])
	assert.Len(t, body["gifts"], 1)
	assert.Empty(t, f.recommender.lastUserID)
}

func TestRouter_Recommend_AttributesAuthenticatedUser(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/recommendations", "user-token", map[string]interface{}{
		"occasion": "Birthday",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", f.recommender.lastUserID)
}

func TestRouter_Recommend_BadTokenFallsBackToAnonymous(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/recommendations", "expired-token", map[string]interface{}{
		"occasion": "Birthday",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, f.recommender.lastUserID)
}

func TestRouter_Recommend_RejectsUnknownFields(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/recommendations", "", map[string]interface{}{
		"interests": []string{"Reading"},
		"unknown":   true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeBody(t, rec)["code"])
}

func TestRouter_Recommend_RejectsWrongTypes(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/recommendations", "", map[string]interface{}{
		"interests": "Reading",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_History(t *testing.T) {
	f := newFixture(t)
	f.history.recs = []models.Recommendation{{ID: "rec-1", UserID: "user-1"}}

	rec := f.request(t, http.MethodGet, "/api/recommendations/history", "user-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["recommendations"], 1)
}

func TestRouter_History_RequiresAuth(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodGet, "/api/recommendations/history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_History_RejectsBadLimit(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodGet, "/api/recommendations/history?limit=zero", "user-token", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ========== 5. GIFTS ==========

func TestRouter_GetGift(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodGet, "/api/gift/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	gift := decodeBody(t, rec)["gift"].(map[string]interface{})
	assert.Equal(t, "Bookstore Gift Card", gift["name"])
}

func TestRouter_GetGift_NotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodGet, "/api/gift/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "GIFT_NOT_FOUND", decodeBody(t, rec)["code"])
}

func TestRouter_SavedGifts_Lifecycle(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/saved-gifts", "user-token", models.Gift{
		ID: "gift-1", Name: "Leather Journal", Price: 25,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.request(t, http.MethodGet, "/api/saved-gifts", "user-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["gifts"], 1)

	rec = f.request(t, http.MethodGet, "/api/saved-gifts/gift-1", "user-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["saved"])

	rec = f.request(t, http.MethodDelete, "/api/saved-gifts/gift-1", "user-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.request(t, http.MethodGet, "/api/saved-gifts/gift-1", "user-token", nil)
	assert.Equal(t, false, decodeBody(t, rec)["saved"])
}

func TestRouter_SavedGifts_RequireAuth(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodGet, "/api/saved-gifts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_SaveGift_RequiresIDAndName(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodPost, "/api/saved-gifts", "user-token", models.Gift{Name: "No ID"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ========== 6. ADMIN ==========

func TestRouter_AdminStats(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodGet, "/api/admin/stats", "admin-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decodeBody(t, rec)["stats"].(map[string]interface{})
	assert.Equal(t, float64(10), stats["total"])
	assert.Equal(t, float64(2), stats["today"])
}

func TestRouter_Admin_ForbiddenForRegularUser(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/api/admin/stats", "/api/admin/users", "/api/admin/gifts"} {
		rec := f.request(t, http.MethodGet, path, "user-token", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
}

func TestRouter_AdminUsers_OmitsPasswordHash(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodGet, "/api/admin/users", "admin-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	users := decodeBody(t, rec)["users"].([]interface{})
	require.Len(t, users, 1)
	assert.NotContains(t, users[0].(map[string]interface{}), "passwordHash")
}

func TestRouter_ChangeRole(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/admin/users/change-role", "admin-token", map[string]string{
		"userId": "user-1", "role": "admin",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", f.users.roleCalls["user-1"])
}

func TestRouter_ChangeRole_InvalidRole(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/admin/users/change-role", "admin-token", map[string]string{
		"userId": "user-1", "role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ChangeRole_UnknownUser(t *testing.T) {
	f := newFixture(t)
	f.users.roleErr = stderrors.NewUserNotFoundError("no user for id")

	rec := f.request(t, http.MethodPost, "/api/admin/users/change-role", "admin-token", map[string]string{
		"userId": "ghost", "role": "admin",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
