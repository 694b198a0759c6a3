package routes

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	authUseCase "github.com/amirhossein-jamali/golden-key-vault/internal/domain/usecase/auth"
	keyUseCase "github.com/amirhossein-jamali/golden-key-vault/internal/domain/usecase/key"
	userUseCase "github.com/amirhossein-jamali/golden-key-vault/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/database"
	applogger "github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/telegram"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBotToken = "7000000000:AAF-vault-test-token"
	testSecret   = "an-end-to-end-signing-secret-of-32+chars"
	testAdminKey = "admin-key"
)

type testServer struct {
	router *gin.Engine
	db     *database.TestDBManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := applogger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, logger)
	testDB.SetupTestDB(t)

	tp := testDB.TimeProvider
	db := testDB.Manager.DB()

	userRepo := repository.NewUserRepository(db, logger)
	keyRepo := repository.NewKeyRepository(db, logger)
	verifier := telegram.NewVerifier(testBotToken, time.Hour, tp)
	issuer := token.NewJWTIssuer(testSecret, "golden-key-vault", time.Hour, tp)

	auth := authUseCase.NewAuthUseCase(testDB.Manager.CreateUnitOfWork(), userRepo, verifier, issuer, tp, logger)
	users := userUseCase.NewUserUseCase(userRepo, logger)
	keys := keyUseCase.NewKeyUseCase(keyRepo, tp, logger)

	router := gin.New()
	SetupMiddlewares(router, logger, tp, []string{"https://web.telegram.org"}, 5*time.Second)
	SetupRoutes(router, Handlers{
		Auth:   handler.NewAuthHandler(auth, logger),
		User:   handler.NewUserHandler(users, logger),
		Key:    handler.NewKeyHandler(keys, logger),
		Health: handler.NewHealthHandler(testDB.Manager, logger),
	}, Guards{
		Session: middleware.JWTAuth(issuer, logger),
		Admin:   middleware.AdminKey(testAdminKey, logger),
	})

	return &testServer{router: router, db: testDB}
}

// signedInitData builds init data for the user signed with testBotToken
func signedInitData(tgID int64, firstName, lastName, username string) string {
	user, _ := json.Marshal(map[string]any{
		"id":         tgID,
		"first_name": firstName,
		"last_name":  lastName,
		"username":   username,
	})
	fields := map[string]string{
		"query_id":  "AAHdF6IQAAAAAN0XohDhrOrc",
		"user":      string(user),
		"auth_date": strconv.FormatInt(time.Now().Unix(), 10),
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(testBotToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func (s *testServer) do(method, path, bearer string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, initData string) string {
	t.Helper()
	w := s.do(http.MethodPost, "/users/login", "", dto.LoginRequest{Key: initData}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

type envelope[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type profileView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Username  *string `json:"username"`
	TgID      string  `json:"tgId"`
	ReferCode string  `json:"referCode"`
	IsBlock   bool    `json:"isBlock"`
}

func TestLoginAndProfile(t *testing.T) {
	s := newTestServer(t)

	tok := s.login(t, signedInitData(279058397, "Vladislav", "Kibenko", "vdkfrost"))

	w := s.do(http.MethodGet, "/users/profile", tok, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[envelope[profileView]](t, w)
	assert.Equal(t, http.StatusOK, body.Code)
	assert.Equal(t, "User profile retrieved successfully", body.Msg)
	assert.Equal(t, "279058397", body.Data.TgID)
	assert.Equal(t, "Vladislav Kibenko", body.Data.Name)
	assert.Equal(t, "279058397", body.Data.ReferCode)
	require.NotNil(t, body.Data.Username)
	assert.Equal(t, "vdkfrost", *body.Data.Username)
	assert.False(t, body.Data.IsBlock)
	assert.NotContains(t, w.Body.String(), "balance")
}

func TestRepeatedLoginKeepsOneUser(t *testing.T) {
	s := newTestServer(t)

	first := s.login(t, signedInitData(42, "Ada", "", "ada"))
	second := s.login(t, signedInitData(42, "Renamed", "Person", "other"))

	firstProfile := decode[envelope[profileView]](t, s.do(http.MethodGet, "/users/profile", first, nil, nil))
	secondProfile := decode[envelope[profileView]](t, s.do(http.MethodGet, "/users/profile", second, nil, nil))

	assert.Equal(t, firstProfile.Data.ID, secondProfile.Data.ID)
	assert.Equal(t, "Ada", secondProfile.Data.Name)
	assert.Equal(t, int64(1), s.db.CountUsersByTgID(t, "42"))
}

func TestConcurrentFirstLoginsCreateOneUser(t *testing.T) {
	s := newTestServer(t)

	const workers = 8
	payloads := make([]string, workers)
	for i := range payloads {
		payloads[i] = signedInitData(777000111, "Race", "Condition", "racer")
	}

	codes := make([]int, workers)
	tokens := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := s.do(http.MethodPost, "/users/login", "", dto.LoginRequest{Key: payloads[i]}, nil)
			codes[i] = w.Code
			var body dto.TokenResponse
			if json.Unmarshal(w.Body.Bytes(), &body) == nil {
				tokens[i] = body.Token
			}
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "login %d", i)
	}
	assert.Equal(t, int64(1), s.db.CountUsersByTgID(t, "777000111"))

	ids := map[string]struct{}{}
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		profile := decode[envelope[profileView]](t, s.do(http.MethodGet, "/users/profile", tok, nil, nil))
		ids[profile.Data.ID] = struct{}{}
	}
	assert.Len(t, ids, 1)
}

func TestLoginRejections(t *testing.T) {
	s := newTestServer(t)

	tampered := strings.Replace(signedInitData(5, "Eve", "", "eve"), "Eve", "Mallory", 1)

	tests := []struct {
		name   string
		key    string
		status int
		code   int
	}{
		{name: "empty", key: "   ", status: http.StatusBadRequest, code: 4000},
		{name: "not init data", key: "hello world", status: http.StatusBadRequest, code: 4001},
		{name: "tampered", key: tampered, status: http.StatusUnauthorized, code: 4010},
		{name: "unsigned", key: "user=%7B%22id%22%3A5%7D&auth_date=" + strconv.FormatInt(time.Now().Unix(), 10), status: http.StatusUnauthorized, code: 4010},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/users/login", "", dto.LoginRequest{Key: tt.key}, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, w).Code)
		})
	}

	assert.Equal(t, int64(0), s.db.CountUsersByTgID(t, "5"))
}

func TestBlockedUserCannotLogin(t *testing.T) {
	s := newTestServer(t)
	s.db.CreateTestUser(t, "9001", "Blocked User", true, false)

	w := s.do(http.MethodPost, "/users/login", "", dto.LoginRequest{Key: signedInitData(9001, "Blocked", "User", "")}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/users/profile", "", nil, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/users/profile", "not-a-jwt", nil, nil).Code)
}

func TestRefreshIssuesTokenForSameUser(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, signedInitData(31337, "Leet", "", "leet"))

	w := s.do(http.MethodPost, "/users/refresh", tok, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	refreshed := decode[dto.TokenResponse](t, w).Token
	assert.NotEqual(t, tok, refreshed)

	before := decode[envelope[profileView]](t, s.do(http.MethodGet, "/users/profile", tok, nil, nil))
	after := decode[envelope[profileView]](t, s.do(http.MethodGet, "/users/profile", refreshed, nil, nil))
	assert.Equal(t, before.Data.ID, after.Data.ID)
}

func TestAdminListing(t *testing.T) {
	s := newTestServer(t)
	s.login(t, signedInitData(1, "First", "", "first"))
	s.login(t, signedInitData(2, "Second", "", "second"))
	s.db.CreateTestUser(t, "3", "Gone", false, true)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/users", "", nil, nil).Code)

	w := s.do(http.MethodGet, "/users", "", nil, map[string]string{middleware.AdminKeyHeader: testAdminKey})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[envelope[[]struct {
		TgID    string `json:"tgId"`
		Balance string `json:"balance"`
	}]](t, w)
	assert.Equal(t, "Users retrieved successfully", body.Msg)
	require.Len(t, body.Data, 2)
	for _, u := range body.Data {
		assert.NotEqual(t, "3", u.TgID)
		assert.Equal(t, "0.00", u.Balance)
	}
}

func TestKeyVaultLifecycle(t *testing.T) {
	s := newTestServer(t)
	owner := s.login(t, signedInitData(100, "Owner", "", "owner"))
	stranger := s.login(t, signedInitData(200, "Stranger", "", "stranger"))

	w := s.do(http.MethodPost, "/keys/create", owner, dto.CreateKeyRequest{Name: "Front door", Type: "gift"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[envelope[dto.KeyResponse]](t, w).Data
	assert.Equal(t, "gift", created.Type)
	assert.True(t, strings.HasPrefix(created.Value, "KEY_"))
	assert.True(t, created.IsActive)

	listed := decode[envelope[[]dto.KeyResponse]](t, s.do(http.MethodGet, "/keys/user", owner, nil, nil)).Data
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	strangerKeys := decode[envelope[[]dto.KeyResponse]](t, s.do(http.MethodGet, "/keys/user", stranger, nil, nil)).Data
	assert.Empty(t, strangerKeys)

	path := fmt.Sprintf("/keys/%s", created.ID)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, path, stranger, map[string]any{"name": "Mine now"}, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, path, stranger, nil, nil).Code)

	w = s.do(http.MethodPut, path, owner, map[string]any{"name": "Back door", "isActive": false}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[envelope[dto.KeyResponse]](t, w).Data
	assert.Equal(t, "Back door", updated.Name)
	assert.False(t, updated.IsActive)
	assert.Equal(t, created.Value, updated.Value)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/keys/create", owner, map[string]any{"type": "gift"}, nil).Code)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, path, owner, nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, path, owner, nil, nil).Code)

	remaining := decode[envelope[[]dto.KeyResponse]](t, s.do(http.MethodGet, "/keys/user", owner, nil, nil)).Data
	assert.Empty(t, remaining)
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", "", nil, map[string]string{middleware.RequestIDHeader: "probe-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "probe-1", w.Header().Get(middleware.RequestIDHeader))

	body := decode[dto.HealthResponse](t, w)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, database.DriverSQLite, body.Dialect)
}
