package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "digiteen-wallet/internal/adapter/http/handler"
	redisStorage "digiteen-wallet/internal/adapter/storage/redis"
	"digiteen-wallet/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedDigits = 1000

type testEnv struct {
	router       *gin.Engine
	redis        *miniredis.Miniredis
	teenRepo     *inmemTeenRepo
	walletRepo   *inmemWalletRepo
	activityRepo *inmemActivityRepo
	depositRepo  *inmemDepositRepo
}

func newTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := zerolog.Nop()

	env := &testEnv{
		redis:        s,
		teenRepo:     newInmemTeenRepo(),
		walletRepo:   newInmemWalletRepo(),
		activityRepo: newInmemActivityRepo(),
		depositRepo:  newInmemDepositRepo(),
	}
	invitationRepo := newInmemInvitationRepo()
	cardRepo := newInmemCardRepo()
	transactor := &memTransactor{}

	receiptCache := redisStorage.NewReceiptCache(client)
	changeFeed := redisStorage.NewChangeFeed(client, log)

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("integration-test-secret", time.Hour, "digiteen")

	authSvc := service.NewAuthService(env.teenRepo, env.walletRepo, hashSvc, tokenSvc, transactor, seedDigits, log)
	ledgerSvc := service.NewLedgerService(env.walletRepo, env.activityRepo, log)
	workflowSvc := service.NewWorkflowService(
		env.walletRepo, env.activityRepo, env.depositRepo,
		receiptCache, changeFeed, transactor, time.Hour, log,
	)
	invitationSvc := service.NewInvitationService(invitationRepo, env.teenRepo, changeFeed, log)
	cardSvc := service.NewCardService(cardRepo, invitationSvc, changeFeed, log)
	profileSvc := service.NewProfileService(env.teenRepo, cardRepo)

	env.router = httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:       authSvc,
		LedgerSvc:     ledgerSvc,
		WorkflowSvc:   workflowSvc,
		CardSvc:       cardSvc,
		InvitationSvc: invitationSvc,
		ProfileSvc:    profileSvc,
		TokenSvc:      tokenSvc,
		Logger:        log,
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func data(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	return envelope.Data
}

// registerAndLogin creates a teen through the API and returns a live token.
func (e *testEnv) registerAndLogin(t *testing.T, username string) string {
	w := e.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return data(t, w)["token"].(string)
}

func (e *testEnv) balance(t *testing.T, token string) (money, digits int64) {
	w := e.do(t, http.MethodGet, "/api/v1/wallet/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, w)
	return int64(d["money"].(float64)), int64(d["digits"].(float64))
}

func TestRegisterSeedsWallet(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	money, digits := env.balance(t, token)
	assert.Equal(t, int64(0), money, "wallets start with zero Toman")
	assert.Equal(t, int64(seedDigits), digits, "wallets start with the seed digit grant")
}

func TestChargeFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	w := env.do(t, http.MethodPost, "/api/v1/wallet/charge", token, map[string]int64{"amount": 50000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	receipt := data(t, w)
	assert.Equal(t, "success", receipt["status"])
	txID := receipt["transaction_id"].(string)
	assert.Regexp(t, `^CHG-\d+-[0-9A-Z]+$`, txID)

	money, _ := env.balance(t, token)
	assert.Equal(t, int64(50000), money)

	// The receipt is re-fetchable while its TTL lasts.
	w = env.do(t, http.MethodGet, "/api/v1/wallet/receipts/"+txID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, txID, data(t, w)["transaction_id"])

	// Ledger shows a single income activity.
	w = env.do(t, http.MethodGet, "/api/v1/wallet/activities", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), txID)
	assert.Contains(t, w.Body.String(), `"kind":"income"`)
}

func TestDepositRequestCreditsImmediately(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	w := env.do(t, http.MethodPost, "/api/v1/wallet/deposit-requests", token,
		map[string]any{"amount": 20000, "reason": "school trip"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "success", data(t, w)["status"])

	// Funds are available right away even though the audit row says requested.
	money, _ := env.balance(t, token)
	assert.Equal(t, int64(20000), money)

	requests := env.depositRepo.requests
	require.Len(t, requests, 1)
	assert.Equal(t, "school trip", requests[0].Reason)
	assert.Equal(t, "requested", string(requests[0].Status))
}

func TestTransferBoundary(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	w := env.do(t, http.MethodPost, "/api/v1/wallet/charge", token, map[string]int64{"amount": 50000})
	require.Equal(t, http.StatusOK, w.Code)

	// One Toman over the balance is rejected pre-mutation.
	w = env.do(t, http.MethodPost, "/api/v1/wallet/transfers/saving", token, map[string]int64{"amount": 50001})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "LED_001")

	money, _ := env.balance(t, token)
	assert.Equal(t, int64(50000), money, "a rejected transfer must not touch the balance")

	// Draining the wallet exactly is allowed.
	w = env.do(t, http.MethodPost, "/api/v1/wallet/transfers/saving", token, map[string]int64{"amount": 50000})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", data(t, w)["status"])

	money, _ = env.balance(t, token)
	assert.Equal(t, int64(0), money)
}

func TestPurchaseDigits(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	w := env.do(t, http.MethodPost, "/api/v1/wallet/charge", token, map[string]int64{"amount": 30000})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/wallet/digits/purchase", token,
		map[string]int64{"digits": 500, "price": 20000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Regexp(t, `^DGT-`, data(t, w)["transaction_id"])

	money, digits := env.balance(t, token)
	assert.Equal(t, int64(10000), money)
	assert.Equal(t, int64(seedDigits+500), digits)
}

func TestConservationAcrossWorkflows(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	steps := []struct {
		path string
		body map[string]int64
	}{
		{"/api/v1/wallet/charge", map[string]int64{"amount": 50000}},
		{"/api/v1/wallet/deposit-requests", map[string]int64{"amount": 20000}},
		{"/api/v1/wallet/transfers/saving", map[string]int64{"amount": 15000}},
		{"/api/v1/wallet/digits/purchase", map[string]int64{"digits": 500, "price": 20000}},
	}
	for _, step := range steps {
		w := env.do(t, http.MethodPost, step.path, token, step.body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := env.do(t, http.MethodGet, "/api/v1/wallet/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := data(t, w)
	income := int64(stats["total_income"].(float64))
	expense := int64(stats["total_expense"].(float64))
	count := int64(stats["transactions_count"].(float64))

	assert.Equal(t, int64(70000), income)
	assert.Equal(t, int64(35000), expense)
	assert.Equal(t, int64(4), count)

	// Money balance must equal the signed sum of the full ledger.
	money, _ := env.balance(t, token)
	assert.Equal(t, income-expense, money)
}

func TestCardLifecycleBehindInvitationGate(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	// Gate closed: no invitation yet.
	w := env.do(t, http.MethodPost, "/api/v1/cards/request", token, map[string]string{"design_id": "ocean"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "GATE_001")

	w = env.do(t, http.MethodGet, "/api/v1/cards", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "none", data(t, w)["status"])

	// Invite a parent; the gate opens.
	w = env.do(t, http.MethodPost, "/api/v1/invitations", token, map[string]string{"phone_number": "0912 345 6789"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	inviteCode := data(t, w)["invite_code"].(string)
	assert.Regexp(t, `^DIGI-[0-9A-Z]{6}$`, inviteCode)

	w = env.do(t, http.MethodPost, "/api/v1/cards/request", token, map[string]string{"design_id": "ocean"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "pending", data(t, w)["status"])

	// Activation out of order is a conflict.
	w = env.do(t, http.MethodPost, "/api/v1/cards/activate", token, map[string]string{"card_number": "6037991234567890"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "GATE_002")

	w = env.do(t, http.MethodPost, "/api/v1/cards/approve", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "approved", data(t, w)["status"])

	// Malformed number leaves the card approved.
	w = env.do(t, http.MethodPost, "/api/v1/cards/activate", token, map[string]string{"card_number": "1234"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_003")

	w = env.do(t, http.MethodPost, "/api/v1/cards/activate", token, map[string]string{"card_number": "6037-9912-3456-7890"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	card := data(t, w)
	assert.Equal(t, "activated", card["status"])
	assert.Equal(t, "6037 9912 3456 7890", card["card_number"])

	// The profile now reflects the physical card.
	w = env.do(t, http.MethodGet, "/api/v1/teens/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := data(t, w)
	assert.Equal(t, true, profile["has_card"])
	assert.Equal(t, inviteCode, profile["invite_code"])
}

func TestReceiptExpiresWithTTL(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	w := env.do(t, http.MethodPost, "/api/v1/wallet/charge", token, map[string]int64{"amount": 50000})
	require.Equal(t, http.StatusOK, w.Code)
	txID := data(t, w)["transaction_id"].(string)

	env.redis.FastForward(2 * time.Hour)

	w = env.do(t, http.MethodGet, "/api/v1/wallet/receipts/"+txID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "LED_002")
}

func TestActivitiesLimit(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	for i := 0; i < 5; i++ {
		w := env.do(t, http.MethodPost, "/api/v1/wallet/charge", token, map[string]int64{"amount": 1000})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(t, http.MethodGet, "/api/v1/wallet/activities?limit=3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 3)
}

func TestDuplicateUsernameRejected(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "sara_81")

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "sara_81",
		"password": "another-password",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestWalletVersionIncrements(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "sara_81")

	w := env.do(t, http.MethodGet, "/api/v1/wallet/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	before := int64(data(t, w)["version"].(float64))

	for i := 0; i < 3; i++ {
		w = env.do(t, http.MethodPost, "/api/v1/wallet/charge", token, map[string]int64{"amount": 1000})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/v1/wallet/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	after := int64(data(t, w)["version"].(float64))
	assert.Equal(t, before+3, after, fmt.Sprintf("version %d should advance by one per write", before))
}
