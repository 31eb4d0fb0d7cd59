// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/slaxamine/savvy-gemini-wallet/config"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/assistant"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/category"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/dashboard"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/transaction"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/wallet"
	"github.com/slaxamine/savvy-gemini-wallet/internal/infra/server/router"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/entrypoint/controller"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/entrypoint/middleware"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/persistence"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// Backing store
	redisServer *miniredis.Miniredis
	redisClient *redis.Client

	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disable the rate limiter and the assistant think delay
		os.Setenv("ENV", "test")
		os.Setenv("ASSISTANT_THINK_DELAY", "0")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			cfg: config.Load(),
		}
		if err := tc.startServer(); err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.redisClient != nil {
				_ = tc.redisClient.Close()
			}
			if tc.redisServer != nil {
				tc.redisServer.Close()
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerWalletSteps(ctx)
}

// startServer boots a fresh wallet API against an in-process Redis, wired
// exactly as in main.
func (tc *TestContext) startServer() error {
	mr, err := miniredis.Run()
	if err != nil {
		return fmt.Errorf("failed to start miniredis: %w", err)
	}
	tc.redisServer = mr
	tc.redisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	gateway := persistence.NewRedisGateway(tc.redisClient)
	session, err := persistence.NewSession(context.Background(), gateway, tc.cfg.Wallet.DefaultBalance)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	healthController := controller.NewHealthController(func() bool {
		return gateway.HealthCheck(context.Background())
	})
	walletController := controller.NewWalletController(
		wallet.NewGetSummaryUseCase(session, tc.cfg.Wallet.LowBalanceThreshold),
		wallet.NewUpdateBalanceUseCase(session),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(session, session),
		transaction.NewDeleteTransactionUseCase(session),
		transaction.NewListTransactionsUseCase(session, session),
	)
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(session),
		category.NewCreateCategoryUseCase(session),
		category.NewDeleteCategoryUseCase(session, session),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetTotalsUseCase(session),
		dashboard.NewGetCategoryBreakdownUseCase(session, session),
		dashboard.NewGetMonthlyOverviewUseCase(session),
		dashboard.NewGetExpensesOverTimeUseCase(session),
	)
	assistantController := controller.NewAssistantController(
		assistant.NewAnswerQuestionUseCase(session, session, tc.cfg.Wallet.Currency, tc.cfg.Assistant.ThinkDelay),
	)

	r := router.NewRouter(
		healthController,
		walletController,
		transactionController,
		categoryController,
		dashboardController,
		assistantController,
		middleware.NewRateLimiter(),
	)
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)
	return nil
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// registerWalletSteps registers wallet domain steps.
func registerWalletSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I record an? "([^"]*)" of (\S+) in the "([^"]*)" category$`, iRecordATransaction)
	ctx.Step(`^the wallet balance should be "([^"]*)"$`, theWalletBalanceShouldBe)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, bytes.NewBufferString(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

// iRecordATransaction creates a transaction through the API, resolving the
// category id by name first.
func iRecordATransaction(ctx context.Context, txnType, amount, categoryName string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	categoryID, err := tc.lookupCategoryID(categoryName)
	if err != nil {
		return ctx, err
	}

	payload := fmt.Sprintf(`{"amount": %q, "type": %q, "category_id": %q}`, amount, txnType, categoryID)
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(payload)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("failed to record transaction: status %d, body %s", tc.response.StatusCode, tc.responseBody)
	}
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) lookupCategoryID(name string) (string, error) {
	if err := tc.doRequest(http.MethodGet, "/api/v1/categories", nil); err != nil {
		return "", err
	}

	var payload struct {
		Categories []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return "", fmt.Errorf("failed to parse categories: %w", err)
	}
	for _, cat := range payload.Categories {
		if cat.Name == name {
			return cat.ID, nil
		}
	}
	return "", fmt.Errorf("category %q not found", name)
}

func theWalletBalanceShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(http.MethodGet, "/api/v1/wallet/summary", nil); err != nil {
		return err
	}

	var payload struct {
		Balance string `json:"balance"`
	}
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return fmt.Errorf("failed to parse summary: %w", err)
	}
	if payload.Balance != expected {
		return fmt.Errorf("expected balance %s, got %s", expected, payload.Balance)
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response unexpectedly contains '%s'. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	return nil
}
