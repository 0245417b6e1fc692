//go:build integration

package integration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	stack        *stack
	response     *http.Response
	responseBody []byte
}

// newTestContext targets BASE_URL when set; otherwise each scenario gets
// its own in-process stack.
func newTestContext() *testContext {
	return &testContext{
		baseURL: os.Getenv("BASE_URL"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// reset clears response state between scenarios.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		tc.response.Body.Close()
	}

	tc.response = nil
	tc.responseBody = nil
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(sc *godog.ScenarioContext) {
	tc := newTestContext()
	external := tc.baseURL != ""

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()

		if external {
			return ctx, nil
		}

		s, err := newStack(ctx)
		if err != nil {
			return ctx, fmt.Errorf("starting in-process service: %w", err)
		}

		tc.stack = s
		tc.baseURL = s.server.URL

		return ctx, nil
	})

	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		tc.reset()

		if tc.stack != nil {
			tc.stack.Close()
			tc.stack = nil
		}

		return ctx, err
	})

	sc.Step(`^the service is running$`, tc.theServiceIsRunning)
	sc.Step(`^the remote serves the titles "([^"]*)"$`, tc.theRemoteServesTheTitles)
	sc.Step(`^the remote is down$`, tc.theRemoteIsDown)
	sc.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
	sc.Step(`^I send (POST|PUT) "([^"]*)"$`, tc.iSend)
	sc.Step(`^I send (POST|PUT) "([^"]*)" with body:$`, tc.iSendWithBody)
	sc.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	sc.Step(`^the response should contain ["'](.*)["']$`, tc.theResponseShouldContain)
	sc.Step(`^the response should not contain ["'](.*)["']$`, tc.theResponseShouldNotContain)
	sc.Step(`^the remote should have received (\d+) pushes?$`, tc.theRemoteShouldHaveReceivedPushes)
}

var errNeedsInProcess = errors.New("step needs the in-process service (unset BASE_URL)")

// theServiceIsRunning verifies the service is reachable.
func (tc *testContext) theServiceIsRunning() error {
	if err := tc.do(http.MethodGet, "/-/live", nil); err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}

	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("service liveness check failed with status %d", tc.response.StatusCode)
	}

	return nil
}

func (tc *testContext) theRemoteServesTheTitles(list string) error {
	if tc.stack == nil {
		return errNeedsInProcess
	}

	titles := strings.Split(list, ",")
	for i := range titles {
		titles[i] = strings.TrimSpace(titles[i])
	}

	tc.stack.remote.serveTitles(titles...)

	return nil
}

func (tc *testContext) theRemoteIsDown() error {
	if tc.stack == nil {
		return errNeedsInProcess
	}

	tc.stack.remote.setDown()

	return nil
}

func (tc *testContext) iRequestGET(path string) error {
	return tc.do(http.MethodGet, path, nil)
}

func (tc *testContext) iSend(method, path string) error {
	return tc.do(method, path, nil)
}

func (tc *testContext) iSendWithBody(method, path string, body *godog.DocString) error {
	return tc.do(method, path, []byte(body.Content))
}

func (tc *testContext) do(method, path string, body []byte) error {
	tc.reset()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	tc.response, err = tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	tc.responseBody, err = io.ReadAll(tc.response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// theResponseStatusShouldBe asserts the response status code.
func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return errors.New("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

// theResponseShouldContain asserts the response body contains the given text.
func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return errors.New("no response body")
	}

	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theResponseShouldNotContain(text string) error {
	if strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body unexpectedly contains %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theRemoteShouldHaveReceivedPushes(n int) error {
	if tc.stack == nil {
		return errNeedsInProcess
	}

	if got := tc.stack.remote.pushCount(); got != n {
		return fmt.Errorf("expected %d pushes, remote received %d", n, got)
	}

	return nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
