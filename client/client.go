package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/teknopark/matchmaking-contract-tests/framework"
)

const (
	DefaultTimeout      = time.Second * 30
	RequestIDHeader     = "X-Request-Id"
	traceTruncateLength = 500
)

var supportedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch}

// Config contains the parameters for NewAPIClient.
type Config struct {
	// APIBaseURL is prepended to every request path, for instance "https://example.com/api".
	APIBaseURL string

	// Timeout bounds each request from start to the end of the response body. Zero means
	// DefaultTimeout.
	Timeout time.Duration

	// HTTPClient is used if not nil. Its Timeout is left alone if already set.
	HTTPClient *http.Client

	// Logger receives the request trace for calls to Send that do not specify their own
	// logger. Nil disables the trace.
	Logger framework.Logger
}

// APIClient sends requests to the matchmaking API. It never returns a Go error or panics for a
// failed call; every failure is reported in the Outcome.
type APIClient struct {
	apiBaseURL string
	http       *http.Client
	logger     framework.Logger
	newID      func() string
}

func NewAPIClient(config Config) *APIClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	} else if httpClient.Timeout == 0 {
		c := *httpClient
		c.Timeout = timeout
		httpClient = &c
	}
	logger := config.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &APIClient{
		apiBaseURL: strings.TrimSuffix(config.APIBaseURL, "/"),
		http:       httpClient,
		logger:     logger,
		newID:      uuid.NewString,
	}
}

// APIBaseURL returns the base URL that paths are appended to.
func (c *APIClient) APIBaseURL() string {
	return c.apiBaseURL
}

// Send makes a request and returns its outcome. The method must be GET, POST, or PATCH; any
// other method fails without a request being made. If body is not nil, it is serialized as
// JSON. If logger is nil, the client's own logger gets the trace.
func (c *APIClient) Send(method, path string, body interface{}, logger framework.Logger) (outcome Outcome) {
	if logger == nil {
		logger = c.logger
	}
	url := c.apiBaseURL + path
	outcome = Outcome{Method: method, URL: url}

	if !IsSupportedMethod(method) {
		outcome.Err = &UnsupportedMethodError{Method: method}
		logger.Printf("Not sending %s %s: %s", method, url, outcome.Err)
		return outcome
	}

	defer func() {
		if r := recover(); r != nil {
			outcome.Err = &TransportError{Method: method, URL: url, Err: fmt.Errorf("unexpected error: %v", r)}
			logger.Printf("Request failed: %s", outcome.Err)
		}
	}()

	var data []byte
	var reqBody io.Reader
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			outcome.Err = &EncodeError{Err: err}
			return outcome
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		outcome.Err = &TransportError{Method: method, URL: url, Err: err}
		return outcome
	}
	outcome.RequestID = c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, outcome.RequestID)
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Printf("Request: %s %s [%s]", method, url, outcome.RequestID)
	if data != nil {
		logger.Printf("Body: %s", truncate(string(data)))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		outcome.Err = &TransportError{Method: method, URL: url, Err: err}
		logger.Printf("Request failed: %s", err)
		return outcome
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	outcome.StatusCode = resp.StatusCode
	if err != nil {
		outcome.Err = &TransportError{Method: method, URL: url, Err: fmt.Errorf("error reading response body: %w", err)}
		logger.Printf("Request failed: %s", outcome.Err)
		return outcome
	}
	outcome.Raw = raw

	logger.Printf("Response Status: %d", resp.StatusCode)
	logger.Printf("Response: %s", truncate(string(raw)))

	if resp.StatusCode >= 400 {
		outcome.Err = &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
		return outcome
	}

	var parsed ldvalue.Value
	if err := json.Unmarshal(raw, &parsed); err != nil {
		outcome.Err = &DecodeError{Err: err}
		return outcome
	}
	outcome.Body = parsed
	return outcome
}

// IsSupportedMethod returns true for the HTTP methods that Send accepts.
func IsSupportedMethod(method string) bool {
	for _, m := range supportedMethods {
		if m == method {
			return true
		}
	}
	return false
}

func truncate(s string) string {
	if len(s) <= traceTruncateLength {
		return s
	}
	return s[:traceTruncateLength] + "..."
}
