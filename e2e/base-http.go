package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poker-lab/infrastructure/rest"
	"poker-lab/repositories"
	"poker-lab/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config  Config
	baseURL string
	client  *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.client = &http.Client{Timeout: 10 * time.Second}
}

// SetupTest points the suite at SERVER_ADDR when provided, otherwise boots the
// whole stack (badger + service + REST routes) in-process on a throwaway store.
func (s *BaseHTTPSuite) SetupTest() {
	if s.Config.ServerAddr != "" {
		s.baseURL = s.Config.ServerAddr
		return
	}

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelError)
	repository := repositories.NewSessionRepository(db, log, 100)
	service := services.NewSessionService(log, repository, 3*time.Second)
	server := rest.NewSessionServer(log, service)

	ts := httptest.NewServer(rest.CORS([]string{"https://poker.example.com"})(server.Routes()))
	s.T().Cleanup(ts.Close)
	s.baseURL = ts.URL
}

// Step prints a colorized header for a scenario step in the logs
func (s *BaseHTTPSuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// Call issues a JSON request and decodes the JSON response body into out (when non nil).
// It returns the HTTP status code.
func (s *BaseHTTPSuite) Call(t *testing.T, method, path string, payload any, out any) int {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.baseURL+path, body)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	t.Logf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		t.Logf("  body: %s", raw)
	}

	if out != nil && len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, out))
	}
	return resp.StatusCode
}
