package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-desk/internal/models"
	"weather-desk/internal/repositories"
	"weather-desk/pkg/logger"
)

// MockService implements Service for testing
type MockService struct {
	mu      sync.Mutex
	report  models.Report
	err     error
	saves   []string
	calls   []string
	lookups int
}

func (m *MockService) Lookup(ctx context.Context, city string) (models.Report, error) {
	m.record("lookup:" + city)
	if m.err != nil {
		return models.Report{}, m.err
	}
	return m.report, nil
}

func (m *MockService) Random(ctx context.Context) (models.Report, error) {
	m.record("random")
	return m.report, m.err
}

func (m *MockService) Save(ctx context.Context, city string) (string, error) {
	m.record("save:" + city)
	if m.err != nil {
		return "", m.err
	}
	return "saves/06.05.24-" + city + "-PL.json", nil
}

func (m *MockService) Open(name string) (models.Report, error) {
	m.record("open:" + name)
	return m.report, m.err
}

func (m *MockService) OpenFile(path string) (models.Report, error) {
	m.record("openfile:" + path)
	return m.report, m.err
}

func (m *MockService) ListSaves() ([]string, error) {
	return m.saves, m.err
}

func (m *MockService) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
	if strings.HasPrefix(call, "lookup:") {
		m.lookups++
	}
}

func (m *MockService) lookupCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookups
}

// syncBuffer guards output written from scheduler goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testReport() models.Report {
	return models.Report{
		City:        "Kraków",
		Country:     "Poland",
		Timezone:    "UTC+2.00",
		Date:        "06.05",
		Time:        "12:00",
		Description: "zachmurzenie umiarkowane",
		Temperature: "18°C",
		Humidity:    "63%",
		Pressure:    "1016hPa",
		Wind:        "3.6m/s",
		Sunrise:     "05:40",
		Sunset:      "20:25",
		Days: []models.DayReport{
			{Date: "today", Temperature: "19°C", Weather: "Clouds"},
			{Date: "07.05", Temperature: "21°C", Weather: "Rain"},
		},
	}
}

func run(t *testing.T, ctx context.Context, service Service, serve ServeFunc, args ...string) (string, error) {
	t.Helper()
	out := &syncBuffer{}

	root := New(service, serve, logger.NewZapLogger("test-app", io.Discard))
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := Execute(ctx, root)
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	service := &MockService{report: testReport()}

	out, err := run(t, context.Background(), service, nil, "lookup", "Nowy", "Sącz")
	require.NoError(t, err)

	assert.Equal(t, []string{"lookup:Nowy Sącz"}, service.calls)
	assert.Contains(t, out, "Kraków, Poland (UTC+2.00)")
	assert.Contains(t, out, "06.05  12:00")
	assert.Contains(t, out, "Sunrise      05:40")
	assert.Contains(t, out, "today")
	assert.Contains(t, out, "07.05")
}

func TestLookupCommand_ProviderError(t *testing.T) {
	service := &MockService{err: &repositories.ProviderError{Code: "404", Message: "city not found"}}

	out, err := run(t, context.Background(), service, nil, "lookup", "Atlantyda")
	require.Error(t, err)
	assert.Contains(t, out, "There was problem: city not found\n")
}

func TestLookupCommand_RequiresCity(t *testing.T) {
	out, err := run(t, context.Background(), &MockService{}, nil, "lookup")
	require.Error(t, err)
	assert.Contains(t, out, "There was problem:")
}

func TestRandomCommand(t *testing.T) {
	service := &MockService{report: testReport()}

	_, err := run(t, context.Background(), service, nil, "random")
	require.NoError(t, err)
	assert.Equal(t, []string{"random"}, service.calls)
}

func TestSaveCommand(t *testing.T) {
	service := &MockService{report: testReport()}

	out, err := run(t, context.Background(), service, nil, "save", "Kraków")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved to saves/06.05.24-Kraków-PL.json")
}

func TestOpenCommand(t *testing.T) {
	service := &MockService{report: testReport()}

	_, err := run(t, context.Background(), service, nil, "open", "06.05.24-Kraków-PL.json")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "day.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err = run(t, context.Background(), service, nil, "open", path)
	require.NoError(t, err)

	assert.Equal(t, []string{"open:06.05.24-Kraków-PL.json", "openfile:" + path}, service.calls)
}

func TestOpenCommand_NotFound(t *testing.T) {
	service := &MockService{err: repositories.ErrSaveNotFound}

	out, err := run(t, context.Background(), service, nil, "open", "nope.json")
	assert.ErrorIs(t, err, repositories.ErrSaveNotFound)
	assert.Contains(t, out, "There was problem: "+repositories.ErrSaveNotFound.Error())
}

func TestSavesCommand(t *testing.T) {
	out, err := run(t, context.Background(), &MockService{saves: []string{"a.json", "b.json"}}, nil, "saves")
	require.NoError(t, err)
	assert.Equal(t, "a.json\nb.json\n", out)

	out, err = run(t, context.Background(), &MockService{}, nil, "saves")
	require.NoError(t, err)
	assert.Equal(t, "No saves yet\n", out)
}

func TestServeCommand(t *testing.T) {
	called := false
	serve := func(ctx context.Context) error {
		called = true
		return nil
	}

	_, err := run(t, context.Background(), &MockService{}, serve, "serve")
	require.NoError(t, err)
	assert.True(t, called)

	_, err = run(t, context.Background(), &MockService{}, nil, "serve")
	assert.Error(t, err)
}

func TestWatchCommand(t *testing.T) {
	service := &MockService{report: testReport()}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	root := New(service, nil, logger.NewZapLogger("test-app", io.Discard))
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"watch", "Kraków", "--every", "1h"})

	done := make(chan error, 1)
	go func() {
		done <- Execute(ctx, root)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Kraków, Poland")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}

	assert.Equal(t, 1, service.lookupCount())
}

func TestWatchCommand_BadInterval(t *testing.T) {
	_, err := run(t, context.Background(), &MockService{}, nil, "watch", "Kraków", "--every", "0s")
	assert.ErrorIs(t, err, errBadInterval)
}

func TestWatch_ReportsLookupErrors(t *testing.T) {
	service := &MockService{err: errors.New("timeout")}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, time.Hour, logger.NewZapLogger("test-app", io.Discard), func(ctx context.Context) {
			if _, err := service.Lookup(ctx, "Kraków"); err != nil {
				_, _ = out.Write([]byte("There was problem: " + Message(err) + "\n"))
			}
		})
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "There was problem: timeout")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRender_Warning(t *testing.T) {
	r := testReport()
	r.Days = nil
	r.Warning = "Invalid API key. (code 401)"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r))
	assert.Contains(t, buf.String(), "Forecast unavailable: Invalid API key. (code 401)")
	assert.NotContains(t, buf.String(), "today")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Invalid API key.", Message(&repositories.ProviderError{Code: "401", Message: "Invalid API key."}))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
