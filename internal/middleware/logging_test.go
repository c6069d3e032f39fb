package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/pkg/api"
)

// captureLogs routes the default logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingInterceptor(t *testing.T) {
	req := connect.NewRequest(&ping{})

	t.Run("success", func(t *testing.T) {
		logs := captureLogs(t)
		call := LoggingInterceptor()(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
			return connect.NewResponse(&ping{}), nil
		})

		_, err := call(context.Background(), req)
		require.NoError(t, err)
		assert.Contains(t, logs.String(), "level=INFO")
		assert.Contains(t, logs.String(), `msg="RPC ok"`)
	})

	t.Run("domain error logs kind at warn", func(t *testing.T) {
		logs := captureLogs(t)
		call := LoggingInterceptor()(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
			cerr := connect.NewError(connect.CodePermissionDenied, errors.New("not yours"))
			cerr.Meta().Set(api.ErrorKindHeader, "UserNotInBill")
			return nil, cerr
		})

		_, err := call(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, logs.String(), "level=WARN")
		assert.Contains(t, logs.String(), "code=permission_denied")
		assert.Contains(t, logs.String(), "error_kind=UserNotInBill")
	})

	t.Run("internal error logs at error", func(t *testing.T) {
		logs := captureLogs(t)
		call := LoggingInterceptor()(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
			return nil, errors.New("disk on fire")
		})

		_, err := call(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, logs.String(), "level=ERROR")
		assert.Contains(t, logs.String(), "disk on fire")
		assert.NotContains(t, logs.String(), "error_kind")
	})
}

func TestLoggingHandlerRecordsStatus(t *testing.T) {
	logs := captureLogs(t)
	h := LoggingHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, logs.String(), "status=404")
	assert.Contains(t, logs.String(), "path=/nowhere")
}
