package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Get(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		client := NewClient(5*time.Second, logger)

		var out struct {
			OK bool `json:"ok"`
		}
		require.NoError(t, client.GetJSON(context.Background(), server.URL, &out))
		assert.True(t, out.OK)
	})

	t.Run("non 2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		client := NewClient(5*time.Second, logger)

		_, err := client.Get(context.Background(), server.URL)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "status: 502")
	})

	t.Run("invalid json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		client := NewClient(5*time.Second, logger)

		var out map[string]interface{}
		err := client.GetJSON(context.Background(), server.URL, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("unreachable host", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewClient(time.Second, logger)

		_, err := client.Get(context.Background(), url)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute request")
	})
}

func TestDecodeRecords(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr error
	}{
		{name: "array", body: `[{"id":1},{"id":2}]`, want: 2},
		{name: "data envelope", body: `{"data":[{"id":1}]}`, want: 1},
		{name: "non objects skipped", body: `[{"id":1}, 5, "x"]`, want: 1},
		{name: "empty array", body: `[]`, wantErr: ErrEmptyPayload},
		{name: "object without data", body: `{"items":[{"id":1}]}`, wantErr: ErrEmptyPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRecords([]byte(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}

	_, err := DecodeRecords([]byte(`nope`))
	assert.Error(t, err)
}
