package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() InitiateRequest {
	return InitiateRequest{
		TxRef:  "ref-123",
		Amount: decimal.RequireFromString("18.00"),
		Email:  "shopper@example.com",
		Name:   "Test Shopper",
	}
}

func TestInitiateSuccess(t *testing.T) {
	var gotAuth, gotTxRef string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotTxRef, _ = payload["tx_ref"].(string)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "success",
			"message": "Hosted Link",
			"data":    map[string]string{"link": "https://checkout.test/abc"},
		})
	}))
	defer srv.Close()

	fw := NewFlutterwaveWithClient("sk_test", srv.URL, srv.Client(), 3, time.Millisecond)
	link, err := fw.Initiate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.test/abc", link.Link)
	assert.Equal(t, "ref-123", link.TxRef)
	assert.Equal(t, "Bearer sk_test", gotAuth)
	assert.Equal(t, "ref-123", gotTxRef)
}

func TestInitiateDeclinedNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"error","message":"Invalid currency"}`))
	}))
	defer srv.Close()

	fw := NewFlutterwaveWithClient("sk_test", srv.URL, srv.Client(), 3, time.Millisecond)
	_, err := fw.Initiate(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "declines must not be retried")
}

func TestInitiateErrorStatusBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"merchant suspended"}`))
	}))
	defer srv.Close()

	fw := NewFlutterwaveWithClient("sk_test", srv.URL, srv.Client(), 0, time.Millisecond)
	_, err := fw.Initiate(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Contains(t, err.Error(), "merchant suspended")
}

func TestInitiateTimeoutRetriesWithSameTxRef(t *testing.T) {
	var calls int32
	refs := make(chan string, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		if ref, ok := payload["tx_ref"].(string); ok {
			refs <- ref
		}
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	fw := NewFlutterwaveWithClient("sk_test", srv.URL, client, 2, time.Millisecond)

	_, err := fw.Initiate(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "one call plus two retries")

	close(refs)
	for ref := range refs {
		assert.Equal(t, "ref-123", ref, "tx_ref must be stable across retries")
	}
}

func TestInitiateTimeoutThenSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			time.Sleep(200 * time.Millisecond)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   map[string]string{"link": "https://checkout.test/retry"},
		})
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	fw := NewFlutterwaveWithClient("sk_test", srv.URL, client, 2, time.Millisecond)

	link, err := fw.Initiate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.test/retry", link.Link)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestInitiateCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	fw := NewFlutterwaveWithClient("sk_test", srv.URL, srv.Client(), 3, time.Second)
	_, err := fw.Initiate(ctx, testRequest())
	assert.ErrorIs(t, err, ErrTimeout)
}
