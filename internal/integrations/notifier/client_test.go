package notifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

func testRecord() domain.BookingRecord {
	start := time.Date(2026, 3, 10, 11, 0, 0, 0, time.FixedZone("BRT", -3*60*60))
	return domain.BookingRecord{
		ID:        "7f0c2c1e-4d1b-4bb4-9b55-1a2b3c4d5e6f",
		StartTime: start,
		Date:      "2026-03-10",
		Time:      "11:00",
		PetName:   "Thor",
		OwnerName: "Ana",
		Whatsapp:  "11999990000",
		Service:   "Banho & Tosa",
		Weight:    "Até 5kg",
		Addons:    []string{"Hidratação"},
		Price:     domain.Reais(155),
	}
}

func TestNewPayload(t *testing.T) {
	payload := NewPayload(testRecord())

	assert.Equal(t, "2026-03-10T14:00:00Z", payload.StartTime)
	assert.Equal(t, 155.0, payload.Price)
	assert.Equal(t, []string{"Hidratação"}, payload.Addons)

	empty := testRecord()
	empty.Addons = nil
	assert.Equal(t, []string{}, NewPayload(empty).Addons)
}

func TestWebhookClient_Send(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL, time.Second, logger.NewNop())
	err := client.Send(context.Background(), NewPayload(testRecord()))

	require.NoError(t, err)
	assert.Equal(t, "Thor", got.PetName)
	assert.Equal(t, "Banho & Tosa", got.Service)
}

func TestWebhookClient_Send_EncodesEmptyAddons(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		body, err = io.ReadAll(r.Body)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	record := testRecord()
	record.Addons = nil
	client := NewWebhookClient(srv.URL, time.Second, logger.NewNop())
	require.NoError(t, client.Send(context.Background(), NewPayload(record)))

	assert.Contains(t, string(body), `"addons":[]`)
	assert.Contains(t, string(body), `"petName":"Thor"`)
}

func TestWebhookClient_Send_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow inactive", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL, time.Second, logger.NewNop())
	err := client.Send(context.Background(), NewPayload(testRecord()))

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "workflow inactive")
}

func TestSpreadsheetClient_AcceptsRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/echo", http.StatusFound)
	}))
	defer srv.Close()

	client := NewSpreadsheetClient(srv.URL, time.Second, logger.NewNop())

	assert.NoError(t, client.Send(context.Background(), NewPayload(testRecord())))
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewWebhookClient(url, time.Second, logger.NewNop())

	assert.ErrorIs(t, client.Send(context.Background(), NewPayload(testRecord())), ErrInternal)
}

func TestClient_Enabled(t *testing.T) {
	assert.False(t, NewWebhookClient("", time.Second, logger.NewNop()).Enabled())
	assert.True(t, NewSpreadsheetClient("http://sheet", time.Second, logger.NewNop()).Enabled())
}
