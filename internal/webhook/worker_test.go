package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewWebhookWorker(nil, logger, cfg)
}

func testEvent(t *testing.T) (IncidentEvent, string) {
	alertID := int64(7)
	alert := &models.Alert{ID: alertID, Type: "crime", Location: "22.4865,88.3136"}
	incident := &models.Incident{
		ID:             3,
		AlertID:        &alertID,
		Station:        "Behala Police Station",
		SenderUsername: "alice",
		Details:        "theft",
		DateTime:       time.Date(2025, 9, 20, 10, 15, 0, 0, time.UTC),
	}
	event := NewIncidentEvent(alert, incident)
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestProcessWebhookEvent_DeliveredWithSignature(t *testing.T) {
	event, payload := testEvent(t)

	var gotSignature, gotStation string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotStation = r.Header.Get("X-Station")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	ok := worker.processWebhookEvent(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	assert.Equal(t, "Behala Police Station", gotStation)
	assert.JSONEq(t, payload, string(gotBody))
}

func TestProcessWebhookEvent_RetriesUntilSuccess(t *testing.T) {
	event, payload := testEvent(t)

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.True(t, worker.processWebhookEvent(context.Background(), event, payload))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_GivesUp(t *testing.T) {
	event, payload := testEvent(t)

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.False(t, worker.processWebhookEvent(context.Background(), event, payload))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	event, payload := testEvent(t)
	worker := newTestWorker(&config.Config{WebhookMaxRetries: 3})

	assert.False(t, worker.processWebhookEvent(context.Background(), event, payload))
}

func TestNewIncidentEvent(t *testing.T) {
	event, _ := testEvent(t)

	assert.Equal(t, int64(3), event.IncidentID)
	require.NotNil(t, event.AlertID)
	assert.Equal(t, int64(7), *event.AlertID)
	assert.Equal(t, "crime", event.AlertType)
	assert.Equal(t, "22.4865,88.3136", event.Location)
}
