package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	err      error
	senderID string
	text     string
	calls    int
}

func (f *fakePipeline) HandleMessage(ctx context.Context, senderID, text string) error {
	f.calls++
	f.senderID = senderID
	f.text = text
	return f.err
}

func webhookTextEvent(from, body string) string {
	return `{
		"object": "whatsapp_business_account",
		"entry": [{
			"id": "1",
			"changes": [{
				"field": "messages",
				"value": {
					"messaging_product": "whatsapp",
					"messages": [{
						"from": "` + from + `",
						"id": "wamid.1",
						"type": "text",
						"text": {"body": "` + body + `"}
					}]
				}
			}]
		}]
	}`
}

func newWebhookContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestVerify_MatchingToken(t *testing.T) {
	handler := NewWebhookHandler(&fakePipeline{}, "secret-token", zerolog.Nop())
	c, rec := newWebhookContext(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345", "")

	require.NoError(t, handler.Verify(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12345", rec.Body.String())
}

func TestVerify_WrongToken(t *testing.T) {
	handler := NewWebhookHandler(&fakePipeline{}, "secret-token", zerolog.Nop())
	c, rec := newWebhookContext(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", "")

	require.NoError(t, handler.Verify(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestVerify_WrongMode(t *testing.T) {
	handler := NewWebhookHandler(&fakePipeline{}, "secret-token", zerolog.Nop())
	c, rec := newWebhookContext(http.MethodGet,
		"/webhook?hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=12345", "")

	require.NoError(t, handler.Verify(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReceive_TextMessageProcessed(t *testing.T) {
	pipeline := &fakePipeline{}
	handler := NewWebhookHandler(pipeline, "secret-token", zerolog.Nop())
	c, rec := newWebhookContext(http.MethodPost, "/webhook",
		webhookTextEvent("5511999990000", "gastei 50 no almoço"))

	require.NoError(t, handler.Receive(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"processed"}`, rec.Body.String())
	assert.Equal(t, 1, pipeline.calls)
	assert.Equal(t, "5511999990000", pipeline.senderID)
	assert.Equal(t, "gastei 50 no almoço", pipeline.text)
}

func TestReceive_StatusOnlyEventIgnored(t *testing.T) {
	pipeline := &fakePipeline{}
	handler := NewWebhookHandler(pipeline, "secret-token", zerolog.Nop())
	statusEvent := `{
		"object": "whatsapp_business_account",
		"entry": [{
			"id": "1",
			"changes": [{
				"field": "messages",
				"value": {
					"messaging_product": "whatsapp",
					"statuses": [{"id": "wamid.1", "status": "delivered"}]
				}
			}]
		}]
	}`
	c, rec := newWebhookContext(http.MethodPost, "/webhook", statusEvent)

	require.NoError(t, handler.Receive(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ignored"}`, rec.Body.String())
	assert.Zero(t, pipeline.calls)
}

func TestReceive_MalformedPayloadIgnored(t *testing.T) {
	pipeline := &fakePipeline{}
	handler := NewWebhookHandler(pipeline, "secret-token", zerolog.Nop())
	c, rec := newWebhookContext(http.MethodPost, "/webhook", "{not json")

	require.NoError(t, handler.Receive(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ignored"}`, rec.Body.String())
	assert.Zero(t, pipeline.calls)
}

func TestReceive_PipelineErrorStillAcks200(t *testing.T) {
	pipeline := &fakePipeline{err: errors.New("database unavailable")}
	handler := NewWebhookHandler(pipeline, "secret-token", zerolog.Nop())
	c, rec := newWebhookContext(http.MethodPost, "/webhook",
		webhookTextEvent("5511999990000", "gastei 50"))

	require.NoError(t, handler.Receive(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"error"}`, rec.Body.String())
}

func TestReceive_NonTextMessageIgnored(t *testing.T) {
	pipeline := &fakePipeline{}
	handler := NewWebhookHandler(pipeline, "secret-token", zerolog.Nop())
	imageEvent := `{
		"object": "whatsapp_business_account",
		"entry": [{
			"id": "1",
			"changes": [{
				"field": "messages",
				"value": {
					"messaging_product": "whatsapp",
					"messages": [{"from": "5511999990000", "id": "wamid.1", "type": "image"}]
				}
			}]
		}]
	}`
	c, rec := newWebhookContext(http.MethodPost, "/webhook", imageEvent)

	require.NoError(t, handler.Receive(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ignored"}`, rec.Body.String())
	assert.Zero(t, pipeline.calls)
}
