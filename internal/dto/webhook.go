package dto

// WebhookEvent is the WhatsApp Cloud API webhook envelope. Only the fields
// the pipeline needs are mapped; everything else is ignored.
type WebhookEvent struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []WebhookMessage `json:"messages"`
	Statuses         []WebhookStatus  `json:"statuses"`
}

type WebhookMessage struct {
	From string       `json:"from"`
	ID   string       `json:"id"`
	Type string       `json:"type"`
	Text *WebhookText `json:"text"`
}

type WebhookText struct {
	Body string `json:"body"`
}

// WebhookStatus is a delivery/read receipt; carried only so status events
// can be recognized and acknowledged silently.
type WebhookStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// FirstTextMessage walks the envelope and returns the first inbound text
// message (sender id, body). ok is false for status-only events and
// non-text messages.
func (e *WebhookEvent) FirstTextMessage() (senderID, text string, ok bool) {
	for _, entry := range e.Entry {
		for _, change := range entry.Changes {
			for _, message := range change.Value.Messages {
				if message.Type == "text" && message.Text != nil {
					return message.From, message.Text.Body, true
				}
			}
		}
	}
	return "", "", false
}

// WebhookAckResponse is the body returned to the webhook caller
type WebhookAckResponse struct {
	Status string `json:"status"`
}
