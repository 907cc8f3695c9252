package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/causeconnect-dev/causeconnect/internal/models"
	"github.com/sirupsen/logrus"
)

// CauseNotifier announces newly created causes to an external endpoint.
type CauseNotifier interface {
	CauseCreated(cause *models.Cause)
}

type causeCreatedPayload struct {
	Type        string `json:"type"`
	CauseID     uint   `json:"cause_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// WebhookNotifier posts cause-created events to a configured URL. The call is
// fire-and-forget: delivery failures are logged, never surfaced to the
// mutation that triggered them.
type WebhookNotifier struct {
	URL    string
	Client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL: url,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *WebhookNotifier) CauseCreated(cause *models.Cause) {
	if n == nil || n.URL == "" {
		return
	}

	payload := causeCreatedPayload{
		Type:        "cause_created",
		CauseID:     cause.ID,
		Name:        cause.Name,
		Description: cause.Description,
		CreatedAt:   cause.CreatedAt.Format(time.RFC3339),
	}

	go func() {
		if err := n.post(payload); err != nil {
			logrus.WithError(err).WithField("cause_id", cause.ID).Error("Failed to deliver cause webhook")
		}
	}()
}

func (n *WebhookNotifier) post(payload causeCreatedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := n.Client.Post(n.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
