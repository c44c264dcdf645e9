// pkg/notify/telegram.go

package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"courtwatch/pkg/models"
)

// Telegram delivers availability summaries through the Telegram bot API.
type Telegram struct {
	config     *models.Config
	httpClient *http.Client
}

// NewTelegram creates a new Telegram notifier instance
func NewTelegram(config *models.Config) *Telegram {
	return &Telegram{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Telegram.TimeoutSeconds) * time.Second,
		},
	}
}

// Notify sends one message listing the given time ranges, one line per
// range. An empty list sends nothing and returns nil.
func (t *Telegram) Notify(ctx context.Context, slots []models.TimeRange) error {
	if len(slots) == 0 {
		return nil
	}

	form := url.Values{}
	form.Set("chat_id", t.config.Telegram.ChatID)
	form.Set("text", buildMessage(slots))

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage",
		strings.TrimSuffix(t.config.Telegram.APIURL, "/"),
		t.config.Telegram.BotToken,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

func buildMessage(slots []models.TimeRange) string {
	var b strings.Builder
	b.WriteString("New available times:")
	for _, slot := range slots {
		b.WriteString("\n")
		b.WriteString(slot.String())
	}
	return b.String()
}
