// Package notify contains the outbound notification-provider adapters.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/navicula/navicula/internal/core/domain"
)

// IntegrationTypeVikunja is the integration tag Vikunja app links declare.
const IntegrationTypeVikunja = "vikunja"

// VikunjaProvider counts a user's unread Vikunja notifications: entries
// whose read_at marker is absent or empty.
type VikunjaProvider struct {
	client *http.Client
	log    zerolog.Logger
}

// NewVikunjaProvider creates a VikunjaProvider. client may be nil, in which
// case http.DefaultClient-equivalent settings are used; deadlines come from
// the caller's context.
func NewVikunjaProvider(client *http.Client, log zerolog.Logger) *VikunjaProvider {
	if client == nil {
		client = &http.Client{}
	}
	return &VikunjaProvider{client: client, log: log}
}

type vikunjaNotification struct {
	ReadAt string `json:"read_at"`
}

// FetchCount calls GET {base}/api/v1/notifications with the user's bearer
// credential and reduces the response to an unread count.
func (p *VikunjaProvider) FetchCount(ctx context.Context, app domain.AppLink, settings domain.SettingsBag) (int, error) {
	apiKey, ok := settings.Credential()
	if !ok {
		return 0, domain.ErrCredentialMissing
	}

	url := strings.TrimRight(app.URL, "/") + "/api/v1/notifications"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", domain.ErrProviderFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")

	p.log.Debug().Str("app_id", app.ID).Str("url", url).Msg("fetching vikunja notifications")

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, domain.ErrProviderTimeout
		}
		return 0, fmt.Errorf("%w: %v", domain.ErrProviderFetch, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return 0, domain.ErrProviderUnauthorized
	case resp.StatusCode != http.StatusOK:
		return 0, fmt.Errorf("%w: unexpected status %d", domain.ErrProviderFetch, resp.StatusCode)
	}

	var notifications []vikunjaNotification
	if err := json.NewDecoder(resp.Body).Decode(&notifications); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", domain.ErrProviderFetch, err)
	}

	unread := 0
	for _, n := range notifications {
		if n.ReadAt == "" {
			unread++
		}
	}
	return unread, nil
}
