package remote

import (
	"context"
	"fmt"
	"time"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
)

const headerCallbackSecret = "X-Callback-Secret"

// CallbackClient notifies the lifecycle endpoint at POST {baseURL}/{action}.
type CallbackClient struct {
	poster jsonPoster
}

func NewCallbackClient(baseURL, secret string, timeout time.Duration) *CallbackClient {
	return &CallbackClient{poster: newJSONPoster(baseURL, headerCallbackSecret, secret, timeout)}
}

func (c *CallbackClient) Notify(ctx context.Context, action port.CallbackAction, req port.CallbackRequest) error {
	switch action {
	case port.CallbackApprove, port.CallbackRevert, port.CallbackDelete:
	default:
		return fmt.Errorf("callback action %q: %w", action, domain.ErrInvalidRequest)
	}
	if err := c.poster.post(ctx, "/"+string(action), req); err != nil {
		return fmt.Errorf("%s email %d: %w: %w", action, req.EmailID, domain.ErrRemoteFailure, err)
	}
	return nil
}

var _ port.EmailCallbackClient = (*CallbackClient)(nil)
