package remote

import (
	"context"
	"fmt"
	"time"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
)

const headerProductionSecret = "X-Production-Secret"

// ProductionClient dispatches production requests to POST {baseURL}/produce.
type ProductionClient struct {
	poster jsonPoster
}

func NewProductionClient(baseURL, secret string, timeout time.Duration) *ProductionClient {
	return &ProductionClient{poster: newJSONPoster(baseURL, headerProductionSecret, secret, timeout)}
}

// Dispatch returns nil once the production service acknowledged the request.
func (c *ProductionClient) Dispatch(ctx context.Context, req port.ProductionRequest) error {
	if err := c.poster.post(ctx, "/produce", req); err != nil {
		return fmt.Errorf("dispatch autopilot %d: %w: %w", req.AutopilotID, domain.ErrRemoteFailure, err)
	}
	return nil
}

var _ port.ProductionDispatcher = (*ProductionClient)(nil)
