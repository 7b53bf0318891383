package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event)
}
