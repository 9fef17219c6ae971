package hub

import "go.uber.org/zap"

// AttachLogger subscribes a zap-backed sink to the given event types and
// starts draining it. Used by the server for observability of domain
// mutations (user blocked, connection accepted, ...).
func AttachLogger(h *Hub, log *zap.Logger, eventTypes ...string) Subscriber {
	sub := make(Subscriber, 64)
	for _, et := range eventTypes {
		h.Subscribe(et, sub)
	}
	go func() {
		for event := range sub {
			log.Info("domain event",
				zap.String("type", event.Type),
				zap.Any("payload", event.Payload),
			)
		}
	}()
	return sub
}
