package ports

import "context"

// NotificationSink is the best-effort alerting capability used for low-stock
// warnings. Callers treat delivery as fire-and-forget: a send failure is
// logged and never propagated to the operation that triggered the alert.
type NotificationSink interface {
	Send(ctx context.Context, message string) error
}
