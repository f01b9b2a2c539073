package usecase

import "skillbarter/internal/domain/exchange"

// Notifier re-delivers write events to connected clients. Implementations
// must not block; the ws hub drops rather than stalls a handler.
type Notifier interface {
	ExchangeInitiated(e exchange.Exchange)
	MessageSent(e exchange.Exchange, m exchange.Message)
}
