package client

import (
	"time"

	"github.com/denmor86/calc-web/internal/logger"
	"github.com/sony/gobreaker"
)

// DefaultBreakerFailures - число подряд идущих отказов до размыкания предохранителя
const DefaultBreakerFailures = 5

// NewCircuitBreaker - предохранитель вызовов API калькулятора
func NewCircuitBreaker(failures uint32) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "calculator-api",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}
