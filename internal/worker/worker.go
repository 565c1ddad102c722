package worker

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/denmor86/calc-web/internal/logger"
	"github.com/sony/gobreaker"
)

// DefaultPollInterval - период обновления профиля и записей
const DefaultPollInterval = 5 * time.Second

// Reloader - перезагрузка профиля и текущей страницы записей
type Reloader interface {
	Reload(ctx context.Context, query url.Values) error
}

// Refresher - фоновое обновление данных дашборда
type Refresher struct {
	API          Reloader
	Breaker      *gobreaker.CircuitBreaker
	Query        func() url.Values
	OnReload     func(err error)
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
}

// NewRefresher - конструктор. query вызывается на каждом тике, чтобы учитывать
// текущую страницу и сортировку таблицы. Период по умолчанию DefaultPollInterval.
func NewRefresher(api Reloader, breaker *gobreaker.CircuitBreaker, query func() url.Values) *Refresher {
	return &Refresher{
		API:          api,
		Breaker:      breaker,
		Query:        query,
		QuitChan:     make(chan struct{}),
		PollInterval: DefaultPollInterval,
	}
}

// Start - запускает обновление в фоне
func (w *Refresher) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает обновление
func (w *Refresher) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основной цикл
func (w *Refresher) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	interval := w.PollInterval
	if interval <= 0 {
		logger.Warnw("non-positive refresh interval, using default", "interval", interval, "default", DefaultPollInterval)
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Debug("Refresher signal stop")
			return
		case <-ctx.Done():
			logger.Debug("Refresher context done")
			return
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

// Refresh - одно обновление. Пока предохранитель разомкнут, тик пропускается.
func (w *Refresher) Refresh(ctx context.Context) bool {
	if w.Breaker != nil && w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), "unavailable. Waiting...")
		return false
	}

	var query url.Values
	if w.Query != nil {
		query = w.Query()
	}
	err := w.API.Reload(ctx, query)
	if err != nil {
		logger.Error("refresh failed:", err)
	}
	if w.OnReload != nil {
		w.OnReload(err)
	}
	return true
}
