package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/denmor86/calc-web/internal/models"
	json "github.com/goccy/go-json"
)

// State - снимок состояния действия
type State[T any] struct {
	Loading bool
	Result  T
	Error   error
}

// ResponseTransform - преобразование поля result конверта ответа.
// Пустое значение означает "использовать result без изменений".
type ResponseTransform func(result json.RawMessage) json.RawMessage

// URLTransform - преобразование пути перед отправкой запроса
type URLTransform func(endpoint string, opts *RequestOptions) string

type actionOptions struct {
	response ResponseTransform
	url      URLTransform
}

type ActionOption func(*actionOptions)

// WithResponse - задаёт преобразование тела ответа
func WithResponse(transform ResponseTransform) ActionOption {
	return func(o *actionOptions) {
		o.response = transform
	}
}

// WithURL - задаёт преобразование пути
func WithURL(transform URLTransform) ActionOption {
	return func(o *actionOptions) {
		o.url = transform
	}
}

// Field - преобразование, выбирающее поле объекта result
func Field(name string) ResponseTransform {
	return func(result json.RawMessage) json.RawMessage {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(result, &fields); err != nil {
			return nil
		}
		return fields[name]
	}
}

// PathParams - подставляет значения opts.Params вместо :name в пути
func PathParams(endpoint string, opts *RequestOptions) string {
	if opts == nil {
		return endpoint
	}
	for name, value := range opts.Params {
		endpoint = strings.ReplaceAll(endpoint, ":"+name, url.PathEscape(value))
	}
	return endpoint
}

// Action - действие, привязанное к одному эндпоинту API, и его состояние
// loading/result/error. Состояние меняют только вызовы самого действия,
// конкурирующие вызовы не упорядочиваются: побеждает последний завершившийся.
type Action[T any] struct {
	client   Requester
	endpoint string
	options  actionOptions

	mu      sync.Mutex
	state   State[T]
	subs    map[int]func(State[T])
	nextSub int
}

// NewAction - создаёт действие для эндпоинта с начальным значением результата
func NewAction[T any](client Requester, endpoint string, defaultValue T, opts ...ActionOption) *Action[T] {
	a := &Action[T]{
		client:   client,
		endpoint: endpoint,
		state:    State[T]{Result: defaultValue},
		subs:     make(map[int]func(State[T])),
	}
	for _, opt := range opts {
		opt(&a.options)
	}
	return a
}

// NewResource - действие для постраничного списка, до первого ответа содержит пустую страницу
func NewResource[T any](client Requester, endpoint string, opts ...ActionOption) *Action[models.Page[T]] {
	return NewAction(client, endpoint, models.EmptyPage[T](), opts...)
}

func (a *Action[T]) GetAction(ctx context.Context, opts *RequestOptions) (T, error) {
	return a.do(ctx, http.MethodGet, opts)
}

func (a *Action[T]) PostAction(ctx context.Context, opts *RequestOptions) (T, error) {
	return a.do(ctx, http.MethodPost, opts)
}

func (a *Action[T]) DelAction(ctx context.Context, opts *RequestOptions) (T, error) {
	return a.do(ctx, http.MethodDelete, opts)
}

// State - текущий снимок состояния
func (a *Action[T]) State() State[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Action[T]) Loading() bool {
	return a.State().Loading
}

func (a *Action[T]) Result() T {
	return a.State().Result
}

func (a *Action[T]) Err() error {
	return a.State().Error
}

// Subscribe - подписка на изменения состояния. Возвращает функцию отписки.
func (a *Action[T]) Subscribe(fn func(State[T])) func() {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}
}

func (a *Action[T]) do(ctx context.Context, method string, opts *RequestOptions) (result T, err error) {
	a.update(func(s *State[T]) {
		s.Loading = true
	})
	// loading сбрасывается на любом пути выхода
	defer a.update(func(s *State[T]) {
		s.Loading = false
	})

	endpoint := a.endpoint
	if a.options.url != nil {
		endpoint = a.options.url(endpoint, opts)
	}

	resp, err := a.client.Send(ctx, method, endpoint, opts)
	if err != nil {
		return a.fail(err)
	}
	if !resp.OK() {
		return a.fail(NewResponseError(resp))
	}

	result, err = a.decode(resp.Body)
	if err != nil {
		return a.fail(fmt.Errorf("%s %s: %w", method, endpoint, err))
	}

	a.update(func(s *State[T]) {
		s.Result = result
		s.Error = nil
	})
	return result, nil
}

func (a *Action[T]) fail(err error) (T, error) {
	a.update(func(s *State[T]) {
		s.Error = err
	})
	var zero T
	return zero, err
}

// decode - разбирает конверт {"result": ...} и применяет преобразование
func (a *Action[T]) decode(body []byte) (T, error) {
	var result T
	if len(bytes.TrimSpace(body)) == 0 {
		return result, nil
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	raw := envelope.Result
	if a.options.response != nil {
		if transformed := a.options.response(raw); !isEmpty(transformed) {
			raw = transformed
		}
	}
	if isEmpty(raw) {
		return result, nil
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return result, nil
}

func isEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// update - изменяет состояние под блокировкой и уведомляет подписчиков
func (a *Action[T]) update(fn func(s *State[T])) {
	a.mu.Lock()
	fn(&a.state)
	snapshot := a.state
	subs := make([]func(State[T]), 0, len(a.subs))
	for _, sub := range a.subs {
		subs = append(subs, sub)
	}
	a.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}
