package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/denmor86/calc-web/internal/client"
	"github.com/denmor86/calc-web/internal/logger"
	"github.com/denmor86/calc-web/internal/models"
	"github.com/denmor86/calc-web/internal/session"
	"go.uber.org/multierr"
)

// Эндпоинты API калькулятора
const (
	ProfileEndpoint      = "/v1/profile"
	RecordsEndpoint      = "/v1/records"
	RecordEndpoint       = "/v1/records/:recordId"
	OperationsEndpoint   = "/v1/operations"
	SignInEndpoint       = "/v1/auth/sign-in"
	SignOutEndpoint      = "/v1/auth/sign-out"
	PerformOperationPath = RecordsEndpoint
)

var (
	ErrEmptySession = errors.New("sign-in returned empty session")
)

// API - набор действий, привязанных к эндпоинтам, и сценарии поверх них
type API struct {
	User             *client.Action[models.User]
	Records          *client.Action[models.Page[models.Record]]
	Operations       *client.Action[models.Page[models.Operation]]
	AuthSession      *client.Action[string]
	AuthLogout       *client.Action[struct{}]
	DeleteRecord     *client.Action[struct{}]
	PerformOperation *client.Action[models.Record]
	Session          *session.Store
}

// NewAPI - создание действий. Токен сессии берётся из sessions при каждом запросе.
func NewAPI(requester client.Requester, sessions *session.Store) *API {
	return &API{
		User:             client.NewAction(requester, ProfileEndpoint, models.User{}, client.WithResponse(client.Field("user"))),
		Records:          client.NewResource[models.Record](requester, RecordsEndpoint),
		Operations:       client.NewResource[models.Operation](requester, OperationsEndpoint),
		AuthSession:      client.NewAction(requester, SignInEndpoint, sessions.Token()),
		AuthLogout:       client.NewAction(requester, SignOutEndpoint, struct{}{}),
		DeleteRecord:     client.NewAction(requester, RecordEndpoint, struct{}{}, client.WithURL(client.PathParams)),
		PerformOperation: client.NewAction(requester, PerformOperationPath, models.Record{}),
		Session:          sessions,
	}
}

// SignIn - вход пользователя, полученный токен сохраняется в локальном хранилище
func (api *API) SignIn(ctx context.Context, email string, password string) error {
	logger.Info("Sign in user", email)

	token, err := api.AuthSession.PostAction(ctx, &client.RequestOptions{
		Data: models.SignInRequest{Email: email, Password: password},
	})
	if err != nil {
		logger.Warn("Sign in failed", email, err)
		return err
	}
	if token == "" {
		return ErrEmptySession
	}
	return api.Session.Save(ctx, token)
}

// SignOut - выход. Локальная сессия сбрасывается даже если сервер вернул ошибку.
func (api *API) SignOut(ctx context.Context) error {
	_, err := api.AuthLogout.PostAction(ctx, nil)
	if err != nil {
		logger.Warn("Sign out request failed", err)
	}
	return multierr.Append(err, api.Session.Clear(ctx))
}

// LoadProfile - профиль и баланс пользователя
func (api *API) LoadProfile(ctx context.Context) (models.User, error) {
	return api.User.GetAction(ctx, nil)
}

// LoadRecords - страница записей с параметрами сортировки и пагинации
func (api *API) LoadRecords(ctx context.Context, query url.Values) (models.Page[models.Record], error) {
	return api.Records.GetAction(ctx, &client.RequestOptions{Querystring: query})
}

// LoadOperations - каталог доступных операций
func (api *API) LoadOperations(ctx context.Context) (models.Page[models.Operation], error) {
	return api.Operations.GetAction(ctx, nil)
}

// Reload - обновление профиля и текущей страницы записей
func (api *API) Reload(ctx context.Context, query url.Values) error {
	_, profileErr := api.LoadProfile(ctx)
	_, recordsErr := api.LoadRecords(ctx, query)
	return multierr.Combine(profileErr, recordsErr)
}

// RemoveRecord - удаление записи и перезагрузка страницы с теми же параметрами
func (api *API) RemoveRecord(ctx context.Context, recordID string, params models.PaginatedParams) error {
	return api.Remove(ctx, recordID, params.Values())
}

// Remove - удаление записи и перезагрузка страницы по строке запроса, включая сортировку
func (api *API) Remove(ctx context.Context, recordID string, query url.Values) error {
	logger.Info("Delete record", recordID)

	_, err := api.DeleteRecord.DelAction(ctx, &client.RequestOptions{
		Params: map[string]string{"recordId": recordID},
	})
	if err != nil {
		logger.Warn("Delete record failed", recordID, err)
		return err
	}
	return api.Reload(ctx, query)
}

// Perform - выполнение операции, после успеха обновляются баланс и записи
func (api *API) Perform(ctx context.Context, req models.PerformOperationRequest, query url.Values) (models.Record, error) {
	logger.Info("Perform operation", req.OperationID)

	record, err := api.PerformOperation.PostAction(ctx, &client.RequestOptions{Data: req})
	if err != nil {
		logger.Warn("Perform operation failed", req.OperationID, err)
		return models.Record{}, err
	}
	return record, api.Reload(ctx, query)
}
