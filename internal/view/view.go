// Package view содержит модели представления клиента калькулятора:
// шапку с балансом, форму входа, таблицу записей и форму выполнения операции.
package view

import (
	"context"

	"github.com/denmor86/calc-web/internal/client"
	"github.com/denmor86/calc-web/internal/models"
)

// Loader - источник признака выполнения запроса
type Loader interface {
	Loading() bool
}

// UserSource - состояние профиля пользователя
type UserSource interface {
	Loader
	Result() models.User
}

// RecordsSource - постраничный ресурс записей
type RecordsSource interface {
	Loader
	Result() models.Page[models.Record]
	GetAction(ctx context.Context, opts *client.RequestOptions) (models.Page[models.Record], error)
}
