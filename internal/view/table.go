package view

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/denmor86/calc-web/internal/client"
	"github.com/denmor86/calc-web/internal/models"
)

// EmptyRecordsMessage - текст пустой таблицы
const EmptyRecordsMessage = "No records found"

var (
	ErrUnknownColumn = errors.New("unknown column")
)

// Column - сортируемая колонка таблицы записей
type Column struct {
	Key   string
	Title string
}

// Columns - колонки таблицы записей в порядке отображения
var Columns = []Column{
	{Key: "operationType", Title: "Operation"},
	{Key: "cost", Title: "Cost"},
	{Key: "operationResult", Title: "Result"},
	{Key: "date", Title: "Date"},
}

// DeleteFunc - обработчик удаления записи, получает параметры текущей страницы
type DeleteFunc func(ctx context.Context, recordID string, params models.PaginatedParams) error

// RecordsTable - таблица записей: пагинация, сортировка, удаление
type RecordsTable struct {
	records  RecordsSource
	onDelete DeleteFunc
	limit    int
	skip     int
	sorting  Sorting
}

func NewRecordsTable(records RecordsSource, onDelete DeleteFunc, limit int) *RecordsTable {
	return &RecordsTable{records: records, onDelete: onDelete, limit: limit}
}

// Params - параметры текущей страницы
func (t *RecordsTable) Params() models.PaginatedParams {
	return models.PaginatedParams{Limit: t.limit, Skip: t.skip}
}

func (t *RecordsTable) Sorting() Sorting {
	return t.sorting
}

// Query - строка запроса страницы с сортировкой
func (t *RecordsTable) Query() url.Values {
	query := t.Params().Values()
	query.Set("orderBy", t.sorting.OrderBy)
	query.Set("sortBy", t.sorting.SortBy)
	return query
}

// Load - запрос текущей страницы
func (t *RecordsTable) Load(ctx context.Context) error {
	_, err := t.records.GetAction(ctx, &client.RequestOptions{Querystring: t.Query()})
	return err
}

// SortBy - нажатие на заголовок колонки, страница сбрасывается на первую
func (t *RecordsTable) SortBy(ctx context.Context, column string) error {
	if !slices.ContainsFunc(Columns, func(c Column) bool { return c.Key == column }) {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	t.sorting = t.sorting.Toggle(column)
	t.skip = 0
	return t.Load(ctx)
}

// SetSorting - явная установка сортировки без цикла
func (t *RecordsTable) SetSorting(sorting Sorting) {
	t.sorting = sorting
}

// SetSkip - переход к произвольному смещению без запроса
func (t *RecordsTable) SetSkip(skip int) {
	if skip < 0 {
		skip = 0
	}
	t.skip = skip
}

func (t *RecordsTable) pageLimit(page models.Page[models.Record]) int {
	if page.Limit > 0 {
		return page.Limit
	}
	return t.limit
}

// CanBack - кнопка "назад" активна, если страница не первая
func (t *RecordsTable) CanBack() bool {
	return t.records.Result().Skip > 0
}

// CanNext - кнопка "вперёд" активна, если за страницей есть записи
func (t *RecordsTable) CanNext() bool {
	page := t.records.Result()
	return page.Skip+t.pageLimit(page) < page.Total
}

// Next - переход на следующую страницу. Возвращает false, если кнопка неактивна.
func (t *RecordsTable) Next(ctx context.Context) (bool, error) {
	if !t.CanNext() {
		return false, nil
	}
	page := t.records.Result()
	t.skip = page.Skip + t.pageLimit(page)
	return true, t.Load(ctx)
}

// Back - переход на предыдущую страницу. Возвращает false, если кнопка неактивна.
func (t *RecordsTable) Back(ctx context.Context) (bool, error) {
	if !t.CanBack() {
		return false, nil
	}
	page := t.records.Result()
	t.skip = max(page.Skip-t.pageLimit(page), 0)
	return true, t.Load(ctx)
}

// Delete - удаление записи через обработчик с параметрами текущей страницы
func (t *RecordsTable) Delete(ctx context.Context, recordID string) error {
	return t.onDelete(ctx, recordID, t.Params())
}

// Empty - на странице нет записей
func (t *RecordsTable) Empty() bool {
	return len(t.records.Result().Result) == 0
}

// Loading - идёт загрузка страницы
func (t *RecordsTable) Loading() bool {
	return t.records.Loading()
}

// Summary - подпись пагинации: "11-20 of 21"
func (t *RecordsTable) Summary() string {
	page := t.records.Result()
	if len(page.Result) == 0 {
		return "0 of " + strconv.Itoa(page.Total)
	}
	from := page.Skip + 1
	to := page.Skip + len(page.Result)
	return fmt.Sprintf("%d-%d of %d", from, to, page.Total)
}

// Rows - строки текущей страницы для отображения
func (t *RecordsTable) Rows() []RecordRow {
	page := t.records.Result()
	rows := make([]RecordRow, 0, len(page.Result))
	for _, record := range page.Result {
		rows = append(rows, NewRecordRow(record))
	}
	return rows
}
