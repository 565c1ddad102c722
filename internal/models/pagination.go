package models

import (
	"net/url"
	"strconv"
)

// PaginatedParams - параметры запрашиваемой страницы
type PaginatedParams struct {
	Limit        int `json:"limit"`
	Skip         int `json:"skip"`
	SearchParams any `json:"searchParams,omitempty"`
}

// Values - параметры страницы в виде строки запроса
func (p PaginatedParams) Values() url.Values {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(p.Limit))
	values.Set("skip", strconv.Itoa(p.Skip))
	return values
}

// Page - страница списка с общим количеством элементов
type Page[T any] struct {
	PaginatedParams
	Result []T `json:"result"`
	Total  int `json:"total,omitempty"`
}

// EmptyPage - пустая страница, значение ресурса до первого ответа
func EmptyPage[T any]() Page[T] {
	return Page[T]{Result: []T{}}
}
