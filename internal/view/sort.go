package view

// Направления сортировки
const (
	SortDesc = "desc"
	SortAsc  = "asc"
)

// Sorting - сортировка таблицы: колонка и направление, пустые значения - без сортировки
type Sorting struct {
	OrderBy string
	SortBy  string
}

// Toggle - цикл по нажатию на заголовок: desc -> asc -> без сортировки.
// Нажатие на другую колонку начинает цикл заново.
func (s Sorting) Toggle(column string) Sorting {
	if s.OrderBy != column {
		return Sorting{OrderBy: column, SortBy: SortDesc}
	}
	switch s.SortBy {
	case SortDesc:
		return Sorting{OrderBy: column, SortBy: SortAsc}
	case SortAsc:
		return Sorting{}
	default:
		return Sorting{OrderBy: column, SortBy: SortDesc}
	}
}
