package calendar

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items   []T  `json:"data"`
	Page    int  `json:"-"`
	PerPage int  `json:"-"`
	HasNext bool `json:"-"`
	HasPrev bool `json:"-"`
	Total   int  `json:"total"`
}

// DefaultPerPage — размер страницы по умолчанию.
const DefaultPerPage = 10

// Paginate возвращает срез items для указанной страницы и метаданные.
// page нумеруется с 1. При некорректных значениях используются
// дефолты; страница за пределами коллекции даёт пустой срез.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	total := len(items)

	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * perPage
	if start > total {
		start = total
	}

	end := start + perPage
	if end > total {
		end = total
	}

	return Page[T]{
		Items:   items[start:end],
		Page:    page,
		PerPage: perPage,
		HasNext: end < total,
		HasPrev: page > 1,
		Total:   total,
	}
}
