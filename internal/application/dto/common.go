package dto

// Respuesta envelope estándar de la API: { data, meta? }.
type Respuesta struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta metadatos de la respuesta (paginación).
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination metadatos de página en listados.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// NewPagination calcula pageCount a partir del total y el tamaño de página.
func NewPagination(page, pageSize, total int) *Pagination {
	pageCount := 0
	if pageSize > 0 {
		pageCount = (total + pageSize - 1) / pageSize
	}
	return &Pagination{Page: page, PageSize: pageSize, PageCount: pageCount, Total: total}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
