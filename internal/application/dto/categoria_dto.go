package dto

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}
