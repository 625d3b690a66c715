package domain

// Section groups spots in the console's listing view.
type Section struct {
	ID    uint   `json:"id"`
	Name  string `json:"nombre"`
	Order uint   `json:"seccion_order"`
}
