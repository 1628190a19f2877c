package dto

// SearchResponse cuerpo de GET /api/search.
type SearchResponse struct {
	Products  []ProductResponse  `json:"products"`
	Movements []MovementResponse `json:"movements"`
}
