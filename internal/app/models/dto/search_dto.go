package dto

// SearchRequest carries the free-text query and optional category filter.
// Category matches a category name for photos and a document type for
// documents.
type SearchRequest struct {
	Query    string `form:"q"`
	Category string `form:"category"`
}

// SearchResponse returns one result list per entity kind
type SearchResponse struct {
	Photos    []PhotoResponse    `json:"photos"`
	Rewards   []RewardResponse   `json:"rewards"`
	Documents []DocumentResponse `json:"documents"`
}
