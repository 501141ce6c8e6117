package response_models

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type SystemStats struct {
	ProductCount  int64           `json:"product_count"`
	TopCategories []CategoryCount `json:"top_categories"`
	Status        string          `json:"status"`
}
