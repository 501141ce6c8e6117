package request_models

type CreateProductRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Tags        string  `json:"tags"`
	PriceMin    int     `json:"price_min" binding:"gte=0"`
	PriceMax    int     `json:"price_max" binding:"gtefield=PriceMin"`
	AmazonURL   string  `json:"amazon_url"`
	ImageURL    *string `json:"image_url"`
	Locale      string  `json:"locale"`
	Active      *bool   `json:"active"`
}

// UpdateProductRequest carries partial updates; nil fields are untouched.
// The product id comes from the route path.
type UpdateProductRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Tags        *string `json:"tags"`
	PriceMin    *int    `json:"price_min" binding:"omitempty,gte=0"`
	PriceMax    *int    `json:"price_max" binding:"omitempty,gte=0"`
	AmazonURL   *string `json:"amazon_url"`
	ImageURL    *string `json:"image_url"`
	Active      *bool   `json:"active"`
}
