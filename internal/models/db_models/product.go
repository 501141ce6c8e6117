package db_models

type Product struct {
	BaseModel
	Title       string
	Description string
	// Category may hold several "|"-delimited segments; the first one is
	// the primary category.
	Category string
	// Tags is a "|"-delimited lowercase list, parsed at retrieval time.
	Tags      string
	PriceMin  int
	PriceMax  int
	AmazonURL string
	ImageURL  *string
	Locale    string `gorm:"default:US"`
	Active    bool   `gorm:"default:true"`
}
