package db_models

import "github.com/lib/pq"

// Session records one recommendation request: the normalized quiz form, the
// full profile+result payload and the six recommended product ids.
type Session struct {
	BaseModel
	FormJSON   string         `gorm:"type:jsonb"`
	ResultJSON string         `gorm:"type:jsonb"`
	ProductIDs pq.StringArray `gorm:"type:text[]"`
}
