package model

// Service is an offered service listed on the site, with an ordered list of
// selling points.
type Service struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	ImageURL    string     `gorm:"column:image_url;type:text" json:"image_url"`
	Points      StringList `gorm:"column:points;type:text" json:"points"`
}

// TableName overrides gorm to use the services table.
func (Service) TableName() string {
	return "services"
}
