package model

// Banner is a homepage banner image. ImageURL always references a completed
// object-storage upload at the moment the row is written.
type Banner struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ImageURL string `gorm:"column:image_url;type:text" json:"image_url"`
	IsActive bool   `gorm:"column:is_active;default:true" json:"is_active"`
}

// TableName overrides gorm to use the banners table.
func (Banner) TableName() string {
	return "banners"
}
