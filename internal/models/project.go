package models

import "time"

// DefaultProjectTable is the backend table holding portfolio content.
const DefaultProjectTable = "portfolio_content"

// Project represents one portfolio item shown on the page.
// Rows are written by the content backend; this service only reads them.
type Project struct {
	ID          int64     `gorm:"primaryKey"`
	Title       *string   `gorm:"type:text"`
	Description *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"column:image_url;type:text"`
	Tags        *string   `gorm:"type:text"`
	URL         *string   `gorm:"column:url;type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default pluralized table name.
func (Project) TableName() string {
	return DefaultProjectTable
}

// Text dereferences an optional column, returning "" when it is NULL.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
