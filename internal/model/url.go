package model

// Url is a shortened link. Rows are never removed: deletion flips IsActive.
type Url struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullURL  string `gorm:"size:512;uniqueIndex;not null" json:"full_url"`
	ShortURL string `gorm:"size:16;uniqueIndex;not null" json:"short_url"`
	Clicks   int64  `gorm:"not null;default:0" json:"clicks"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}
