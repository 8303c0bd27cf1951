package model

import "time"

// Click is one successful redirect of a Url.
type Click struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UrlID  uint      `gorm:"index;not null" json:"url_id"`
	Url    *Url      `gorm:"foreignKey:UrlID" json:"-"`
	Date   time.Time `gorm:"index;not null" json:"date"`
	Client string    `gorm:"size:100;not null" json:"client"`
}
