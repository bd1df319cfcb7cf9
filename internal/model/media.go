package model

import "time"

type MediaTopic string

const (
	TopicPatientCare   MediaTopic = "perawatan_pasien"
	TopicStress        MediaTopic = "stres"
	TopicSchizophrenia MediaTopic = "skizofrenia"
)

func (t MediaTopic) Valid() bool {
	switch t {
	case TopicPatientCare, TopicStress, TopicSchizophrenia:
		return true
	}
	return false
}

type MediaKind string

const (
	Article MediaKind = "artikel"
	Image   MediaKind = "gambar"
	Video   MediaKind = "video"
)

func (k MediaKind) Valid() bool {
	switch k {
	case Article, Image, Video:
		return true
	}
	return false
}

// MediaContent is a read-only link to educational material.
// swagger:model MediaContent
type MediaContent struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Topic        MediaTopic `gorm:"size:30;not null;index" json:"topic"`
	Kind         MediaKind  `gorm:"size:20;not null" json:"kind"`
	Title        string     `gorm:"size:255" json:"title"`
	Link         string     `gorm:"size:512;not null" json:"link"`
	DisplayOrder int        `gorm:"default:0" json:"displayOrder"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (MediaContent) TableName() string {
	return "media_contents"
}
