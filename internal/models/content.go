package models

// Content is an authored post. AuthorID is a user id but carries no foreign
// key; any caller may write any content.
type Content struct {
	ID        int32     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body" gorm:"not null"`
	AuthorID  int32     `json:"author_id" gorm:"not null"`
	CreatedAt Timestamp `json:"created_at" gorm:"not null;autoCreateTime:false"`
	UpdatedAt Timestamp `json:"updated_at" gorm:"not null;autoUpdateTime:false"`
}
