package models

// User is an account row. The register/login contract returns the full row,
// password_hash included.
type User struct {
	ID           int32     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"password_hash" gorm:"not null"`
	CreatedAt    Timestamp `json:"created_at" gorm:"not null;autoCreateTime:false"`
}
