package models

import "time"

// Job is a stored job posting. ID comes from the upstream source and is the
// upsert key: fetching again updates the existing row instead of inserting.
type Job struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Company     string    `gorm:"not null" json:"company"`
	Location    string    `gorm:"default:'Remote'" json:"location"`
	Category    string    `gorm:"not null" json:"category"`
	Salary      string    `json:"salary"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is a profile record upserted by firebase uid. The mobile client does
// not call this yet; the endpoint is kept for forward compatibility.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirebaseUID    string    `gorm:"uniqueIndex;not null" json:"firebase_uid"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}
