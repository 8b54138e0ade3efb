package dtos

type UserUpsertRequest struct {
	FirebaseUID string `json:"firebaseUid" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`

	// Optional fields
	ProfilePicture string `json:"profilePicture"`
}
