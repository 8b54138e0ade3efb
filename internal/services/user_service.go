package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobdesk/internal/dtos"
	"jobdesk/internal/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// UpsertUser stores the profile keyed by firebase uid: update if the uid
// exists, insert otherwise.
func (s *UserService) UpsertUser(ctx context.Context, req *dtos.UserUpsertRequest) (*models.User, error) {
	user := models.User{
		FirebaseUID:    req.FirebaseUID,
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	}

	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "firebase_uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "profile_picture"}),
		}).
		Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", req.FirebaseUID, err)
	}

	return &user, nil
}
