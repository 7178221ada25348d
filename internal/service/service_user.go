package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/store"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/internal/validators"
	"github.com/MKhiriev/go-job-alerts/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewNotificationValidator(),
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

// UpdateUser sets the email and splits req.Name into first and last name
// at the first space.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, invalid(err)
	}

	first, last := models.SplitName(req.Name)

	return s.userRepository.UpdateUser(ctx, models.User{
		UserID:    userID,
		Email:     strings.TrimSpace(req.Email),
		FirstName: first,
		LastName:  last,
	})
}

// ChangePassword verifies the current password before storing the new one.
func (s *userService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.NewPassword == "" {
		return invalid(errors.New("new password is required"))
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err = utils.CheckPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		log.Debug().Int64("user_id", userID).Msg("current password mismatch")
		return ErrCurrentPasswordIncorrect
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.userRepository.UpdatePassword(ctx, userID, hash)
}
