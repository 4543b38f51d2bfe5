package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/Aanjaneya24/me-api-playground/internal/domain/profile"
	"github.com/Aanjaneya24/me-api-playground/pkg/apperror"
	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		logger:      log,
	}
}

type GetProfileOutput struct {
	Aggregate *profile.Aggregate
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	agg, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Aggregate: agg}, nil
}

type CreateProfileInput struct {
	Input profile.CreateInput
}

type CreateProfileOutput struct {
	ProfileID int64
}

func (uc *ProfileUseCase) ExecuteCreateProfile(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	if input.Input.Name == "" || input.Input.Email == "" {
		return nil, apperror.NewInvalidInput("name and email are required", nil)
	}

	id, err := uc.profileRepo.Create(ctx, input.Input)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Profile created", zap.Int64("profile_id", id))
	return &CreateProfileOutput{ProfileID: id}, nil
}

type UpdateProfileInput struct {
	Input profile.UpdateInput
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) error {
	if err := uc.profileRepo.Update(ctx, input.Input); err != nil {
		return err
	}

	uc.logger.Info("Profile updated")
	return nil
}
