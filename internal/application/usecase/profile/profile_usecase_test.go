package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aanjaneya24/me-api-playground/internal/domain/profile"
	"github.com/Aanjaneya24/me-api-playground/pkg/apperror"
	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

type stubProfileRepo struct {
	createCalls int
	updateCalls int
	createID    int64
	agg         *profile.Aggregate
	err         error
}

func (s *stubProfileRepo) Get(ctx context.Context) (*profile.Aggregate, error) {
	return s.agg, s.err
}

func (s *stubProfileRepo) Create(ctx context.Context, in profile.CreateInput) (int64, error) {
	s.createCalls++
	return s.createID, s.err
}

func (s *stubProfileRepo) Update(ctx context.Context, in profile.UpdateInput) error {
	s.updateCalls++
	return s.err
}

func TestExecuteCreateProfile_RequiresName(t *testing.T) {
	repo := &stubProfileRepo{}
	uc := NewProfileUseCase(repo, logger.NewNop())

	_, err := uc.ExecuteCreateProfile(context.Background(), CreateProfileInput{
		Input: profile.CreateInput{Email: "a@x.com"},
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Zero(t, repo.createCalls)
}

func TestExecuteCreateProfile_RequiresEmail(t *testing.T) {
	repo := &stubProfileRepo{}
	uc := NewProfileUseCase(repo, logger.NewNop())

	_, err := uc.ExecuteCreateProfile(context.Background(), CreateProfileInput{
		Input: profile.CreateInput{Name: "A"},
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Zero(t, repo.createCalls)
}

func TestExecuteCreateProfile_ReturnsGeneratedID(t *testing.T) {
	repo := &stubProfileRepo{createID: 7}
	uc := NewProfileUseCase(repo, logger.NewNop())

	out, err := uc.ExecuteCreateProfile(context.Background(), CreateProfileInput{
		Input: profile.CreateInput{Name: "A", Email: "a@x.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ProfileID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecuteUpdateProfile_PropagatesNotFound(t *testing.T) {
	repo := &stubProfileRepo{err: apperror.NewNotFound("profile", "")}
	uc := NewProfileUseCase(repo, logger.NewNop())

	err := uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestExecuteGetProfile(t *testing.T) {
	repo := &stubProfileRepo{agg: &profile.Aggregate{Name: "A"}}
	uc := NewProfileUseCase(repo, logger.NewNop())

	out, err := uc.ExecuteGetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", out.Aggregate.Name)
}
