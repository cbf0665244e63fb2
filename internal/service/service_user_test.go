package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/mock"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (*userService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop()).(*userService)
	return svc, mockRepo
}

func TestUserService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	req := models.SignupRequest{
		Email:    "bob@example.com",
		Name:     "Bob",
		Password: "bobs-password",
	}

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.True(t, utils.VerifyPassword(req.Password, u.PasswordHash))
			u.ID = "new-id"
			return u, nil
		},
	)

	createdUser, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "new-id", createdUser.ID)
	assert.Equal(t, req.Email, createdUser.Email)
}

func TestUserService_Create_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.SignupRequest{Email: "a@b.c"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Create(ctx, models.SignupRequest{
		Email:    "taken@example.com",
		Name:     "Bob",
		Password: "pass",
	})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ListUsers(ctx).Return([]models.User{
		{ID: "1", Email: "a@example.com", Name: "A", PasswordHash: "leak?"},
		{ID: "2", Email: "b@example.com", Name: "B"},
	}, nil)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, models.PublicUser{ID: "1", Email: "a@example.com", Name: "A"}, users[0])
	assert.Equal(t, models.PublicUser{ID: "2", Email: "b@example.com", Name: "B"}, users[1])
}

func TestUserService_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ListUsers(ctx).Return([]models.User{}, nil)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users, "empty list must serialise as [], not null")
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, "1").
		Return(models.User{ID: "1", Email: "a@example.com", Name: "A"}, nil)

	publicUser, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", publicUser.ID)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, "gone").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Get(ctx, "gone")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	newName := "Robert"
	update := models.UserUpdate{Name: &newName}

	mockRepo.EXPECT().UpdateUser(ctx, "1", update).
		Return(models.User{ID: "1", Email: "bob@example.com", Name: newName}, nil)

	updatedUser, err := svc.Update(ctx, "1", update)
	require.NoError(t, err)
	assert.Equal(t, newName, updatedUser.Name)
}

func TestUserService_Update_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	name := "x"

	_, err := svc.Update(ctx, "", models.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Update(ctx, "1", models.UserUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteUser(ctx, "1").Return(true, nil)

	require.NoError(t, svc.Delete(ctx, "1"))
}

func TestUserService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteUser(ctx, "gone").Return(false, nil)

	err := svc.Delete(ctx, "gone")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_Delete_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteUser(ctx, "1").Return(false, errors.New("db is down"))

	err := svc.Delete(ctx, "1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}
