// Package user implements profile reads and the email lookup used to find
// people to befriend.
package user

import (
	"gather_server/internal/dao/postgres/repository"
	"gather_server/internal/dto/respond"
	"gather_server/pkg/errorx"

	"go.uber.org/zap"
)

type userService struct {
	repos *repository.Repositories
}

// NewUserService wires the service onto the repository aggregate.
func NewUserService(repos *repository.Repositories) *userService {
	return &userService{repos: repos}
}

// Get returns a user's public profile.
func (s *userService) Get(uuid string) (*respond.FriendRespond, error) {
	u, err := s.repos.User.FindByUuid(uuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "user not found")
		}
		zap.L().Error("find user failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.FriendRespond{
		UserId:   u.Uuid,
		Nickname: u.Nickname,
		Email:    u.Email,
	}, nil
}

// SearchByEmail finds a user by exact login email.
func (s *userService) SearchByEmail(email string) (*respond.FriendRespond, error) {
	u, err := s.repos.User.FindByEmail(email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "no user with this email")
		}
		zap.L().Error("find user by email failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.FriendRespond{
		UserId:   u.Uuid,
		Nickname: u.Nickname,
		Email:    u.Email,
	}, nil
}
