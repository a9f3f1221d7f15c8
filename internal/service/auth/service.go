// Package auth implements registration, login and the refresh token
// rotation. Refresh token ids are pinned in Redis so a stolen older token
// cannot mint new access tokens after a re-login.
package auth

import (
	"gather_server/internal/dao/postgres/repository"
	myredis "gather_server/internal/dao/redis"
	"gather_server/internal/dto/request"
	"gather_server/internal/dto/respond"
	"gather_server/internal/model"
	"gather_server/pkg/errorx"
	"gather_server/pkg/util/jwt"
	"gather_server/pkg/util/random"

	"go.uber.org/zap"
)

type authService struct {
	repos *repository.Repositories
}

// NewAuthService wires the service onto the repository aggregate.
func NewAuthService(repos *repository.Repositories) *authService {
	return &authService{repos: repos}
}

// issueTokens mints an access/refresh pair and pins the refresh token id in
// Redis for the refresh lifetime.
func issueTokens(userId string) (access, refresh string, err error) {
	access, err = jwt.GenerateAccessToken(userId)
	if err != nil {
		return "", "", err
	}
	refresh, tokenId, err := jwt.GenerateRefreshToken(userId)
	if err != nil {
		return "", "", err
	}
	if err := myredis.SetKeyEx("refresh_token_"+userId, tokenId, jwt.RefreshExpiry()); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Register creates an account and signs the new user in.
func (s *authService) Register(req request.RegisterRequest) (*respond.LoginRespond, error) {
	if _, err := s.repos.User.FindByEmail(req.Email); err == nil {
		return nil, errorx.New(errorx.CodeBadRequest, "email already registered")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("check email failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	user := &model.User{
		Uuid:        "U" + random.GetNowAndLenRandomString(19),
		Email:       req.Email,
		Nickname:    req.Nickname,
		RawPassword: req.Password,
	}
	if err := s.repos.User.Create(user); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.Wrap(err, errorx.CodeBadRequest, "email already registered")
		}
		zap.L().Error("create user failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// A freshly minted uuid cannot be the target of older requests; clear
	// any stale rows left behind by provisioning flows anyway.
	if err := s.repos.FriendInv.DeleteByTarget(user.Uuid); err != nil {
		zap.L().Warn("clear stale friend requests failed", zap.Error(err))
	}

	access, refresh, err := issueTokens(user.Uuid)
	if err != nil {
		zap.L().Error("issue tokens failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.LoginRespond{
		UserId:       user.Uuid,
		Email:        user.Email,
		Nickname:     user.Nickname,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Login authenticates by email and password. Wrong email and wrong password
// are indistinguishable to the caller.
func (s *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "invalid email or password")
		}
		zap.L().Error("find user by email failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeUnauthorized, "invalid email or password")
	}

	access, refresh, err := issueTokens(user.Uuid)
	if err != nil {
		zap.L().Error("issue tokens failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.LoginRespond{
		UserId:       user.Uuid,
		Email:        user.Email,
		Nickname:     user.Nickname,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Refresh rotates the token pair. The presented refresh token must carry
// the token id currently pinned in Redis; rotation immediately invalidates
// the old refresh token.
func (s *authService) Refresh(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(req.RefreshToken)
	if err != nil || claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "invalid refresh token")
	}

	pinned, err := myredis.GetKey("refresh_token_" + claims.UserID)
	if err != nil {
		zap.L().Error("read pinned refresh token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if pinned == "" || pinned != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "refresh token revoked")
	}

	access, refresh, err := issueTokens(claims.UserID)
	if err != nil {
		zap.L().Error("issue tokens failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.RefreshTokenRespond{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Logout revokes the pinned refresh token so the session cannot be renewed.
func (s *authService) Logout(userId string) error {
	if err := myredis.DelKeysWithPattern("refresh_token_" + userId); err != nil {
		zap.L().Error("revoke refresh token failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
