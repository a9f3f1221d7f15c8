// Package friend implements the friendship graph: directional friend
// requests, their collapse into confirmed pairs, and the friend list reads.
package friend

import (
	"encoding/json"
	"time"

	"gather_server/internal/dao/postgres/repository"
	myredis "gather_server/internal/dao/redis"
	"gather_server/internal/dto/request"
	"gather_server/internal/dto/respond"
	"gather_server/internal/infrastructure/mailer"
	"gather_server/internal/model"
	"gather_server/pkg/constants"
	"gather_server/pkg/errorx"

	"go.uber.org/zap"
)

type friendService struct {
	repos *repository.Repositories
	mail  mailer.Dispatcher
}

// NewFriendService wires the service onto the repository aggregate and the
// mail dispatcher.
func NewFriendService(repos *repository.Repositories, mail mailer.Dispatcher) *friendService {
	return &friendService{repos: repos, mail: mail}
}

// invalidateCaches drops the cached friend list and notification counters
// for the given users, asynchronously through the cache worker pool.
func invalidateCaches(userIds ...string) {
	myredis.SubmitCacheTask(func() {
		for _, id := range userIds {
			if err := myredis.DelKeysWithPattern("friend_list_" + id); err != nil {
				zap.L().Error("del friend list cache failed", zap.Error(err))
			}
			if err := myredis.DelKeysWithPattern("notification_counts_" + id); err != nil {
				zap.L().Error("del notification counts cache failed", zap.Error(err))
			}
		}
	})
}

// Apply sends a friend request, or confirms the friendship when the target
// already has a request pending in the opposite direction.
//
// State machine for the unordered pair (sender, target): at most one of
// {Friends row, forward request, reverse request} exists at any time.
// A reverse request collapses atomically into the Friends row.
func (s *friendService) Apply(senderId string, req request.ApplyFriendRequest) (*respond.ApplyFriendRespond, error) {
	if req.FriendId == senderId {
		return nil, errorx.New(errorx.CodeInvalidParam, "cannot send a friend request to yourself")
	}

	target, err := s.repos.User.FindByUuid(req.FriendId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "user not found")
		}
		zap.L().Error("find target user failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	exists, err := s.repos.Friend.ExistsPair(senderId, req.FriendId)
	if err != nil {
		zap.L().Error("check friend pair failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if exists {
		return nil, errorx.New(errorx.CodeBadRequest, "you are already friends")
	}

	if _, err := s.repos.FriendInv.FindBySenderAndTarget(senderId, req.FriendId); err == nil {
		return nil, errorx.New(errorx.CodeBadRequest, "friend request already pending")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("check forward request failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// A reverse request means both sides asked: collapse into a pair.
	reverse, err := s.repos.FriendInv.FindBySenderAndTarget(req.FriendId, senderId)
	if err == nil {
		err = s.repos.Transaction(func(tx *repository.Repositories) error {
			if err := tx.Friend.Create(senderId, req.FriendId); err != nil {
				return err
			}
			return tx.FriendInv.Delete(reverse.ID)
		})
		if err != nil {
			zap.L().Error("collapse friend requests failed", zap.Error(err))
			if errorx.IsConflict(err) {
				return nil, errorx.Wrap(err, errorx.CodeConflict, "friendship already confirmed")
			}
			return nil, errorx.ErrServerBusy
		}
		invalidateCaches(senderId, req.FriendId)
		return &respond.ApplyFriendRespond{Status: "confirmed"}, nil
	}
	if !errorx.IsNotFound(err) {
		zap.L().Error("check reverse request failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	sender, err := s.repos.User.FindByUuid(senderId)
	if err != nil {
		zap.L().Error("find sender failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	inv := &model.FriendInvitation{UserUuid: senderId, RequestUuid: req.FriendId}
	if err := s.repos.FriendInv.Create(inv); err != nil {
		// The unique index is the authoritative guard when two identical
		// requests race past the pre-check.
		if errorx.IsConflict(err) {
			return nil, errorx.Wrap(err, errorx.CodeConflict, "friend request already pending")
		}
		zap.L().Error("create friend request failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	s.mail.Send(target.Email, "You have a new friend request", mailer.TemplateFriendInvitation, map[string]string{
		"targetName": target.Nickname,
		"senderName": sender.Nickname,
	})
	invalidateCaches(req.FriendId)
	return &respond.ApplyFriendRespond{Status: "sent"}, nil
}

// Respond accepts or declines a pending request addressed to the caller.
// Accept and decline both consume the request row.
func (s *friendService) Respond(callerId string, req request.RespondFriendRequest) error {
	inv, err := s.repos.FriendInv.FindById(req.InvitationId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "friend request not found")
		}
		zap.L().Error("find friend request failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if inv.RequestUuid != callerId {
		return errorx.New(errorx.CodeForbidden, "this friend request is not addressed to you")
	}

	exists, err := s.repos.Friend.ExistsPair(inv.UserUuid, inv.RequestUuid)
	if err != nil {
		zap.L().Error("check friend pair failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if exists {
		return errorx.New(errorx.CodeBadRequest, "you are already friends")
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if *req.Accept {
			if err := tx.Friend.Create(inv.UserUuid, inv.RequestUuid); err != nil {
				return err
			}
		}
		return tx.FriendInv.Delete(inv.ID)
	})
	if err != nil {
		zap.L().Error("respond friend request failed", zap.Error(err))
		if errorx.IsConflict(err) {
			return errorx.Wrap(err, errorx.CodeConflict, "friendship already confirmed")
		}
		return errorx.ErrServerBusy
	}

	invalidateCaches(inv.UserUuid, inv.RequestUuid)
	return nil
}

// Remove dissolves a confirmed friendship in both directions.
func (s *friendService) Remove(callerId, friendId string) error {
	exists, err := s.repos.Friend.ExistsPair(callerId, friendId)
	if err != nil {
		zap.L().Error("check friend pair failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if !exists {
		return errorx.New(errorx.CodeNotFound, "you are not friends with this user")
	}
	if err := s.repos.Friend.DeletePair(callerId, friendId); err != nil {
		zap.L().Error("delete friend pair failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	invalidateCaches(callerId, friendId)
	return nil
}

// List returns the caller's confirmed friends, served from Redis when warm.
func (s *friendService) List(userId string) ([]respond.FriendRespond, error) {
	cacheKey := "friend_list_" + userId
	if cached, err := myredis.GetKey(cacheKey); err == nil && cached != "" {
		var rsp []respond.FriendRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return rsp, nil
		}
		zap.L().Warn("corrupt friend list cache entry", zap.String("key", cacheKey))
	}

	pairs, err := s.repos.Friend.FindByUser(userId)
	if err != nil {
		zap.L().Error("find friend pairs failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	friendIds := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.User1Uuid == userId {
			friendIds = append(friendIds, p.User2Uuid)
		} else {
			friendIds = append(friendIds, p.User1Uuid)
		}
	}
	if len(friendIds) == 0 {
		return []respond.FriendRespond{}, nil
	}

	users, err := s.repos.User.FindByUuids(friendIds)
	if err != nil {
		zap.L().Error("batch find friends failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.FriendRespond, 0, len(users))
	for _, u := range users {
		rsp = append(rsp, respond.FriendRespond{
			UserId:   u.Uuid,
			Nickname: u.Nickname,
			Email:    u.Email,
		})
	}

	if raw, err := json.Marshal(rsp); err == nil {
		myredis.SubmitCacheTask(func() {
			if err := myredis.SetKeyEx(cacheKey, string(raw), time.Minute*constants.REDIS_TIMEOUT); err != nil {
				zap.L().Error("set friend list cache failed", zap.Error(err))
			}
		})
	}
	return rsp, nil
}

// ListApplies returns the pending inbound friend requests addressed to the
// caller, oldest first.
func (s *friendService) ListApplies(userId string) ([]respond.FriendApplyRespond, error) {
	pending, err := s.repos.FriendInv.FindByTarget(userId)
	if err != nil {
		zap.L().Error("find pending friend requests failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(pending) == 0 {
		return []respond.FriendApplyRespond{}, nil
	}

	senderIds := make([]string, 0, len(pending))
	for _, inv := range pending {
		senderIds = append(senderIds, inv.UserUuid)
	}
	senders, err := s.repos.User.FindByUuids(senderIds)
	if err != nil {
		zap.L().Error("batch find senders failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	names := make(map[string]string, len(senders))
	for _, u := range senders {
		names[u.Uuid] = u.Nickname
	}

	rsp := make([]respond.FriendApplyRespond, 0, len(pending))
	for _, inv := range pending {
		rsp = append(rsp, respond.FriendApplyRespond{
			InvitationId: inv.ID,
			SenderId:     inv.UserUuid,
			SenderName:   names[inv.UserUuid],
			CreatedAt:    inv.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rsp, nil
}
