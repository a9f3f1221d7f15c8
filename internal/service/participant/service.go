// Package participant implements event membership and role authorization.
// Every event-scoped action in the other services funnels through Resolve,
// so the "is this user in the event, and what may they do" question is
// answered in exactly one place.
package participant

import (
	"gather_server/internal/dao/postgres/repository"
	"gather_server/internal/dto/request"
	"gather_server/internal/dto/respond"
	"gather_server/internal/model"
	"gather_server/pkg/enum/role"
	"gather_server/pkg/errorx"

	"go.uber.org/zap"
)

// Resolve is the single authorization primitive for event-scoped actions.
// It returns the caller's membership row (Role preloaded) together with the
// parsed role name, or an Unauthorized error carrying failMessage when the
// caller is not a participant of the event.
func Resolve(repos *repository.Repositories, eventId, userId, failMessage string) (*model.Participant, role.Name, error) {
	p, err := repos.Participant.FindByEventAndUser(eventId, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, "", errorx.New(errorx.CodeUnauthorized, failMessage)
		}
		zap.L().Error("resolve participant failed", zap.Error(err))
		return nil, "", errorx.ErrServerBusy
	}
	// Unknown names parse to "", which grants no privileges but still
	// counts as membership.
	name, _ := role.Parse(p.Role.Name)
	return p, name, nil
}

// guardRequesterMayManage rejects role changes from anyone below admin.
func guardRequesterMayManage(requester role.Name) error {
	if !requester.CanManageRoles() {
		return errorx.New(errorx.CodeForbidden, "only admins may change participant roles")
	}
	return nil
}

// guardTargetMutable enforces the two-level hierarchy: superAdmin is
// untouchable, and only superAdmin may touch an admin.
func guardTargetMutable(target, requester role.Name) error {
	if target == role.SuperAdmin {
		return errorx.New(errorx.CodeForbidden, "the event creator's role cannot be changed")
	}
	if target == role.Admin && requester != role.SuperAdmin {
		return errorx.New(errorx.CodeForbidden, "only the event creator may change an admin's role")
	}
	return nil
}

// guardAssignableRole rejects granting the creator role to anyone.
func guardAssignableRole(newRole role.Name) error {
	if newRole == role.SuperAdmin {
		return errorx.New(errorx.CodeForbidden, "the creator role cannot be granted")
	}
	return nil
}

type participantService struct {
	repos *repository.Repositories
}

// NewParticipantService wires the service onto the repository aggregate.
func NewParticipantService(repos *repository.Repositories) *participantService {
	return &participantService{repos: repos}
}

// List returns the members of an event with their role names. The caller
// must be a participant themselves.
func (s *participantService) List(eventId, callerId string) ([]respond.ParticipantRespond, error) {
	if _, _, err := Resolve(s.repos, eventId, callerId, "you are not a participant of this event"); err != nil {
		return nil, err
	}

	members, err := s.repos.Participant.FindByEvent(eventId)
	if err != nil {
		zap.L().Error("list participants failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	uuids := make([]string, 0, len(members))
	for _, m := range members {
		uuids = append(uuids, m.UserUuid)
	}
	users, err := s.repos.User.FindByUuids(uuids)
	if err != nil {
		zap.L().Error("batch find users failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	nicknames := make(map[string]string, len(users))
	for _, u := range users {
		nicknames[u.Uuid] = u.Nickname
	}

	rsp := make([]respond.ParticipantRespond, 0, len(members))
	for _, m := range members {
		rsp = append(rsp, respond.ParticipantRespond{
			UserId:   m.UserUuid,
			Nickname: nicknames[m.UserUuid],
			Role:     m.Role.Name,
		})
	}
	return rsp, nil
}

// UpdateRole changes another participant's role inside an event.
// Guard chain, in order:
//  1. requester must be a participant (Unauthorized otherwise)
//  2. requester must hold admin or superAdmin
//  3. target must be a participant (NotFound otherwise)
//  4. a superAdmin target is immutable
//  5. an admin target may only be changed by the superAdmin
//  6. the new role must exist and must not be superAdmin
func (s *participantService) UpdateRole(requesterId string, req request.UpdateParticipantRoleRequest) error {
	_, requesterRole, err := Resolve(s.repos, req.EventId, requesterId, "you are not a participant of this event")
	if err != nil {
		return err
	}
	if err := guardRequesterMayManage(requesterRole); err != nil {
		return err
	}

	target, err := s.repos.Participant.FindByEventAndUser(req.EventId, req.UserId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "target user is not a participant of this event")
		}
		zap.L().Error("find target participant failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	targetRole, _ := role.Parse(target.Role.Name)
	if err := guardTargetMutable(targetRole, requesterRole); err != nil {
		return err
	}

	newRole, err := s.repos.Role.FindById(req.RoleId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "role does not exist")
		}
		zap.L().Error("find role failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	newName, _ := role.Parse(newRole.Name)
	if err := guardAssignableRole(newName); err != nil {
		return err
	}

	if err := s.repos.Participant.UpdateRole(target.ID, newRole.ID); err != nil {
		zap.L().Error("update participant role failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
