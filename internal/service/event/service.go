// Package event implements event lifecycle and the event invitation flow:
// creation, bulk invites gated by inviter role and friendship, the
// accept/decline transitions, and the pending-invitation counters.
package event

import (
	"encoding/json"
	"time"

	"gather_server/internal/dao/postgres/repository"
	myredis "gather_server/internal/dao/redis"
	"gather_server/internal/dto/request"
	"gather_server/internal/dto/respond"
	"gather_server/internal/infrastructure/mailer"
	"gather_server/internal/model"
	"gather_server/internal/service/participant"
	"gather_server/pkg/constants"
	"gather_server/pkg/enum/role"
	"gather_server/pkg/errorx"
	"gather_server/pkg/util/random"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type eventService struct {
	repos *repository.Repositories
	mail  mailer.Dispatcher
}

// NewEventService wires the service onto the repository aggregate and the
// mail dispatcher.
func NewEventService(repos *repository.Repositories, mail mailer.Dispatcher) *eventService {
	return &eventService{repos: repos, mail: mail}
}

func toEventRespond(e *model.Event) *respond.EventRespond {
	return &respond.EventRespond{
		EventId:     e.Uuid,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date.Format(dateLayout),
		Time:        e.Time,
		Address:     e.Address,
		OrganizerId: e.OrganizerId,
	}
}

// invalidateNotificationCounts drops the cached counters for the given
// users through the cache worker pool.
func invalidateNotificationCounts(userIds ...string) {
	myredis.SubmitCacheTask(func() {
		for _, id := range userIds {
			if err := myredis.DelKeysWithPattern("notification_counts_" + id); err != nil {
				zap.L().Error("del notification counts cache failed", zap.Error(err))
			}
		}
	})
}

// Create inserts a new event and registers the creator as its superAdmin,
// atomically. The creator is the only participant ever holding that role.
func (s *eventService) Create(callerId string, req request.CreateEventRequest) (*respond.EventRespond, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, errorx.New(errorx.CodeInvalidParam, "date must be formatted as 2006-01-02")
	}

	superAdmin, err := s.repos.Role.FindByName(string(role.SuperAdmin))
	if err != nil {
		zap.L().Error("resolve superAdmin role failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	event := &model.Event{
		Uuid:        "E" + random.GetNowAndLenRandomString(19),
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Address:     req.Address,
		OrganizerId: callerId,
	}
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Event.Create(event); err != nil {
			return err
		}
		return tx.Participant.Create(&model.Participant{
			EventUuid: event.Uuid,
			UserUuid:  callerId,
			RoleId:    superAdmin.ID,
		})
	})
	if err != nil {
		zap.L().Error("create event failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return toEventRespond(event), nil
}

// Update edits an event. Only admin and superAdmin participants may edit.
func (s *eventService) Update(callerId string, req request.UpdateEventRequest) (*respond.EventRespond, error) {
	_, callerRole, err := participant.Resolve(s.repos, req.EventId, callerId, "you are not a participant of this event")
	if err != nil {
		return nil, err
	}
	if !callerRole.CanManageRoles() {
		return nil, errorx.New(errorx.CodeForbidden, "only admins may edit the event")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, errorx.New(errorx.CodeInvalidParam, "date must be formatted as 2006-01-02")
	}

	event, err := s.repos.Event.FindByUuid(req.EventId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "event not found")
		}
		zap.L().Error("find event failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	event.Name = req.Name
	event.Description = req.Description
	event.Date = date
	event.Time = req.Time
	event.Address = req.Address
	if err := s.repos.Event.Update(event); err != nil {
		zap.L().Error("update event failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return toEventRespond(event), nil
}

// Get returns one event. The caller must be a participant.
func (s *eventService) Get(callerId, eventId string) (*respond.EventRespond, error) {
	if _, _, err := participant.Resolve(s.repos, eventId, callerId, "you are not a participant of this event"); err != nil {
		return nil, err
	}
	event, err := s.repos.Event.FindByUuid(eventId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "event not found")
		}
		zap.L().Error("find event failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return toEventRespond(event), nil
}

// ListMine returns every event the caller participates in.
func (s *eventService) ListMine(callerId string) ([]respond.EventRespond, error) {
	memberships, err := s.repos.Participant.FindByUser(callerId)
	if err != nil {
		zap.L().Error("find memberships failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(memberships) == 0 {
		return []respond.EventRespond{}, nil
	}

	uuids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		uuids = append(uuids, m.EventUuid)
	}
	events, err := s.repos.Event.FindByUuids(uuids)
	if err != nil {
		zap.L().Error("batch find events failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.EventRespond, 0, len(events))
	for i := range events {
		rsp = append(rsp, *toEventRespond(&events[i]))
	}
	return rsp, nil
}

// BulkInvite invites a batch of the organizer's friends into an event.
// The batch is all-or-nothing: one ineligible candidate rejects the whole
// request and zero invitation rows are written.
//
// Eligibility per candidate: exists, is a friend of the inviter, is not
// already a participant, and holds no pending invitation for this event.
func (s *eventService) BulkInvite(organizerId string, req request.BulkInviteRequest) error {
	_, organizerRole, err := participant.Resolve(s.repos, req.EventId, organizerId, "you are not a participant of this event")
	if err != nil {
		return err
	}
	if !organizerRole.CanManageRoles() {
		return errorx.New(errorx.CodeForbidden, "only admins may send event invitations")
	}

	event, err := s.repos.Event.FindByUuid(req.EventId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "event not found")
		}
		zap.L().Error("find event failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 1. Per-candidate eligibility, evaluated before any write.
	seen := make(map[string]struct{}, len(req.UserIds))
	for _, candidateId := range req.UserIds {
		if candidateId == organizerId {
			return errorx.New(errorx.CodeInvalidParam, "cannot invite yourself")
		}
		if _, dup := seen[candidateId]; dup {
			return errorx.New(errorx.CodeInvalidParam, "duplicate user in invitation batch")
		}
		seen[candidateId] = struct{}{}
	}

	candidates, err := s.repos.User.FindByUuids(req.UserIds)
	if err != nil {
		zap.L().Error("batch find candidates failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if len(candidates) != len(req.UserIds) {
		return errorx.New(errorx.CodeBadRequest, "one or more invited users do not exist")
	}

	for _, candidateId := range req.UserIds {
		if _, err := s.repos.Participant.FindByEventAndUser(req.EventId, candidateId); err == nil {
			return errorx.New(errorx.CodeBadRequest, "one or more invited users already participate in this event")
		} else if !errorx.IsNotFound(err) {
			zap.L().Error("check candidate membership failed", zap.Error(err))
			return errorx.ErrServerBusy
		}

		isFriend, err := s.repos.Friend.ExistsPair(organizerId, candidateId)
		if err != nil {
			zap.L().Error("check candidate friendship failed", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if !isFriend {
			return errorx.New(errorx.CodeBadRequest, "you can only invite your friends")
		}
	}

	// 2. No candidate may already hold a pending invitation.
	alreadyInvited, err := s.repos.EventInvitation.FindUsersInvited(req.EventId, req.UserIds)
	if err != nil {
		zap.L().Error("check pending invitations failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if len(alreadyInvited) > 0 {
		return errorx.New(errorx.CodeBadRequest, "one or more invited users are already invited")
	}

	// 3. One batch insert. The unique index on (event, invitee) is the
	// authoritative guard when concurrent batches race past the checks.
	invitations := make([]model.EventInvitation, 0, len(req.UserIds))
	for _, candidateId := range req.UserIds {
		invitations = append(invitations, model.EventInvitation{
			EventUuid:   req.EventId,
			UserUuid:    candidateId,
			OrganizerId: organizerId,
		})
	}
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		return tx.EventInvitation.CreateBatch(invitations)
	})
	if err != nil {
		if errorx.IsConflict(err) {
			return errorx.Wrap(err, errorx.CodeConflict, "a concurrent invitation already covered part of this batch")
		}
		zap.L().Error("insert invitation batch failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 4. Mail is best-effort and dispatched after commit; a delivery
	// failure never rolls back the invitations.
	organizer, err := s.repos.User.FindByUuid(organizerId)
	if err != nil {
		zap.L().Error("find organizer for mail failed", zap.Error(err))
		return nil
	}
	for _, candidate := range candidates {
		s.mail.Send(candidate.Email, "You are invited to "+event.Name, mailer.TemplateEventInvitation, map[string]string{
			"targetName":    candidate.Nickname,
			"organizerName": organizer.Nickname,
			"eventName":     event.Name,
			"eventDate":     event.Date.Format("2006-01-02"),
		})
	}
	invalidateNotificationCounts(req.UserIds...)
	return nil
}

// ListInvitations returns the caller's pending event invitations.
func (s *eventService) ListInvitations(userId string) ([]respond.EventInvitationRespond, error) {
	pending, err := s.repos.EventInvitation.FindByUser(userId)
	if err != nil {
		zap.L().Error("find pending event invitations failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(pending) == 0 {
		return []respond.EventInvitationRespond{}, nil
	}

	eventIds := make([]string, 0, len(pending))
	organizerIds := make([]string, 0, len(pending))
	for _, inv := range pending {
		eventIds = append(eventIds, inv.EventUuid)
		organizerIds = append(organizerIds, inv.OrganizerId)
	}
	events, err := s.repos.Event.FindByUuids(eventIds)
	if err != nil {
		zap.L().Error("batch find events failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	organizers, err := s.repos.User.FindByUuids(organizerIds)
	if err != nil {
		zap.L().Error("batch find organizers failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	eventNames := make(map[string]string, len(events))
	for _, e := range events {
		eventNames[e.Uuid] = e.Name
	}
	organizerNames := make(map[string]string, len(organizers))
	for _, u := range organizers {
		organizerNames[u.Uuid] = u.Nickname
	}

	rsp := make([]respond.EventInvitationRespond, 0, len(pending))
	for _, inv := range pending {
		rsp = append(rsp, respond.EventInvitationRespond{
			EventId:       inv.EventUuid,
			EventName:     eventNames[inv.EventUuid],
			OrganizerId:   inv.OrganizerId,
			OrganizerName: organizerNames[inv.OrganizerId],
		})
	}
	return rsp, nil
}

// RespondInvitation accepts or declines a pending event invitation.
// Accept materializes a Participant row with the participant role and
// additionally collapses any pending friend request from the invitee to the
// organizer, since co-attendance implies the friendship both sides wanted.
// The invitation row is consumed either way.
func (s *eventService) RespondInvitation(userId string, req request.RespondEventInvitationRequest) (*respond.RespondEventInvitationRespond, error) {
	inv, err := s.repos.EventInvitation.FindByEventAndUser(req.EventId, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "no pending invitation for this event")
		}
		zap.L().Error("find event invitation failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if _, err := s.repos.Event.FindByUuid(req.EventId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "event no longer exists")
		}
		zap.L().Error("find event failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	var participantRole *model.RoleEvent
	if *req.Accept {
		participantRole, err = s.repos.Role.FindByName(string(role.Participant))
		if err != nil {
			zap.L().Error("resolve participant role failed", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
	}

	friendConfirmed := false
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if *req.Accept {
			if err := tx.Participant.Create(&model.Participant{
				EventUuid: inv.EventUuid,
				UserUuid:  userId,
				RoleId:    participantRole.ID,
			}); err != nil {
				return err
			}

			// Collapse the invitee's pending friend request toward the
			// organizer, if one exists.
			pending, err := tx.FriendInv.FindBySenderAndTarget(userId, inv.OrganizerId)
			if err == nil {
				exists, err := tx.Friend.ExistsPair(userId, inv.OrganizerId)
				if err != nil {
					return err
				}
				if !exists {
					if err := tx.Friend.Create(userId, inv.OrganizerId); err != nil {
						return err
					}
					friendConfirmed = true
				}
				if err := tx.FriendInv.Delete(pending.ID); err != nil {
					return err
				}
			} else if !errorx.IsNotFound(err) {
				return err
			}
		}
		return tx.EventInvitation.Delete(inv.ID)
	})
	if err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.Wrap(err, errorx.CodeConflict, "you already joined this event")
		}
		zap.L().Error("respond event invitation failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if friendConfirmed {
		invalidateNotificationCounts(userId, inv.OrganizerId)
		myredis.SubmitCacheTask(func() {
			_ = myredis.DelKeysWithPattern("friend_list_" + userId)
			_ = myredis.DelKeysWithPattern("friend_list_" + inv.OrganizerId)
		})
	} else {
		invalidateNotificationCounts(userId)
	}

	status := "declined"
	if *req.Accept {
		status = "accepted"
	}
	return &respond.RespondEventInvitationRespond{Status: status}, nil
}

// NotificationCounts returns the pending friend and event invitation
// counters shown as badges, served from Redis when warm.
func (s *eventService) NotificationCounts(userId string) (*respond.NotificationCountsRespond, error) {
	cacheKey := "notification_counts_" + userId
	if cached, err := myredis.GetKey(cacheKey); err == nil && cached != "" {
		var rsp respond.NotificationCountsRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return &rsp, nil
		}
		zap.L().Warn("corrupt notification counts cache entry", zap.String("key", cacheKey))
	}

	friendCount, err := s.repos.FriendInv.CountByTarget(userId)
	if err != nil {
		zap.L().Error("count friend invitations failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	eventCount, err := s.repos.EventInvitation.CountByUser(userId)
	if err != nil {
		zap.L().Error("count event invitations failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := &respond.NotificationCountsRespond{
		PendingFriendInvitations: friendCount,
		PendingEventInvitations:  eventCount,
	}
	if raw, err := json.Marshal(rsp); err == nil {
		myredis.SubmitCacheTask(func() {
			if err := myredis.SetKeyEx(cacheKey, string(raw), time.Minute*constants.REDIS_TIMEOUT); err != nil {
				zap.L().Error("set notification counts cache failed", zap.Error(err))
			}
		})
	}
	return rsp, nil
}
