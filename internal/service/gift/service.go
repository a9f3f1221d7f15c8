// Package gift implements personal gift wish-lists and their role-gated
// sharing into events.
package gift

import (
	"gather_server/internal/dao/postgres/repository"
	"gather_server/internal/dto/request"
	"gather_server/internal/dto/respond"
	"gather_server/internal/model"
	"gather_server/internal/service/participant"
	"gather_server/pkg/errorx"

	"go.uber.org/zap"
)

type giftService struct {
	repos *repository.Repositories
}

// NewGiftService wires the service onto the repository aggregate.
func NewGiftService(repos *repository.Repositories) *giftService {
	return &giftService{repos: repos}
}

func toListRespond(list *model.ListGift) respond.GiftListRespond {
	gifts := make([]respond.GiftRespond, 0, len(list.Gifts))
	for _, g := range list.Gifts {
		gifts = append(gifts, respond.GiftRespond{
			GiftId:   g.ID,
			Name:     g.Name,
			Quantity: g.Quantity,
			Url:      g.Url,
			Taken:    g.Taken,
			TakenBy:  g.TakenBy,
		})
	}
	return respond.GiftListRespond{
		ListId: list.ID,
		Name:   list.Name,
		Owner:  list.UserUuid,
		Gifts:  gifts,
	}
}

// CreateList creates a wish-list owned by the caller.
func (s *giftService) CreateList(callerId string, req request.CreateGiftListRequest) (*respond.GiftListRespond, error) {
	list := &model.ListGift{Name: req.Name, UserUuid: callerId}
	if err := s.repos.Gift.CreateList(list); err != nil {
		zap.L().Error("create gift list failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := toListRespond(list)
	return &rsp, nil
}

// ListMine returns the caller's own wish-lists with their gifts.
func (s *giftService) ListMine(callerId string) ([]respond.GiftListRespond, error) {
	lists, err := s.repos.Gift.FindListsByUser(callerId)
	if err != nil {
		zap.L().Error("find gift lists failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.GiftListRespond, 0, len(lists))
	for i := range lists {
		rsp = append(rsp, toListRespond(&lists[i]))
	}
	return rsp, nil
}

// findOwnedList loads a list and checks it belongs to the caller.
func (s *giftService) findOwnedList(callerId string, listId uint) (*model.ListGift, error) {
	list, err := s.repos.Gift.FindListById(listId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "gift list not found")
		}
		zap.L().Error("find gift list failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if list.UserUuid != callerId {
		return nil, errorx.New(errorx.CodeForbidden, "this gift list is not yours")
	}
	return list, nil
}

// DeleteList removes one of the caller's lists together with its gifts.
func (s *giftService) DeleteList(callerId string, listId uint) error {
	list, err := s.findOwnedList(callerId, listId)
	if err != nil {
		return err
	}
	if err := s.repos.Gift.DeleteList(list.ID); err != nil {
		zap.L().Error("delete gift list failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// AddGift adds a gift to one of the caller's lists.
func (s *giftService) AddGift(callerId string, req request.AddGiftRequest) (*respond.GiftRespond, error) {
	list, err := s.findOwnedList(callerId, req.ListId)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	gift := &model.Gift{
		Name:     req.Name,
		Quantity: quantity,
		Url:      req.Url,
		ListId:   list.ID,
		UserUuid: callerId,
	}
	if err := s.repos.Gift.CreateGift(gift); err != nil {
		zap.L().Error("create gift failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.GiftRespond{
		GiftId:   gift.ID,
		Name:     gift.Name,
		Quantity: gift.Quantity,
		Url:      gift.Url,
	}, nil
}

// DeleteGift removes a gift from one of the caller's lists.
func (s *giftService) DeleteGift(callerId string, req request.DeleteGiftRequest) error {
	gift, err := s.repos.Gift.FindGiftById(req.GiftId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "gift not found")
		}
		zap.L().Error("find gift failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if gift.UserUuid != callerId {
		return errorx.New(errorx.CodeForbidden, "this gift is not yours")
	}
	if err := s.repos.Gift.DeleteGift(gift.ID); err != nil {
		zap.L().Error("delete gift failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// AddListEvent links one of the caller's lists into an event.
// The caller needs the admin or gift role, and a participant links at most
// one list per event.
func (s *giftService) AddListEvent(callerId string, req request.AddListEventRequest) (*respond.ListEventRespond, error) {
	p, callerRole, err := participant.Resolve(s.repos, req.EventId, callerId, "you are not a participant of this event")
	if err != nil {
		return nil, err
	}
	if !callerRole.CanLinkGiftList() {
		return nil, errorx.New(errorx.CodeBadRequest, "your role may not share gift lists into this event")
	}

	list, err := s.findOwnedList(callerId, req.ListId)
	if err != nil {
		return nil, err
	}

	if _, err := s.repos.ListEvent.FindByParticipantAndEvent(p.ID, req.EventId); err == nil {
		return nil, errorx.New(errorx.CodeBadRequest, "you already shared a list into this event")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("check existing list link failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	link := &model.ListEvent{
		EventUuid:     req.EventId,
		ListId:        list.ID,
		ParticipantId: p.ID,
	}
	if err := s.repos.ListEvent.Create(link); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.Wrap(err, errorx.CodeConflict, "a concurrent request already linked a list")
		}
		zap.L().Error("create list link failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.ListEventRespond{
		ListEventId: link.ID,
		List:        toListRespond(list),
	}, nil
}

// RemoveListEvent unlinks the caller's list from an event.
func (s *giftService) RemoveListEvent(callerId string, req request.RemoveListEventRequest) error {
	p, _, err := participant.Resolve(s.repos, req.EventId, callerId, "you are not a participant of this event")
	if err != nil {
		return err
	}

	link, err := s.repos.ListEvent.FindByParticipantAndEvent(p.ID, req.EventId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "you have no list linked to this event")
		}
		zap.L().Error("find list link failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if err := s.repos.ListEvent.Delete(link.ID); err != nil {
		zap.L().Error("delete list link failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// EventLists returns every gift list shared into an event. The caller must
// be a participant.
func (s *giftService) EventLists(callerId, eventId string) ([]respond.ListEventRespond, error) {
	if _, _, err := participant.Resolve(s.repos, eventId, callerId, "you are not a participant of this event"); err != nil {
		return nil, err
	}

	links, err := s.repos.ListEvent.FindByEvent(eventId)
	if err != nil {
		zap.L().Error("find event list links failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.ListEventRespond, 0, len(links))
	for _, link := range links {
		list, err := s.repos.Gift.FindListById(link.ListId)
		if err != nil {
			if errorx.IsNotFound(err) {
				continue
			}
			zap.L().Error("find linked list failed", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		rsp = append(rsp, respond.ListEventRespond{
			ListEventId: link.ID,
			List:        toListRespond(list),
		})
	}
	return rsp, nil
}

// CheckGift toggles a gift's taken mark inside an event. The gift's list
// must be shared into the event, and the toggle writes Taken and TakenBy as
// a single field update.
func (s *giftService) CheckGift(callerId string, req request.CheckGiftRequest) error {
	if _, _, err := participant.Resolve(s.repos, req.EventId, callerId, "you are not a participant of this event"); err != nil {
		return err
	}

	gift, err := s.repos.Gift.FindGiftById(req.GiftId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "gift not found")
		}
		zap.L().Error("find gift failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	links, err := s.repos.ListEvent.FindByEvent(req.EventId)
	if err != nil {
		zap.L().Error("find event list links failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	linked := false
	for _, link := range links {
		if link.ListId == gift.ListId {
			linked = true
			break
		}
	}
	if !linked {
		return errorx.New(errorx.CodeBadRequest, "this gift's list is not shared into the event")
	}

	takenBy := ""
	if *req.Taken {
		takenBy = callerId
	}
	if err := s.repos.Gift.UpdateGiftTaken(gift.ID, *req.Taken, takenBy); err != nil {
		zap.L().Error("update gift taken failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
