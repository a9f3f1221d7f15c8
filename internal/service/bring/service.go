// Package bring implements shared supply coordination for events: items to
// bring, per-user quantity pledges, and the transactional reconciliation
// that keeps an item's covered flag in sync with the live pledge sum.
package bring

import (
	"time"

	"gather_server/internal/dao/postgres/repository"
	"gather_server/internal/dto/request"
	"gather_server/internal/dto/respond"
	"gather_server/internal/model"
	"gather_server/internal/service/participant"
	"gather_server/pkg/enum/role"
	"gather_server/pkg/errorx"

	"go.uber.org/zap"
)

// covered reports whether the pledged total satisfies the requested
// quantity. Kept as a pure function so the coverage rule is testable
// without a store.
func covered(totalTaken, requestedQuantity int) bool {
	return totalTaken >= requestedQuantity
}

type bringService struct {
	repos *repository.Repositories
}

// NewBringService wires the service onto the repository aggregate.
func NewBringService(repos *repository.Repositories) *bringService {
	return &bringService{repos: repos}
}

func toItemRespond(item *model.BringItem) respond.BringItemRespond {
	takes := make([]respond.TakeRespond, 0, len(item.Takes))
	for _, t := range item.Takes {
		takes = append(takes, respond.TakeRespond{
			UserId:   t.UserUuid,
			Quantity: t.Quantity,
		})
	}
	rsp := respond.BringItemRespond{
		BringItemId:       item.ID,
		Name:              item.Name,
		RequestedQuantity: item.RequestedQuantity,
		IsTaken:           item.IsTaken,
		CreatedBy:         item.CreatedByUuid,
		Takes:             takes,
	}
	if item.TakenAt.Valid {
		rsp.TakenAt = item.TakenAt.Time.Format("2006-01-02 15:04:05")
	}
	return rsp
}

// Create adds a supply item to an event. Any participant may add items.
func (s *bringService) Create(callerId string, req request.CreateBringItemRequest) (*respond.BringItemRespond, error) {
	if _, _, err := participant.Resolve(s.repos, req.EventId, callerId, "you are not a participant of this event"); err != nil {
		return nil, err
	}

	item := &model.BringItem{
		EventUuid:         req.EventId,
		Name:              req.Name,
		RequestedQuantity: req.RequestedQuantity,
		CreatedByUuid:     callerId,
	}
	if err := s.repos.Bring.CreateItem(item); err != nil {
		zap.L().Error("create bring item failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := toItemRespond(item)
	return &rsp, nil
}

// List returns an event's items with nested pledges, ordered by creation
// time. The caller must be a participant.
func (s *bringService) List(callerId, eventId string) ([]respond.BringItemRespond, error) {
	if _, _, err := participant.Resolve(s.repos, eventId, callerId, "you are not a participant of this event"); err != nil {
		return nil, err
	}

	items, err := s.repos.Bring.FindItemsByEvent(eventId)
	if err != nil {
		zap.L().Error("list bring items failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.BringItemRespond, 0, len(items))
	for i := range items {
		rsp = append(rsp, toItemRespond(&items[i]))
	}
	return rsp, nil
}

// reconcile recomputes the pledge sum for a locked item and persists the
// covered flag when it changed. Must run inside the same transaction as the
// pledge mutation so concurrent writers serialize on the item row.
func reconcile(tx *repository.Repositories, item *model.BringItem) error {
	total, err := tx.Bring.SumTakes(item.ID)
	if err != nil {
		return err
	}
	full := covered(total, item.RequestedQuantity)
	if full == item.IsTaken {
		return nil
	}
	if full {
		now := time.Now()
		return tx.Bring.UpdateCoverage(item.ID, true, &now)
	}
	return tx.Bring.UpdateCoverage(item.ID, false, nil)
}

// Take pledges a quantity against an item. A repeated pledge by the same
// user overwrites the previous quantity, it does not add to it. The upsert
// and the coverage reconciliation run in one transaction holding a row lock
// on the item, so concurrent pledges never leave the flag stale.
func (s *bringService) Take(callerId string, req request.TakeBringItemRequest) error {
	item, err := s.repos.Bring.FindItemById(req.BringItemId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "bring item not found")
		}
		zap.L().Error("find bring item failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if _, _, err := participant.Resolve(s.repos, item.EventUuid, callerId, "you are not a participant of this event"); err != nil {
		return err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		locked, err := tx.Bring.FindItemByIdLocked(req.BringItemId)
		if err != nil {
			return err
		}
		if err := tx.Bring.UpsertTake(&model.Taken{
			BringItemId: locked.ID,
			UserUuid:    callerId,
			Quantity:    req.Quantity,
		}); err != nil {
			return err
		}
		return reconcile(tx, locked)
	})
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "bring item not found")
		}
		zap.L().Error("take bring item failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// Release withdraws the caller's pledge and re-runs the same coverage
// reconciliation inside one transaction.
func (s *bringService) Release(callerId string, req request.ReleaseTakeRequest) error {
	item, err := s.repos.Bring.FindItemById(req.BringItemId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "bring item not found")
		}
		zap.L().Error("find bring item failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if _, _, err := participant.Resolve(s.repos, item.EventUuid, callerId, "you are not a participant of this event"); err != nil {
		return err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		locked, err := tx.Bring.FindItemByIdLocked(req.BringItemId)
		if err != nil {
			return err
		}
		if err := tx.Bring.DeleteTake(locked.ID, callerId); err != nil {
			return err
		}
		return reconcile(tx, locked)
	})
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "you have no pledge on this item")
		}
		zap.L().Error("release bring item pledge failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// Delete removes an item and all its pledges. The creator may always
// delete their own item; anyone else must hold a role from the organizer
// allow-list.
func (s *bringService) Delete(callerId string, req request.DeleteBringItemRequest) error {
	item, err := s.repos.Bring.FindItemById(req.BringItemId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "bring item not found")
		}
		zap.L().Error("find bring item failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	p, _, err := participant.Resolve(s.repos, item.EventUuid, callerId, "you are not a participant of this event")
	if err != nil {
		return err
	}

	if item.CreatedByUuid != callerId && !role.IsOrganizerAlias(p.Role.Name) {
		return errorx.New(errorx.CodeForbidden, "only the creator or an organizer may delete this item")
	}

	if err := s.repos.Bring.DeleteItem(item.ID); err != nil {
		zap.L().Error("delete bring item failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
