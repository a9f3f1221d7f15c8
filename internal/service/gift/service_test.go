package gift

import (
	"testing"

	"gather_server/internal/dto/request"
	"gather_server/internal/service/servicetest"
	"gather_server/pkg/enum/role"
	"gather_server/pkg/errorx"
)

func newTestService(t *testing.T) (*giftService, *servicetest.Store) {
	t.Helper()
	repos, store := servicetest.NewRepositories()
	store.AddUser("Uowner", "owner@example.com", "Owner")
	store.AddUser("Ugift", "gift@example.com", "Gifty")
	store.AddUser("Upart", "part@example.com", "Part")
	store.AddUser("Uout", "out@example.com", "Outsider")
	store.AddEvent("E1", "Birthday", "Uowner")
	store.AddParticipant("E1", "Uowner", role.SuperAdmin)
	store.AddParticipant("E1", "Ugift", role.Gift)
	store.AddParticipant("E1", "Upart", role.Participant)
	return NewGiftService(repos), store
}

func createListWithGift(t *testing.T, svc *giftService, ownerId string) (uint, uint) {
	t.Helper()
	list, err := svc.CreateList(ownerId, request.CreateGiftListRequest{Name: "wishlist"})
	if err != nil {
		t.Fatalf("create list failed: %v", err)
	}
	gift, err := svc.AddGift(ownerId, request.AddGiftRequest{ListId: list.ListId, Name: "board game"})
	if err != nil {
		t.Fatalf("add gift failed: %v", err)
	}
	return list.ListId, gift.GiftId
}

func TestAddGiftDefaultsQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	list, err := svc.CreateList("Ugift", request.CreateGiftListRequest{Name: "wishlist"})
	if err != nil {
		t.Fatalf("create list failed: %v", err)
	}
	gift, err := svc.AddGift("Ugift", request.AddGiftRequest{ListId: list.ListId, Name: "mug"})
	if err != nil {
		t.Fatalf("add gift failed: %v", err)
	}
	if gift.Quantity != 1 {
		t.Fatalf("quantity = %d, want default 1", gift.Quantity)
	}
}

func TestListOwnershipGuards(t *testing.T) {
	svc, _ := newTestService(t)
	listId, giftId := createListWithGift(t, svc, "Ugift")

	if err := svc.DeleteList("Upart", listId); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("code = %d, want forbidden", errorx.GetCode(err))
	}
	if err := svc.DeleteGift("Upart", request.DeleteGiftRequest{GiftId: giftId}); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("code = %d, want forbidden", errorx.GetCode(err))
	}
	if err := svc.DeleteList("Ugift", listId); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestAddListEventRequiresGiftRole(t *testing.T) {
	svc, _ := newTestService(t)
	listId, _ := createListWithGift(t, svc, "Upart")

	_, err := svc.AddListEvent("Upart", request.AddListEventRequest{EventId: "E1", ListId: listId})
	if errorx.GetCode(err) != errorx.CodeBadRequest {
		t.Fatalf("code = %d, want bad request", errorx.GetCode(err))
	}
}

func TestAddListEvent(t *testing.T) {
	svc, _ := newTestService(t)
	listId, _ := createListWithGift(t, svc, "Ugift")

	link, err := svc.AddListEvent("Ugift", request.AddListEventRequest{EventId: "E1", ListId: listId})
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}
	if link.List.ListId != listId {
		t.Fatalf("linked list = %d, want %d", link.List.ListId, listId)
	}

	// One list per participant per event.
	otherId, err := svc.CreateList("Ugift", request.CreateGiftListRequest{Name: "second"})
	if err != nil {
		t.Fatalf("create list failed: %v", err)
	}
	_, err = svc.AddListEvent("Ugift", request.AddListEventRequest{EventId: "E1", ListId: otherId.ListId})
	if errorx.GetCode(err) != errorx.CodeBadRequest {
		t.Fatalf("code = %d, want bad request", errorx.GetCode(err))
	}
}

func TestAddListEventRejectsForeignList(t *testing.T) {
	svc, _ := newTestService(t)
	listId, _ := createListWithGift(t, svc, "Upart")

	_, err := svc.AddListEvent("Ugift", request.AddListEventRequest{EventId: "E1", ListId: listId})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("code = %d, want forbidden", errorx.GetCode(err))
	}
}

func TestRemoveListEvent(t *testing.T) {
	svc, _ := newTestService(t)
	listId, _ := createListWithGift(t, svc, "Ugift")
	if _, err := svc.AddListEvent("Ugift", request.AddListEventRequest{EventId: "E1", ListId: listId}); err != nil {
		t.Fatalf("link failed: %v", err)
	}

	if err := svc.RemoveListEvent("Ugift", request.RemoveListEventRequest{EventId: "E1"}); err != nil {
		t.Fatalf("unlink failed: %v", err)
	}
	err := svc.RemoveListEvent("Ugift", request.RemoveListEventRequest{EventId: "E1"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want not found", errorx.GetCode(err))
	}
}

func TestEventListsVisibleToParticipants(t *testing.T) {
	svc, _ := newTestService(t)
	listId, _ := createListWithGift(t, svc, "Ugift")
	if _, err := svc.AddListEvent("Ugift", request.AddListEventRequest{EventId: "E1", ListId: listId}); err != nil {
		t.Fatalf("link failed: %v", err)
	}

	lists, err := svc.EventLists("Upart", "E1")
	if err != nil {
		t.Fatalf("event lists failed: %v", err)
	}
	if len(lists) != 1 || len(lists[0].List.Gifts) != 1 {
		t.Fatalf("unexpected lists: %+v", lists)
	}

	if _, err := svc.EventLists("Uout", "E1"); errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("code = %d, want unauthorized", errorx.GetCode(err))
	}
}

func TestCheckGift(t *testing.T) {
	svc, store := newTestService(t)
	listId, giftId := createListWithGift(t, svc, "Ugift")
	if _, err := svc.AddListEvent("Ugift", request.AddListEventRequest{EventId: "E1", ListId: listId}); err != nil {
		t.Fatalf("link failed: %v", err)
	}

	taken := true
	if err := svc.CheckGift("Upart", request.CheckGiftRequest{EventId: "E1", GiftId: giftId, Taken: &taken}); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	g := store.GiftById(giftId)
	if !g.Taken || g.TakenBy != "Upart" {
		t.Fatalf("gift = %+v, want taken by Upart", g)
	}

	taken = false
	if err := svc.CheckGift("Upart", request.CheckGiftRequest{EventId: "E1", GiftId: giftId, Taken: &taken}); err != nil {
		t.Fatalf("uncheck failed: %v", err)
	}
	g = store.GiftById(giftId)
	if g.Taken || g.TakenBy != "" {
		t.Fatalf("gift = %+v, want unclaimed", g)
	}
}

func TestCheckGiftRequiresLinkedList(t *testing.T) {
	svc, _ := newTestService(t)
	_, giftId := createListWithGift(t, svc, "Ugift")

	taken := true
	err := svc.CheckGift("Upart", request.CheckGiftRequest{EventId: "E1", GiftId: giftId, Taken: &taken})
	if errorx.GetCode(err) != errorx.CodeBadRequest {
		t.Fatalf("code = %d, want bad request", errorx.GetCode(err))
	}
}
