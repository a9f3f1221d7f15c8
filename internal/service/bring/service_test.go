package bring

import (
	"testing"

	"gather_server/internal/dto/request"
	"gather_server/internal/service/servicetest"
	"gather_server/pkg/enum/role"
	"gather_server/pkg/errorx"
)

func TestCovered(t *testing.T) {
	cases := []struct {
		total, requested int
		want             bool
	}{
		{0, 3, false},
		{2, 3, false},
		{3, 3, true},
		{5, 3, true},
		{0, 0, true},
	}
	for _, tc := range cases {
		if got := covered(tc.total, tc.requested); got != tc.want {
			t.Errorf("covered(%d, %d) = %v, want %v", tc.total, tc.requested, got, tc.want)
		}
	}
}

func newTestService(t *testing.T) (*bringService, *servicetest.Store) {
	t.Helper()
	repos, store := servicetest.NewRepositories()
	store.AddUser("Ucreator", "creator@example.com", "Creator")
	store.AddUser("Uadmin", "admin@example.com", "Admin")
	store.AddUser("Ux", "x@example.com", "Xena")
	store.AddUser("Uy", "y@example.com", "Yann")
	store.AddUser("Uout", "out@example.com", "Outsider")
	store.AddEvent("E1", "Barbecue", "Ucreator")
	store.AddParticipant("E1", "Ucreator", role.SuperAdmin)
	store.AddParticipant("E1", "Uadmin", role.Admin)
	store.AddParticipant("E1", "Ux", role.Participant)
	store.AddParticipant("E1", "Uy", role.Participant)
	return NewBringService(repos), store
}

func createItem(t *testing.T, svc *bringService, callerId string, quantity int) uint {
	t.Helper()
	rsp, err := svc.Create(callerId, request.CreateBringItemRequest{
		EventId:           "E1",
		Name:              "beer crate",
		RequestedQuantity: quantity,
	})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	return rsp.BringItemId
}

func TestCreateRequiresMembership(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Create("Uout", request.CreateBringItemRequest{
		EventId: "E1", Name: "napkins", RequestedQuantity: 1,
	})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("code = %d, want unauthorized", errorx.GetCode(err))
	}
}

func TestTakeReconcilesCoverage(t *testing.T) {
	svc, store := newTestService(t)
	itemId := createItem(t, svc, "Ux", 3)

	if err := svc.Take("Ux", request.TakeBringItemRequest{BringItemId: itemId, Quantity: 2}); err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if store.Item(itemId).IsTaken {
		t.Fatal("2 of 3 must not be covered")
	}

	if err := svc.Take("Uy", request.TakeBringItemRequest{BringItemId: itemId, Quantity: 1}); err != nil {
		t.Fatalf("take failed: %v", err)
	}
	item := store.Item(itemId)
	if !item.IsTaken {
		t.Fatal("3 of 3 must be covered")
	}
	if !item.TakenAt.Valid {
		t.Fatal("expected taken_at to be stamped on full coverage")
	}
}

// A repeated pledge by the same user overwrites the previous quantity.
func TestTakeOverwritesPreviousPledge(t *testing.T) {
	svc, store := newTestService(t)
	itemId := createItem(t, svc, "Ux", 3)

	if err := svc.Take("Ux", request.TakeBringItemRequest{BringItemId: itemId, Quantity: 3}); err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if !store.Item(itemId).IsTaken {
		t.Fatal("3 of 3 must be covered")
	}

	if err := svc.Take("Ux", request.TakeBringItemRequest{BringItemId: itemId, Quantity: 1}); err != nil {
		t.Fatalf("re-take failed: %v", err)
	}
	item := store.Item(itemId)
	if item.IsTaken {
		t.Fatal("overwriting down to 1 of 3 must clear the covered flag")
	}
	if item.TakenAt.Valid {
		t.Fatal("expected taken_at to be cleared")
	}
}

func TestReleaseReconcilesCoverage(t *testing.T) {
	svc, store := newTestService(t)
	itemId := createItem(t, svc, "Ux", 2)

	if err := svc.Take("Ux", request.TakeBringItemRequest{BringItemId: itemId, Quantity: 1}); err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if err := svc.Take("Uy", request.TakeBringItemRequest{BringItemId: itemId, Quantity: 1}); err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if !store.Item(itemId).IsTaken {
		t.Fatal("2 of 2 must be covered")
	}

	if err := svc.Release("Ux", request.ReleaseTakeRequest{BringItemId: itemId}); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if store.Item(itemId).IsTaken {
		t.Fatal("1 of 2 must not be covered after the release")
	}
}

func TestReleaseWithoutPledge(t *testing.T) {
	svc, _ := newTestService(t)
	itemId := createItem(t, svc, "Ux", 2)

	err := svc.Release("Uy", request.ReleaseTakeRequest{BringItemId: itemId})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want not found", errorx.GetCode(err))
	}
}

func TestTakeUnknownItem(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.Take("Ux", request.TakeBringItemRequest{BringItemId: 999, Quantity: 1})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want not found", errorx.GetCode(err))
	}
}

func TestTakeRequiresMembership(t *testing.T) {
	svc, _ := newTestService(t)
	itemId := createItem(t, svc, "Ux", 2)

	err := svc.Take("Uout", request.TakeBringItemRequest{BringItemId: itemId, Quantity: 1})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("code = %d, want unauthorized", errorx.GetCode(err))
	}
}

func TestDeletePermissions(t *testing.T) {
	svc, store := newTestService(t)

	// The creator may delete their own item.
	itemId := createItem(t, svc, "Ux", 2)
	if err := svc.Delete("Ux", request.DeleteBringItemRequest{BringItemId: itemId}); err != nil {
		t.Fatalf("creator delete failed: %v", err)
	}
	if store.Item(itemId) != nil {
		t.Fatal("expected the item to be gone")
	}

	// A plain participant may not delete someone else's item.
	itemId = createItem(t, svc, "Ux", 2)
	err := svc.Delete("Uy", request.DeleteBringItemRequest{BringItemId: itemId})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("code = %d, want forbidden", errorx.GetCode(err))
	}

	// An admin may delete any item.
	if err := svc.Delete("Uadmin", request.DeleteBringItemRequest{BringItemId: itemId}); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}

	// The creator role is not in the organizer allow-list for foreign items.
	itemId = createItem(t, svc, "Ux", 2)
	err = svc.Delete("Ucreator", request.DeleteBringItemRequest{BringItemId: itemId})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("code = %d, want forbidden", errorx.GetCode(err))
	}
}

func TestListIncludesPledges(t *testing.T) {
	svc, _ := newTestService(t)
	itemId := createItem(t, svc, "Ux", 3)
	if err := svc.Take("Uy", request.TakeBringItemRequest{BringItemId: itemId, Quantity: 2}); err != nil {
		t.Fatalf("take failed: %v", err)
	}

	items, err := svc.List("Ux", "E1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if len(items[0].Takes) != 1 || items[0].Takes[0].Quantity != 2 {
		t.Fatalf("unexpected pledges: %+v", items[0].Takes)
	}
}
