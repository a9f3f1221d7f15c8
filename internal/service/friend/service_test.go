package friend

import (
	"testing"

	"gather_server/internal/dto/request"
	"gather_server/internal/service/servicetest"
	"gather_server/pkg/errorx"
)

func newTestService(t *testing.T) (*friendService, *servicetest.Store, *servicetest.MailRecorder) {
	t.Helper()
	repos, store := servicetest.NewRepositories()
	store.AddUser("Ua", "alice@example.com", "Alice")
	store.AddUser("Ub", "bob@example.com", "Bob")
	store.AddUser("Uc", "carol@example.com", "Carol")
	mail := &servicetest.MailRecorder{}
	return NewFriendService(repos, mail), store, mail
}

func TestApplyCreatesPendingRequest(t *testing.T) {
	svc, store, mail := newTestService(t)

	rsp, err := svc.Apply("Ua", request.ApplyFriendRequest{FriendId: "Ub"})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if rsp.Status != "sent" {
		t.Fatalf("status = %q, want sent", rsp.Status)
	}
	if store.FriendInvCount() != 1 {
		t.Fatalf("pending requests = %d, want 1", store.FriendInvCount())
	}
	if store.FriendCount() != 0 {
		t.Fatalf("friend pairs = %d, want 0", store.FriendCount())
	}
	sent := mail.Sent()
	if len(sent) != 1 || sent[0].To != "bob@example.com" {
		t.Fatalf("expected one notification mail to bob, got %+v", sent)
	}
	if sent[0].Data["targetName"] != "Bob" || sent[0].Data["senderName"] != "Alice" {
		t.Fatalf("mail data incomplete: %+v", sent[0].Data)
	}
}

func TestApplyReciprocalCollapsesIntoFriendship(t *testing.T) {
	svc, store, _ := newTestService(t)

	if _, err := svc.Apply("Ua", request.ApplyFriendRequest{FriendId: "Ub"}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	rsp, err := svc.Apply("Ub", request.ApplyFriendRequest{FriendId: "Ua"})
	if err != nil {
		t.Fatalf("reciprocal apply failed: %v", err)
	}
	if rsp.Status != "confirmed" {
		t.Fatalf("status = %q, want confirmed", rsp.Status)
	}
	if !store.AreFriends("Ua", "Ub") {
		t.Fatal("expected a confirmed pair")
	}
	if store.FriendInvCount() != 0 {
		t.Fatalf("pending requests = %d, want 0 after collapse", store.FriendInvCount())
	}
}

func TestApplyRejections(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddFriends("Ua", "Uc")
	if _, err := svc.Apply("Ua", request.ApplyFriendRequest{FriendId: "Ub"}); err != nil {
		t.Fatalf("seed apply failed: %v", err)
	}

	cases := []struct {
		name     string
		sender   string
		friendId string
		wantCode int
	}{
		{"self", "Ua", "Ua", errorx.CodeInvalidParam},
		{"unknown target", "Ua", "Unobody", errorx.CodeNotFound},
		{"already friends", "Ua", "Uc", errorx.CodeBadRequest},
		{"duplicate request", "Ua", "Ub", errorx.CodeBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Apply(tc.sender, request.ApplyFriendRequest{FriendId: tc.friendId})
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errorx.GetCode(err); got != tc.wantCode {
				t.Fatalf("code = %d, want %d", got, tc.wantCode)
			}
		})
	}
}

func TestRespondAccept(t *testing.T) {
	svc, store, _ := newTestService(t)
	inv := store.AddFriendInvitation("Ua", "Ub")

	accept := true
	if err := svc.Respond("Ub", request.RespondFriendRequest{InvitationId: inv.ID, Accept: &accept}); err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if !store.AreFriends("Ua", "Ub") {
		t.Fatal("expected a confirmed pair")
	}
	if store.FriendInvCount() != 0 {
		t.Fatal("expected the request to be consumed")
	}
}

func TestRespondDeclineConsumesWithoutPair(t *testing.T) {
	svc, store, _ := newTestService(t)
	inv := store.AddFriendInvitation("Ua", "Ub")

	accept := false
	if err := svc.Respond("Ub", request.RespondFriendRequest{InvitationId: inv.ID, Accept: &accept}); err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if store.FriendCount() != 0 {
		t.Fatal("decline must not create a pair")
	}
	if store.FriendInvCount() != 0 {
		t.Fatal("expected the request to be consumed")
	}
}

func TestRespondOnlyByAddressee(t *testing.T) {
	svc, store, _ := newTestService(t)
	inv := store.AddFriendInvitation("Ua", "Ub")

	accept := true
	err := svc.Respond("Uc", request.RespondFriendRequest{InvitationId: inv.ID, Accept: &accept})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("code = %d, want forbidden", errorx.GetCode(err))
	}
	if store.FriendInvCount() != 1 {
		t.Fatal("a foreign respond must not consume the request")
	}
}

func TestRespondUnknownInvitation(t *testing.T) {
	svc, _, _ := newTestService(t)
	accept := true
	err := svc.Respond("Ub", request.RespondFriendRequest{InvitationId: 999, Accept: &accept})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want not found", errorx.GetCode(err))
	}
}

func TestRemove(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddFriends("Ua", "Ub")

	if err := svc.Remove("Ub", "Ua"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if store.FriendCount() != 0 {
		t.Fatal("expected the pair to be gone")
	}

	err := svc.Remove("Ua", "Uc")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want not found", errorx.GetCode(err))
	}
}

func TestListReturnsTheOtherSideOfEachPair(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddFriends("Ua", "Ub")
	store.AddFriends("Uc", "Ua")

	friends, err := svc.List("Ua")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("friends = %d, want 2", len(friends))
	}
	seen := make(map[string]bool)
	for _, f := range friends {
		seen[f.UserId] = true
	}
	if !seen["Ub"] || !seen["Uc"] {
		t.Fatalf("unexpected friend set: %+v", friends)
	}
}

func TestListApplies(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddFriendInvitation("Ua", "Uc")
	store.AddFriendInvitation("Ub", "Uc")

	pending, err := svc.ListApplies("Uc")
	if err != nil {
		t.Fatalf("list applies failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	if pending[0].SenderName == "" {
		t.Fatal("expected sender names to be resolved")
	}
}
