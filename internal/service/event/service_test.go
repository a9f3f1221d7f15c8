package event

import (
	"testing"

	"gather_server/internal/dto/request"
	"gather_server/internal/service/servicetest"
	"gather_server/pkg/enum/role"
	"gather_server/pkg/errorx"
)

func newTestService(t *testing.T) (*eventService, *servicetest.Store, *servicetest.MailRecorder) {
	t.Helper()
	repos, store := servicetest.NewRepositories()
	store.AddUser("Uorg", "org@example.com", "Olga")
	store.AddUser("Ub", "b@example.com", "Ben")
	store.AddUser("Uc", "c@example.com", "Cleo")
	store.AddUser("Ud", "d@example.com", "Dan")
	mail := &servicetest.MailRecorder{}
	return NewEventService(repos, mail), store, mail
}

func boolPtr(b bool) *bool { return &b }

func TestCreateRegistersCreatorAsSuperAdmin(t *testing.T) {
	svc, store, _ := newTestService(t)

	rsp, err := svc.Create("Uorg", request.CreateEventRequest{
		Name: "Housewarming",
		Date: "2026-09-12",
		Time: "18:30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rsp.EventId == "" || rsp.EventId[0] != 'E' {
		t.Fatalf("event id = %q, want E-prefixed", rsp.EventId)
	}
	if rsp.OrganizerId != "Uorg" {
		t.Fatalf("organizer = %q, want Uorg", rsp.OrganizerId)
	}
	if got := store.ParticipantRole(rsp.EventId, "Uorg"); got != "superAdmin" {
		t.Fatalf("creator role = %q, want superAdmin", got)
	}
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Create("Uorg", request.CreateEventRequest{Name: "X", Date: "12.09.2026"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want invalid param", errorx.GetCode(err))
	}
}

func TestUpdateRequiresAdmin(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")
	store.AddParticipant("E1", "Uorg", role.SuperAdmin)
	store.AddParticipant("E1", "Ub", role.Participant)

	req := request.UpdateEventRequest{EventId: "E1", Name: "Bigger party", Date: "2026-10-01"}
	_, err := svc.Update("Ub", req)
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("code = %d, want forbidden", errorx.GetCode(err))
	}

	rsp, err := svc.Update("Uorg", req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rsp.Name != "Bigger party" {
		t.Fatalf("name = %q", rsp.Name)
	}
}

func TestBulkInvite(t *testing.T) {
	svc, store, mail := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")
	store.AddParticipant("E1", "Uorg", role.SuperAdmin)
	store.AddFriends("Uorg", "Ub")
	store.AddFriends("Uorg", "Uc")

	err := svc.BulkInvite("Uorg", request.BulkInviteRequest{EventId: "E1", UserIds: []string{"Ub", "Uc"}})
	if err != nil {
		t.Fatalf("bulk invite failed: %v", err)
	}
	if store.EventInvCount() != 2 {
		t.Fatalf("invitations = %d, want 2", store.EventInvCount())
	}
	sent := mail.Sent()
	if len(sent) != 2 {
		t.Fatalf("mails = %d, want 2", len(sent))
	}
	if sent[0].Data["targetName"] != "Ben" || sent[1].Data["targetName"] != "Cleo" {
		t.Fatalf("mail targets incomplete: %+v, %+v", sent[0].Data, sent[1].Data)
	}
	for _, m := range sent {
		if m.Data["organizerName"] != "Olga" || m.Data["eventName"] != "Party" || m.Data["eventDate"] == "" {
			t.Fatalf("mail data incomplete: %+v", m.Data)
		}
	}
}

func TestBulkInviteRejections(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")
	store.AddParticipant("E1", "Uorg", role.SuperAdmin)
	store.AddParticipant("E1", "Ud", role.Participant)
	store.AddFriends("Uorg", "Ub")
	store.AddFriends("Uorg", "Ud")
	store.AddEventInvitation("E1", "Ub", "Uorg")

	cases := []struct {
		name     string
		inviter  string
		userIds  []string
		wantCode int
	}{
		{"inviter not a participant", "Uc", []string{"Ub"}, errorx.CodeUnauthorized},
		{"inviter below admin", "Ud", []string{"Ub"}, errorx.CodeForbidden},
		{"self in batch", "Uorg", []string{"Uorg"}, errorx.CodeInvalidParam},
		{"duplicate in batch", "Uorg", []string{"Uc", "Uc"}, errorx.CodeInvalidParam},
		{"unknown user", "Uorg", []string{"Unobody"}, errorx.CodeBadRequest},
		{"not a friend", "Uorg", []string{"Uc"}, errorx.CodeBadRequest},
		{"already a participant", "Uorg", []string{"Ud"}, errorx.CodeBadRequest},
		{"already invited", "Uorg", []string{"Ub"}, errorx.CodeBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.BulkInvite(tc.inviter, request.BulkInviteRequest{EventId: "E1", UserIds: tc.userIds})
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errorx.GetCode(err); got != tc.wantCode {
				t.Fatalf("code = %d, want %d", got, tc.wantCode)
			}
		})
	}
}

// One ineligible candidate rejects the whole batch; no row may be written
// for the eligible ones.
func TestBulkInviteIsAllOrNothing(t *testing.T) {
	svc, store, mail := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")
	store.AddParticipant("E1", "Uorg", role.SuperAdmin)
	store.AddParticipant("E1", "Ud", role.Participant)
	store.AddFriends("Uorg", "Ub")
	store.AddFriends("Uorg", "Ud")

	err := svc.BulkInvite("Uorg", request.BulkInviteRequest{EventId: "E1", UserIds: []string{"Ub", "Ud"}})
	if errorx.GetCode(err) != errorx.CodeBadRequest {
		t.Fatalf("code = %d, want bad request", errorx.GetCode(err))
	}
	if store.EventInvCount() != 0 {
		t.Fatalf("invitations = %d, want 0 after rejected batch", store.EventInvCount())
	}
	if len(mail.Sent()) != 0 {
		t.Fatal("no mail may go out for a rejected batch")
	}
}

func TestRespondInvitationAccept(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")
	store.AddParticipant("E1", "Uorg", role.SuperAdmin)
	store.AddEventInvitation("E1", "Ub", "Uorg")

	rsp, err := svc.RespondInvitation("Ub", request.RespondEventInvitationRequest{EventId: "E1", Accept: boolPtr(true)})
	if err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if rsp.Status != "accepted" {
		t.Fatalf("status = %q, want accepted", rsp.Status)
	}
	if got := store.ParticipantRole("E1", "Ub"); got != "participant" {
		t.Fatalf("role = %q, want participant", got)
	}
	if store.EventInvCount() != 0 {
		t.Fatal("expected the invitation to be consumed")
	}
}

func TestRespondInvitationDecline(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")
	store.AddParticipant("E1", "Uorg", role.SuperAdmin)
	store.AddEventInvitation("E1", "Ub", "Uorg")

	rsp, err := svc.RespondInvitation("Ub", request.RespondEventInvitationRequest{EventId: "E1", Accept: boolPtr(false)})
	if err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if rsp.Status != "declined" {
		t.Fatalf("status = %q, want declined", rsp.Status)
	}
	if got := store.ParticipantRole("E1", "Ub"); got != "" {
		t.Fatalf("decline must not create a membership, got role %q", got)
	}
	if store.EventInvCount() != 0 {
		t.Fatal("expected the invitation to be consumed")
	}
}

// Accepting an event invitation collapses the invitee's pending friend
// request toward the organizer into a confirmed pair.
func TestRespondInvitationAcceptCollapsesFriendRequest(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")
	store.AddParticipant("E1", "Uorg", role.SuperAdmin)
	store.AddEventInvitation("E1", "Ub", "Uorg")
	store.AddFriendInvitation("Ub", "Uorg")

	if _, err := svc.RespondInvitation("Ub", request.RespondEventInvitationRequest{EventId: "E1", Accept: boolPtr(true)}); err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if !store.AreFriends("Ub", "Uorg") {
		t.Fatal("expected the pending friend request to collapse into a pair")
	}
	if store.FriendInvCount() != 0 {
		t.Fatal("expected the friend request to be consumed")
	}
}

func TestRespondInvitationWithoutInvitation(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")

	_, err := svc.RespondInvitation("Ub", request.RespondEventInvitationRequest{EventId: "E1", Accept: boolPtr(true)})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want not found", errorx.GetCode(err))
	}
}

func TestListMine(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")
	store.AddEvent("E2", "Picnic", "Ub")
	store.AddParticipant("E1", "Uorg", role.SuperAdmin)
	store.AddParticipant("E2", "Uorg", role.Participant)

	events, err := svc.ListMine("Uorg")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
}

func TestNotificationCounts(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AddEvent("E1", "Party", "Uorg")
	store.AddEventInvitation("E1", "Ub", "Uorg")
	store.AddFriendInvitation("Uc", "Ub")
	store.AddFriendInvitation("Ud", "Ub")

	counts, err := svc.NotificationCounts("Ub")
	if err != nil {
		t.Fatalf("counts failed: %v", err)
	}
	if counts.PendingFriendInvitations != 2 {
		t.Fatalf("friend count = %d, want 2", counts.PendingFriendInvitations)
	}
	if counts.PendingEventInvitations != 1 {
		t.Fatalf("event count = %d, want 1", counts.PendingEventInvitations)
	}
}
