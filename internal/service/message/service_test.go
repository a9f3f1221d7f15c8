package message

import (
	"testing"

	"gather_server/internal/model"
	"gather_server/internal/service/servicetest"
	"gather_server/pkg/enum/role"
	"gather_server/pkg/errorx"
)

func TestHistory(t *testing.T) {
	repos, store := servicetest.NewRepositories()
	store.AddUser("Ua", "a@example.com", "Alice")
	store.AddUser("Ub", "b@example.com", "Bob")
	store.AddEvent("E1", "Party", "Ua")
	store.AddParticipant("E1", "Ua", role.SuperAdmin)
	store.AddParticipant("E1", "Ub", role.Participant)
	if err := repos.Message.Create(&model.Message{EventUuid: "E1", SenderUuid: "Ua", Content: "hello"}); err != nil {
		t.Fatalf("seed message failed: %v", err)
	}
	if err := repos.Message.Create(&model.Message{EventUuid: "E1", SenderUuid: "Ub", Content: "hi"}); err != nil {
		t.Fatalf("seed message failed: %v", err)
	}
	svc := NewMessageService(repos)

	history, err := svc.History("Ub", "E1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("messages = %d, want 2", len(history))
	}
	if history[0].SenderName != "Alice" || history[1].SenderName != "Bob" {
		t.Fatalf("unexpected sender names: %+v", history)
	}

	_, err = svc.History("Ustranger", "E1")
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("code = %d, want unauthorized", errorx.GetCode(err))
	}
}
