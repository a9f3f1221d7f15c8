package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"gather_server/internal/dto/respond"
	"gather_server/internal/service/servicetest"
	"gather_server/pkg/constants"
	"gather_server/pkg/enum/role"
	"gather_server/pkg/errorx"
)

func newTestDispatcher(t *testing.T) (*dispatcher, *servicetest.Store) {
	t.Helper()
	repos, store := servicetest.NewRepositories()
	store.AddUser("Ua", "a@example.com", "Alice")
	store.AddUser("Ub", "b@example.com", "Bob")
	store.AddUser("Uout", "out@example.com", "Outsider")
	store.AddEvent("E1", "Party", "Ua")
	store.AddParticipant("E1", "Ua", role.SuperAdmin)
	store.AddParticipant("E1", "Ub", role.Participant)
	return newDispatcher(repos), store
}

func onlineClient(d *dispatcher, userId string) *UserConn {
	client := &UserConn{Uuid: userId, SendBack: make(chan []byte, 4)}
	d.register(client)
	return client
}

func mustFrame(t *testing.T, f Frame) []byte {
	t.Helper()
	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal frame failed: %v", err)
	}
	return raw
}

func TestHandlePersistsAndFansOut(t *testing.T) {
	d, _ := newTestDispatcher(t)
	alice := onlineClient(d, "Ua")
	bob := onlineClient(d, "Ub")

	d.handle(mustFrame(t, Frame{EventId: "E1", SenderId: "Ua", Content: "hello"}))

	for _, client := range []*UserConn{alice, bob} {
		select {
		case payload := <-client.SendBack:
			var rsp respond.ChatMessageRespond
			if err := json.Unmarshal(payload, &rsp); err != nil {
				t.Fatalf("unmarshal payload failed: %v", err)
			}
			if rsp.Content != "hello" || rsp.SenderName != "Alice" {
				t.Fatalf("unexpected payload: %+v", rsp)
			}
		default:
			t.Fatalf("client %s received nothing", client.Uuid)
		}
	}

	history, err := d.repos.Message.FindByEvent("E1")
	if err != nil {
		t.Fatalf("find messages failed: %v", err)
	}
	if len(history) != 1 || history[0].Content != "hello" {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestHandleDropsNonParticipantFrames(t *testing.T) {
	d, _ := newTestDispatcher(t)
	bob := onlineClient(d, "Ub")

	d.handle(mustFrame(t, Frame{EventId: "E1", SenderId: "Uout", Content: "let me in"}))

	select {
	case payload := <-bob.SendBack:
		t.Fatalf("unexpected delivery: %s", payload)
	default:
	}
	history, err := d.repos.Message.FindByEvent("E1")
	if err != nil {
		t.Fatalf("find messages failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatal("a non-participant frame must not be persisted")
	}
}

func TestHandleDropsIncompleteFrames(t *testing.T) {
	d, _ := newTestDispatcher(t)

	d.handle([]byte("{not json"))
	d.handle(mustFrame(t, Frame{EventId: "E1", Content: "no sender"}))
	d.handle(mustFrame(t, Frame{EventId: "E1", SenderId: "Ua"}))

	history, err := d.repos.Message.FindByEvent("E1")
	if err != nil {
		t.Fatalf("find messages failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("messages = %d, want 0", len(history))
	}
}

// A reconnect replaces the registry entry; unregistering the stale
// connection afterwards must not evict the new one.
func TestUnregisterLeavesReconnectAlone(t *testing.T) {
	d, _ := newTestDispatcher(t)
	stale := onlineClient(d, "Ua")
	fresh := onlineClient(d, "Ua")

	d.unregister(stale)
	if got := d.getClient("Ua"); got != fresh {
		t.Fatal("expected the fresh connection to stay registered")
	}
	d.unregister(fresh)
	if d.getClient("Ua") != nil {
		t.Fatal("expected the user to be offline")
	}
}

func TestChannelBrokerDeliversPublishedFrames(t *testing.T) {
	d, _ := newTestDispatcher(t)
	broker := NewChannelBroker(d)
	go broker.Start()
	defer broker.Close()

	bob := onlineClient(d, "Ub")
	if err := broker.Publish(context.Background(), mustFrame(t, Frame{EventId: "E1", SenderId: "Ua", Content: "ping"})); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case payload := <-bob.SendBack:
		var rsp respond.ChatMessageRespond
		if err := json.Unmarshal(payload, &rsp); err != nil {
			t.Fatalf("unmarshal payload failed: %v", err)
		}
		if rsp.Content != "ping" {
			t.Fatalf("content = %q, want ping", rsp.Content)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("frame never arrived")
	}
}

func TestRetiredConnectionDropsLateFrames(t *testing.T) {
	d, _ := newTestDispatcher(t)
	alice := onlineClient(d, "Ua")
	bob := onlineClient(d, "Ub")

	// Bob's socket tore down but the dispatcher still holds the pointer.
	bob.retire()
	d.handle(mustFrame(t, Frame{EventId: "E1", SenderId: "Ua", Content: "hello"}))

	select {
	case <-alice.SendBack:
	default:
		t.Fatal("alice received nothing")
	}
	if _, ok := <-bob.SendBack; ok {
		t.Fatal("expected no frame on the retired connection")
	}
	bob.retire() // a second teardown must be a no-op
}

func TestConcurrentPushAndRetire(t *testing.T) {
	client := &UserConn{Uuid: "Ua", SendBack: make(chan []byte, 2)}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client.push([]byte(`{"content":"x"}`))
		}()
	}
	client.retire()
	wg.Wait()
}

func TestChannelBrokerRejectsWhenFull(t *testing.T) {
	d, _ := newTestDispatcher(t)
	broker := NewChannelBroker(d)
	// Never started, so the transmit channel only fills up.
	frame := mustFrame(t, Frame{EventId: "E1", SenderId: "Ua", Content: "x"})
	for i := 0; i < constants.CHANNEL_SIZE; i++ {
		if err := broker.Publish(context.Background(), frame); err != nil {
			t.Fatalf("publish %d failed: %v", i, err)
		}
	}
	if err := broker.Publish(context.Background(), frame); !errors.Is(err, errorx.ErrServerBusy) {
		t.Fatalf("err = %v, want ErrServerBusy", err)
	}
}
