// Package repository defines the data access interfaces and their aggregate.
// The Repository pattern keeps data access separate from business logic; all
// interfaces live here and each implementation in its own file.
package repository

import (
	"time"

	"gather_server/internal/model"

	"gorm.io/gorm"
)

// UserRepository provides user lookups and account creation.
type UserRepository interface {
	// FindByUuid finds a user by public id
	FindByUuid(uuid string) (*model.User, error)
	// FindByEmail finds a user by login email
	FindByEmail(email string) (*model.User, error)
	// FindByUuids batch-finds users by public ids
	FindByUuids(uuids []string) ([]model.User, error)
	// Create inserts a new account
	Create(user *model.User) error
	// Update persists profile changes
	Update(user *model.User) error
}

// RoleRepository resolves the seeded event role vocabulary.
type RoleRepository interface {
	// FindByName resolves a role name to its row
	FindByName(name string) (*model.RoleEvent, error)
	// FindById resolves a role id to its row
	FindById(id uint) (*model.RoleEvent, error)
	// Seed inserts any missing vocabulary rows, never mutating existing ones
	Seed(names []string) error
}

// EventRepository provides event storage.
type EventRepository interface {
	// FindByUuid finds an event by public id
	FindByUuid(uuid string) (*model.Event, error)
	// FindByUuids batch-finds events by public ids
	FindByUuids(uuids []string) ([]model.Event, error)
	// Create inserts a new event
	Create(event *model.Event) error
	// Update persists event changes
	Update(event *model.Event) error
}

// ParticipantRepository manages event membership rows.
type ParticipantRepository interface {
	// FindByEventAndUser finds a membership row, Role preloaded
	FindByEventAndUser(eventUuid, userUuid string) (*model.Participant, error)
	// FindByEvent lists an event's memberships, Role preloaded
	FindByEvent(eventUuid string) ([]model.Participant, error)
	// FindByUser lists a user's memberships
	FindByUser(userUuid string) ([]model.Participant, error)
	// Create inserts a membership row
	Create(p *model.Participant) error
	// UpdateRole changes the role of one membership row
	UpdateRole(id uint, roleId uint) error
}

// EventInvitationRepository manages pending event invites.
type EventInvitationRepository interface {
	// FindByEventAndUser finds the pending invite for (event, user)
	FindByEventAndUser(eventUuid, userUuid string) (*model.EventInvitation, error)
	// FindByUser lists a user's pending invites
	FindByUser(userUuid string) ([]model.EventInvitation, error)
	// FindUsersInvited returns which of the given users already hold an
	// invite for the event
	FindUsersInvited(eventUuid string, userUuids []string) ([]string, error)
	// CountByUser counts a user's pending invites
	CountByUser(userUuid string) (int64, error)
	// CreateBatch inserts one row per invitee in a single statement
	CreateBatch(invitations []model.EventInvitation) error
	// Delete removes a pending invite
	Delete(id uint) error
}

// FriendRepository manages confirmed friend pairs. All pair arguments are
// canonicalized by the implementation, callers may pass either order.
type FriendRepository interface {
	// FindByPair finds the pair row for two users
	FindByPair(a, b string) (*model.Friend, error)
	// ExistsPair reports whether two users are friends
	ExistsPair(a, b string) (bool, error)
	// FindByUser lists all pair rows involving a user
	FindByUser(userUuid string) ([]model.Friend, error)
	// Create inserts a pair row in canonical order
	Create(a, b string) error
	// DeletePair removes the pair row for two users
	DeletePair(a, b string) error
}

// FriendInvitationRepository manages directional friend requests.
type FriendInvitationRepository interface {
	// FindById finds a request by row id
	FindById(id uint) (*model.FriendInvitation, error)
	// FindBySenderAndTarget finds the request sender -> target
	FindBySenderAndTarget(sender, target string) (*model.FriendInvitation, error)
	// FindByTarget lists pending requests addressed to a user
	FindByTarget(target string) ([]model.FriendInvitation, error)
	// CountByTarget counts pending requests addressed to a user
	CountByTarget(target string) (int64, error)
	// Create inserts a request row
	Create(inv *model.FriendInvitation) error
	// Delete removes a request by row id
	Delete(id uint) error
	// DeleteByTarget removes every pending request addressed to a user
	DeleteByTarget(target string) error
}

// GiftRepository manages gift lists and their gifts.
type GiftRepository interface {
	// FindListById finds a list, gifts preloaded
	FindListById(id uint) (*model.ListGift, error)
	// FindListsByUser lists a user's own lists
	FindListsByUser(userUuid string) ([]model.ListGift, error)
	// CreateList inserts a new list
	CreateList(list *model.ListGift) error
	// DeleteList removes a list and its gifts
	DeleteList(id uint) error
	// FindGiftById finds one gift
	FindGiftById(id uint) (*model.Gift, error)
	// CreateGift inserts a gift into a list
	CreateGift(gift *model.Gift) error
	// DeleteGift removes a gift
	DeleteGift(id uint) error
	// UpdateGiftTaken toggles the taken/takenBy pair as one field update
	UpdateGiftTaken(id uint, taken bool, takenBy string) error
}

// ListEventRepository manages gift list links into events.
type ListEventRepository interface {
	// FindById finds a link by row id
	FindById(id uint) (*model.ListEvent, error)
	// FindByParticipantAndEvent finds a participant's link for an event
	FindByParticipantAndEvent(participantId uint, eventUuid string) (*model.ListEvent, error)
	// FindByEvent lists all links for an event
	FindByEvent(eventUuid string) ([]model.ListEvent, error)
	// Create inserts a link row
	Create(le *model.ListEvent) error
	// Delete removes a link row
	Delete(id uint) error
}

// BringRepository manages bring items and their pledges.
type BringRepository interface {
	// FindItemById finds one item
	FindItemById(id uint) (*model.BringItem, error)
	// FindItemByIdLocked finds one item under FOR UPDATE so concurrent
	// pledge reconciliations serialize per item
	FindItemByIdLocked(id uint) (*model.BringItem, error)
	// FindItemsByEvent lists an event's items with nested pledges,
	// ordered by creation time
	FindItemsByEvent(eventUuid string) ([]model.BringItem, error)
	// CreateItem inserts a new item
	CreateItem(item *model.BringItem) error
	// DeleteItem removes an item and its pledges
	DeleteItem(id uint) error
	// UpdateCoverage persists the derived is_taken/taken_at pair
	UpdateCoverage(id uint, isTaken bool, takenAt *time.Time) error
	// FindTake finds one user's pledge on an item
	FindTake(bringItemId uint, userUuid string) (*model.Taken, error)
	// UpsertTake creates or overwrites one user's pledge
	UpsertTake(take *model.Taken) error
	// DeleteTake removes one user's pledge
	DeleteTake(bringItemId uint, userUuid string) error
	// SumTakes returns the live sum of pledge quantities for an item
	SumTakes(bringItemId uint) (int, error)
}

// MessageRepository persists event chat messages.
type MessageRepository interface {
	// Create inserts a message
	Create(msg *model.Message) error
	// FindByEvent lists an event's messages in creation order
	FindByEvent(eventUuid string) ([]model.Message, error)
}

// Repositories aggregates every repository instance.
// It is the dependency injection entry point; the service layer reaches the
// data layer only through this struct.
type Repositories struct {
	db              *gorm.DB
	User            UserRepository
	Role            RoleRepository
	Event           EventRepository
	Participant     ParticipantRepository
	EventInvitation EventInvitationRepository
	Friend          FriendRepository
	FriendInv       FriendInvitationRepository
	Gift            GiftRepository
	ListEvent       ListEventRepository
	Bring           BringRepository
	Message         MessageRepository
}

// NewRepositories builds the aggregate on a gorm handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:              db,
		User:            NewUserRepository(db),
		Role:            NewRoleRepository(db),
		Event:           NewEventRepository(db),
		Participant:     NewParticipantRepository(db),
		EventInvitation: NewEventInvitationRepository(db),
		Friend:          NewFriendRepository(db),
		FriendInv:       NewFriendInvitationRepository(db),
		Gift:            NewGiftRepository(db),
		ListEvent:       NewListEventRepository(db),
		Bring:           NewBringRepository(db),
		Message:         NewMessageRepository(db),
	}
}

// Transaction runs fn inside a database transaction; all operations commit
// together or roll back together. fn receives a Repositories aggregate bound
// to the transaction handle. An aggregate assembled without a db (service
// tests with fake repositories) runs fn against itself.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
