// Package service defines the business layer interfaces consumed by the
// handler layer, and their dependency injection.
package service

import (
	"gather_server/internal/dto/request"
	"gather_server/internal/dto/respond"
)

// AuthService handles accounts and sessions.
type AuthService interface {
	// Register creates an account and signs the new user in
	Register(req request.RegisterRequest) (*respond.LoginRespond, error)
	// Login authenticates by email and password
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// Refresh rotates the access/refresh token pair
	Refresh(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error)
	// Logout revokes the caller's refresh token
	Logout(userId string) error
}

// UserService handles profile reads.
type UserService interface {
	// Get returns a user's public profile
	Get(uuid string) (*respond.FriendRespond, error)
	// SearchByEmail finds a user by exact login email
	SearchByEmail(email string) (*respond.FriendRespond, error)
}

// FriendService handles the friendship graph.
type FriendService interface {
	// Apply sends or reciprocally confirms a friend request
	Apply(senderId string, req request.ApplyFriendRequest) (*respond.ApplyFriendRespond, error)
	// Respond accepts or declines a pending request addressed to the caller
	Respond(callerId string, req request.RespondFriendRequest) error
	// Remove dissolves a confirmed friendship
	Remove(callerId, friendId string) error
	// List returns the caller's confirmed friends
	List(userId string) ([]respond.FriendRespond, error)
	// ListApplies returns pending inbound friend requests
	ListApplies(userId string) ([]respond.FriendApplyRespond, error)
}

// EventService handles events and the event invitation flow.
type EventService interface {
	// Create inserts an event and its creator membership
	Create(callerId string, req request.CreateEventRequest) (*respond.EventRespond, error)
	// Update edits an event
	Update(callerId string, req request.UpdateEventRequest) (*respond.EventRespond, error)
	// Get returns one event
	Get(callerId, eventId string) (*respond.EventRespond, error)
	// ListMine returns every event the caller participates in
	ListMine(callerId string) ([]respond.EventRespond, error)
	// BulkInvite invites a batch of friends, all-or-nothing
	BulkInvite(organizerId string, req request.BulkInviteRequest) error
	// ListInvitations returns the caller's pending event invitations
	ListInvitations(userId string) ([]respond.EventInvitationRespond, error)
	// RespondInvitation accepts or declines a pending invitation
	RespondInvitation(userId string, req request.RespondEventInvitationRequest) (*respond.RespondEventInvitationRespond, error)
	// NotificationCounts returns the pending invitation counters
	NotificationCounts(userId string) (*respond.NotificationCountsRespond, error)
}

// ParticipantService handles event membership and roles.
type ParticipantService interface {
	// List returns an event's members with role names
	List(eventId, callerId string) ([]respond.ParticipantRespond, error)
	// UpdateRole changes another participant's role
	UpdateRole(requesterId string, req request.UpdateParticipantRoleRequest) error
}

// BringService handles supply items and quantity pledges.
type BringService interface {
	// Create adds a supply item to an event
	Create(callerId string, req request.CreateBringItemRequest) (*respond.BringItemRespond, error)
	// List returns an event's items with nested pledges
	List(callerId, eventId string) ([]respond.BringItemRespond, error)
	// Take pledges a quantity, overwriting the caller's previous pledge
	Take(callerId string, req request.TakeBringItemRequest) error
	// Release withdraws the caller's pledge
	Release(callerId string, req request.ReleaseTakeRequest) error
	// Delete removes an item and its pledges
	Delete(callerId string, req request.DeleteBringItemRequest) error
}

// GiftService handles wish-lists and their sharing into events.
type GiftService interface {
	// CreateList creates a wish-list
	CreateList(callerId string, req request.CreateGiftListRequest) (*respond.GiftListRespond, error)
	// ListMine returns the caller's own wish-lists
	ListMine(callerId string) ([]respond.GiftListRespond, error)
	// DeleteList removes one of the caller's lists
	DeleteList(callerId string, listId uint) error
	// AddGift adds a gift to one of the caller's lists
	AddGift(callerId string, req request.AddGiftRequest) (*respond.GiftRespond, error)
	// DeleteGift removes a gift
	DeleteGift(callerId string, req request.DeleteGiftRequest) error
	// AddListEvent links a list into an event
	AddListEvent(callerId string, req request.AddListEventRequest) (*respond.ListEventRespond, error)
	// RemoveListEvent unlinks the caller's list from an event
	RemoveListEvent(callerId string, req request.RemoveListEventRequest) error
	// EventLists returns every list shared into an event
	EventLists(callerId, eventId string) ([]respond.ListEventRespond, error)
	// CheckGift toggles a gift's taken mark inside an event
	CheckGift(callerId string, req request.CheckGiftRequest) error
}

// MessageService handles chat history reads.
type MessageService interface {
	// History returns an event's messages in creation order
	History(callerId, eventId string) ([]respond.ChatMessageRespond, error)
}
