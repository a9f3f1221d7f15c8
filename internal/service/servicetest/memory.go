// Package servicetest provides an in-memory repository aggregate for
// service tests. The fakes mirror the real repositories' error contract:
// missing rows surface CodeNotFound, unique violations CodeConflict, so
// the services under test cannot tell them from the gorm-backed ones.
package servicetest

import (
	"database/sql"
	"sync"
	"time"

	"gather_server/internal/dao/postgres/repository"
	"gather_server/internal/model"
	"gather_server/pkg/enum/role"
	"gather_server/pkg/errorx"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func notFound() error {
	return errorx.Wrap(gorm.ErrRecordNotFound, errorx.CodeNotFound, "record not found")
}

func conflict() error {
	return errorx.Wrap(gorm.ErrDuplicatedKey, errorx.CodeConflict, "duplicate key")
}

// Store holds all in-memory state behind one lock.
type Store struct {
	mu sync.Mutex

	users        map[string]*model.User
	roles        []model.RoleEvent
	events       map[string]*model.Event
	participants []*model.Participant
	eventInvs    []*model.EventInvitation
	friends      []*model.Friend
	friendInvs   []*model.FriendInvitation
	lists        map[uint]*model.ListGift
	gifts        map[uint]*model.Gift
	listEvents   []*model.ListEvent
	items        map[uint]*model.BringItem
	takes        []*model.Taken
	messages     []*model.Message

	nextId uint
}

// NewRepositories builds a fresh store with the role vocabulary seeded and
// returns the aggregate plus the store for direct state assertions.
// The aggregate carries no db handle, so Transaction runs its callback
// directly against the same fakes.
func NewRepositories() (*repository.Repositories, *Store) {
	s := &Store{
		users:  make(map[string]*model.User),
		events: make(map[string]*model.Event),
		lists:  make(map[uint]*model.ListGift),
		gifts:  make(map[uint]*model.Gift),
		items:  make(map[uint]*model.BringItem),
	}
	for _, n := range role.All() {
		s.roles = append(s.roles, model.RoleEvent{ID: s.id(), Name: string(n)})
	}
	repos := &repository.Repositories{
		User:            &userRepo{s},
		Role:            &roleRepo{s},
		Event:           &eventRepo{s},
		Participant:     &participantRepo{s},
		EventInvitation: &eventInvRepo{s},
		Friend:          &friendRepo{s},
		FriendInv:       &friendInvRepo{s},
		Gift:            &giftRepo{s},
		ListEvent:       &listEventRepo{s},
		Bring:           &bringRepo{s},
		Message:         &messageRepo{s},
	}
	return repos, s
}

func (s *Store) id() uint {
	s.nextId++
	return s.nextId
}

// AddUser seeds an account.
func (s *Store) AddUser(uuid, email, nickname string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &model.User{Uuid: uuid, Email: email, Nickname: nickname}
	u.ID = s.id()
	s.users[uuid] = u
	return u
}

// AddEvent seeds an event without any memberships.
func (s *Store) AddEvent(uuid, name, organizerId string) *model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &model.Event{Uuid: uuid, Name: name, Date: time.Now(), OrganizerId: organizerId}
	e.ID = s.id()
	s.events[uuid] = e
	return e
}

// AddParticipant seeds a membership with the named role.
func (s *Store) AddParticipant(eventUuid, userUuid string, roleName role.Name) *model.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &model.Participant{EventUuid: eventUuid, UserUuid: userUuid, RoleId: s.roleId(string(roleName))}
	p.ID = s.id()
	s.participants = append(s.participants, p)
	return p
}

// AddFriends seeds a confirmed pair.
func (s *Store) AddFriends(a, b string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u1, u2 := model.OrderPair(a, b)
	f := &model.Friend{User1Uuid: u1, User2Uuid: u2}
	f.ID = s.id()
	s.friends = append(s.friends, f)
}

// AddFriendInvitation seeds a pending directional request sender -> target.
func (s *Store) AddFriendInvitation(sender, target string) *model.FriendInvitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv := &model.FriendInvitation{UserUuid: sender, RequestUuid: target}
	inv.ID = s.id()
	s.friendInvs = append(s.friendInvs, inv)
	return inv
}

// AddEventInvitation seeds a pending event invite.
func (s *Store) AddEventInvitation(eventUuid, userUuid, organizerId string) *model.EventInvitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv := &model.EventInvitation{EventUuid: eventUuid, UserUuid: userUuid, OrganizerId: organizerId}
	inv.ID = s.id()
	s.eventInvs = append(s.eventInvs, inv)
	return inv
}

// RoleId resolves a seeded role name.
func (s *Store) RoleId(name role.Name) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roleId(string(name))
}

func (s *Store) roleId(name string) uint {
	for _, r := range s.roles {
		if r.Name == name {
			return r.ID
		}
	}
	return 0
}

func (s *Store) roleName(id uint) string {
	for _, r := range s.roles {
		if r.ID == id {
			return r.Name
		}
	}
	return ""
}

// FriendCount returns the number of confirmed pairs.
func (s *Store) FriendCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.friends)
}

// FriendInvCount returns the number of pending friend requests.
func (s *Store) FriendInvCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.friendInvs)
}

// EventInvCount returns the number of pending event invitations.
func (s *Store) EventInvCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.eventInvs)
}

// ParticipantRole returns the role name of a membership, "" when absent.
func (s *Store) ParticipantRole(eventUuid, userUuid string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.participants {
		if p.EventUuid == eventUuid && p.UserUuid == userUuid {
			return s.roleName(p.RoleId)
		}
	}
	return ""
}

// AreFriends reports whether a confirmed pair exists.
func (s *Store) AreFriends(a, b string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u1, u2 := model.OrderPair(a, b)
	for _, f := range s.friends {
		if f.User1Uuid == u1 && f.User2Uuid == u2 {
			return true
		}
	}
	return false
}

// GiftById returns a gift by id for direct assertions.
func (s *Store) GiftById(id uint) *model.Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gifts[id]
}

// Item returns a bring item by id for direct assertions.
func (s *Store) Item(id uint) *model.BringItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

type userRepo struct{ s *Store }

func (r *userRepo) FindByUuid(uuid string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[uuid]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, notFound()
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *userRepo) FindByUuids(uuids []string) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.User, 0, len(uuids))
	for _, id := range uuids {
		if u, ok := r.s.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

// hashPassword mirrors the BeforeSave hook the gorm-backed store runs, at
// minimum cost so tests stay fast.
func hashPassword(user *model.User) error {
	if user.RawPassword == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.RawPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	user.RawPassword = ""
	return nil
}

func (r *userRepo) Create(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email || u.Uuid == user.Uuid {
			return conflict()
		}
	}
	if err := hashPassword(user); err != nil {
		return err
	}
	user.ID = r.s.id()
	cp := *user
	r.s.users[user.Uuid] = &cp
	return nil
}

func (r *userRepo) Update(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.Uuid]; !ok {
		return notFound()
	}
	if err := hashPassword(user); err != nil {
		return err
	}
	cp := *user
	r.s.users[user.Uuid] = &cp
	return nil
}

type roleRepo struct{ s *Store }

func (r *roleRepo) FindByName(name string) (*model.RoleEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, re := range r.s.roles {
		if re.Name == name {
			cp := re
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *roleRepo) FindById(id uint) (*model.RoleEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, re := range r.s.roles {
		if re.ID == id {
			cp := re
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *roleRepo) Seed(names []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, name := range names {
		if r.s.roleId(name) == 0 {
			r.s.roles = append(r.s.roles, model.RoleEvent{ID: r.s.id(), Name: name})
		}
	}
	return nil
}

type eventRepo struct{ s *Store }

func (r *eventRepo) FindByUuid(uuid string) (*model.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e, ok := r.s.events[uuid]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, notFound()
}

func (r *eventRepo) FindByUuids(uuids []string) ([]model.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Event, 0, len(uuids))
	for _, id := range uuids {
		if e, ok := r.s.events[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *eventRepo) Create(event *model.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[event.Uuid]; ok {
		return conflict()
	}
	event.ID = r.s.id()
	cp := *event
	r.s.events[event.Uuid] = &cp
	return nil
}

func (r *eventRepo) Update(event *model.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[event.Uuid]; !ok {
		return notFound()
	}
	cp := *event
	r.s.events[event.Uuid] = &cp
	return nil
}

type participantRepo struct{ s *Store }

func (r *participantRepo) withRole(p *model.Participant) *model.Participant {
	cp := *p
	cp.Role = model.RoleEvent{ID: p.RoleId, Name: r.s.roleName(p.RoleId)}
	return &cp
}

func (r *participantRepo) FindByEventAndUser(eventUuid, userUuid string) (*model.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.participants {
		if p.EventUuid == eventUuid && p.UserUuid == userUuid {
			return r.withRole(p), nil
		}
	}
	return nil, notFound()
}

func (r *participantRepo) FindByEvent(eventUuid string) ([]model.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Participant
	for _, p := range r.s.participants {
		if p.EventUuid == eventUuid {
			out = append(out, *r.withRole(p))
		}
	}
	return out, nil
}

func (r *participantRepo) FindByUser(userUuid string) ([]model.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Participant
	for _, p := range r.s.participants {
		if p.UserUuid == userUuid {
			out = append(out, *r.withRole(p))
		}
	}
	return out, nil
}

func (r *participantRepo) Create(p *model.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.participants {
		if existing.EventUuid == p.EventUuid && existing.UserUuid == p.UserUuid {
			return conflict()
		}
	}
	p.ID = r.s.id()
	cp := *p
	r.s.participants = append(r.s.participants, &cp)
	return nil
}

func (r *participantRepo) UpdateRole(id uint, roleId uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.participants {
		if p.ID == id {
			p.RoleId = roleId
			return nil
		}
	}
	return notFound()
}

type eventInvRepo struct{ s *Store }

func (r *eventInvRepo) FindByEventAndUser(eventUuid, userUuid string) (*model.EventInvitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.eventInvs {
		if inv.EventUuid == eventUuid && inv.UserUuid == userUuid {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *eventInvRepo) FindByUser(userUuid string) ([]model.EventInvitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.EventInvitation
	for _, inv := range r.s.eventInvs {
		if inv.UserUuid == userUuid {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *eventInvRepo) FindUsersInvited(eventUuid string, userUuids []string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []string
	for _, id := range userUuids {
		for _, inv := range r.s.eventInvs {
			if inv.EventUuid == eventUuid && inv.UserUuid == id {
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func (r *eventInvRepo) CountByUser(userUuid string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, inv := range r.s.eventInvs {
		if inv.UserUuid == userUuid {
			n++
		}
	}
	return n, nil
}

func (r *eventInvRepo) CreateBatch(invitations []model.EventInvitation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// Mirror the all-or-nothing batch insert: a single duplicate rejects
	// the whole batch without writing any row.
	for _, inv := range invitations {
		for _, existing := range r.s.eventInvs {
			if existing.EventUuid == inv.EventUuid && existing.UserUuid == inv.UserUuid {
				return conflict()
			}
		}
	}
	for i := range invitations {
		cp := invitations[i]
		cp.ID = r.s.id()
		r.s.eventInvs = append(r.s.eventInvs, &cp)
	}
	return nil
}

func (r *eventInvRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, inv := range r.s.eventInvs {
		if inv.ID == id {
			r.s.eventInvs = append(r.s.eventInvs[:i], r.s.eventInvs[i+1:]...)
			return nil
		}
	}
	return notFound()
}

type friendRepo struct{ s *Store }

func (r *friendRepo) find(a, b string) int {
	u1, u2 := model.OrderPair(a, b)
	for i, f := range r.s.friends {
		if f.User1Uuid == u1 && f.User2Uuid == u2 {
			return i
		}
	}
	return -1
}

func (r *friendRepo) FindByPair(a, b string) (*model.Friend, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := r.find(a, b); i >= 0 {
		cp := *r.s.friends[i]
		return &cp, nil
	}
	return nil, notFound()
}

func (r *friendRepo) ExistsPair(a, b string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.find(a, b) >= 0, nil
}

func (r *friendRepo) FindByUser(userUuid string) ([]model.Friend, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Friend
	for _, f := range r.s.friends {
		if f.User1Uuid == userUuid || f.User2Uuid == userUuid {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *friendRepo) Create(a, b string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.find(a, b) >= 0 {
		return conflict()
	}
	u1, u2 := model.OrderPair(a, b)
	f := &model.Friend{User1Uuid: u1, User2Uuid: u2}
	f.ID = r.s.id()
	r.s.friends = append(r.s.friends, f)
	return nil
}

func (r *friendRepo) DeletePair(a, b string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := r.find(a, b); i >= 0 {
		r.s.friends = append(r.s.friends[:i], r.s.friends[i+1:]...)
		return nil
	}
	return notFound()
}

type friendInvRepo struct{ s *Store }

func (r *friendInvRepo) FindById(id uint) (*model.FriendInvitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.friendInvs {
		if inv.ID == id {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *friendInvRepo) FindBySenderAndTarget(sender, target string) (*model.FriendInvitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.friendInvs {
		if inv.UserUuid == sender && inv.RequestUuid == target {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *friendInvRepo) FindByTarget(target string) ([]model.FriendInvitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.FriendInvitation
	for _, inv := range r.s.friendInvs {
		if inv.RequestUuid == target {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *friendInvRepo) CountByTarget(target string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, inv := range r.s.friendInvs {
		if inv.RequestUuid == target {
			n++
		}
	}
	return n, nil
}

func (r *friendInvRepo) Create(inv *model.FriendInvitation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.friendInvs {
		if existing.UserUuid == inv.UserUuid && existing.RequestUuid == inv.RequestUuid {
			return conflict()
		}
	}
	inv.ID = r.s.id()
	cp := *inv
	r.s.friendInvs = append(r.s.friendInvs, &cp)
	return nil
}

func (r *friendInvRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, inv := range r.s.friendInvs {
		if inv.ID == id {
			r.s.friendInvs = append(r.s.friendInvs[:i], r.s.friendInvs[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (r *friendInvRepo) DeleteByTarget(target string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.friendInvs[:0]
	for _, inv := range r.s.friendInvs {
		if inv.RequestUuid != target {
			kept = append(kept, inv)
		}
	}
	r.s.friendInvs = kept
	return nil
}

type giftRepo struct{ s *Store }

func (r *giftRepo) FindListById(id uint) (*model.ListGift, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, ok := r.s.lists[id]
	if !ok {
		return nil, notFound()
	}
	cp := *list
	cp.Gifts = nil
	for _, g := range r.s.gifts {
		if g.ListId == id {
			cp.Gifts = append(cp.Gifts, *g)
		}
	}
	return &cp, nil
}

func (r *giftRepo) FindListsByUser(userUuid string) ([]model.ListGift, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.ListGift
	for _, list := range r.s.lists {
		if list.UserUuid == userUuid {
			cp := *list
			for _, g := range r.s.gifts {
				if g.ListId == list.ID {
					cp.Gifts = append(cp.Gifts, *g)
				}
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *giftRepo) CreateList(list *model.ListGift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list.ID = r.s.id()
	cp := *list
	r.s.lists[list.ID] = &cp
	return nil
}

func (r *giftRepo) DeleteList(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lists[id]; !ok {
		return notFound()
	}
	delete(r.s.lists, id)
	for gid, g := range r.s.gifts {
		if g.ListId == id {
			delete(r.s.gifts, gid)
		}
	}
	return nil
}

func (r *giftRepo) FindGiftById(id uint) (*model.Gift, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g, ok := r.s.gifts[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, notFound()
}

func (r *giftRepo) CreateGift(gift *model.Gift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	gift.ID = r.s.id()
	cp := *gift
	r.s.gifts[gift.ID] = &cp
	return nil
}

func (r *giftRepo) DeleteGift(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.gifts[id]; !ok {
		return notFound()
	}
	delete(r.s.gifts, id)
	return nil
}

func (r *giftRepo) UpdateGiftTaken(id uint, taken bool, takenBy string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.gifts[id]
	if !ok {
		return notFound()
	}
	g.Taken = taken
	g.TakenBy = takenBy
	return nil
}

type listEventRepo struct{ s *Store }

func (r *listEventRepo) FindById(id uint) (*model.ListEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, le := range r.s.listEvents {
		if le.ID == id {
			cp := *le
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *listEventRepo) FindByParticipantAndEvent(participantId uint, eventUuid string) (*model.ListEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, le := range r.s.listEvents {
		if le.ParticipantId == participantId && le.EventUuid == eventUuid {
			cp := *le
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *listEventRepo) FindByEvent(eventUuid string) ([]model.ListEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.ListEvent
	for _, le := range r.s.listEvents {
		if le.EventUuid == eventUuid {
			out = append(out, *le)
		}
	}
	return out, nil
}

func (r *listEventRepo) Create(le *model.ListEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.listEvents {
		if existing.ParticipantId == le.ParticipantId &&
			(existing.EventUuid == le.EventUuid || existing.ListId == le.ListId) {
			return conflict()
		}
	}
	le.ID = r.s.id()
	cp := *le
	r.s.listEvents = append(r.s.listEvents, &cp)
	return nil
}

func (r *listEventRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, le := range r.s.listEvents {
		if le.ID == id {
			r.s.listEvents = append(r.s.listEvents[:i], r.s.listEvents[i+1:]...)
			return nil
		}
	}
	return notFound()
}

type bringRepo struct{ s *Store }

func (r *bringRepo) withTakes(item *model.BringItem) *model.BringItem {
	cp := *item
	cp.Takes = nil
	for _, t := range r.s.takes {
		if t.BringItemId == item.ID {
			cp.Takes = append(cp.Takes, *t)
		}
	}
	return &cp
}

func (r *bringRepo) FindItemById(id uint) (*model.BringItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if item, ok := r.s.items[id]; ok {
		return r.withTakes(item), nil
	}
	return nil, notFound()
}

func (r *bringRepo) FindItemByIdLocked(id uint) (*model.BringItem, error) {
	return r.FindItemById(id)
}

func (r *bringRepo) FindItemsByEvent(eventUuid string) ([]model.BringItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.BringItem
	for _, item := range r.s.items {
		if item.EventUuid == eventUuid {
			out = append(out, *r.withTakes(item))
		}
	}
	return out, nil
}

func (r *bringRepo) CreateItem(item *model.BringItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = r.s.id()
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *bringRepo) DeleteItem(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return notFound()
	}
	delete(r.s.items, id)
	kept := r.s.takes[:0]
	for _, t := range r.s.takes {
		if t.BringItemId != id {
			kept = append(kept, t)
		}
	}
	r.s.takes = kept
	return nil
}

func (r *bringRepo) UpdateCoverage(id uint, isTaken bool, takenAt *time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.items[id]
	if !ok {
		return notFound()
	}
	item.IsTaken = isTaken
	if takenAt != nil {
		item.TakenAt = sql.NullTime{Time: *takenAt, Valid: true}
	} else {
		item.TakenAt = sql.NullTime{}
	}
	return nil
}

func (r *bringRepo) FindTake(bringItemId uint, userUuid string) (*model.Taken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.takes {
		if t.BringItemId == bringItemId && t.UserUuid == userUuid {
			cp := *t
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *bringRepo) UpsertTake(take *model.Taken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.takes {
		if t.BringItemId == take.BringItemId && t.UserUuid == take.UserUuid {
			t.Quantity = take.Quantity
			return nil
		}
	}
	take.ID = r.s.id()
	cp := *take
	r.s.takes = append(r.s.takes, &cp)
	return nil
}

func (r *bringRepo) DeleteTake(bringItemId uint, userUuid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.takes {
		if t.BringItemId == bringItemId && t.UserUuid == userUuid {
			r.s.takes = append(r.s.takes[:i], r.s.takes[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (r *bringRepo) SumTakes(bringItemId uint) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := 0
	for _, t := range r.s.takes {
		if t.BringItemId == bringItemId {
			total += t.Quantity
		}
	}
	return total, nil
}

type messageRepo struct{ s *Store }

func (r *messageRepo) Create(msg *model.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	msg.ID = r.s.id()
	msg.CreatedAt = time.Now()
	cp := *msg
	r.s.messages = append(r.s.messages, &cp)
	return nil
}

func (r *messageRepo) FindByEvent(eventUuid string) ([]model.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Message
	for _, m := range r.s.messages {
		if m.EventUuid == eventUuid {
			out = append(out, *m)
		}
	}
	return out, nil
}
