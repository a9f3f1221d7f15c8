// Package role defines the fixed event role vocabulary.
// Roles live in the role_event lookup table (seeded once at startup); this
// package gives the seeded names a narrow type so permission checks stay
// exhaustive instead of comparing open strings.
package role

// Name is a seeded role name.
type Name string

const (
	SuperAdmin  Name = "superAdmin"  // event creator, immutable
	Admin       Name = "admin"       // can invite and manage roles below admin
	Gift        Name = "gift"        // may link gift lists into the event
	Participant Name = "participant" // default role for accepted invitees
)

// All lists the seeded vocabulary in seeding order.
func All() []Name {
	return []Name{SuperAdmin, Admin, Gift, Participant}
}

// Parse resolves a stored role name, reporting whether it is part of the
// seeded vocabulary.
func Parse(s string) (Name, bool) {
	switch Name(s) {
	case SuperAdmin, Admin, Gift, Participant:
		return Name(s), true
	}
	return "", false
}

// CanManageRoles reports whether a role may change other participants' roles
// or send event invitations.
func (n Name) CanManageRoles() bool {
	return n == Admin || n == SuperAdmin
}

// CanLinkGiftList reports whether a role may link a gift list into an event.
func (n Name) CanLinkGiftList() bool {
	return n == Admin || n == Gift
}

// organizerAliases covers role names that count as event organizers when
// deciding who may delete another participant's bring item. Kept wider than
// the seeded vocabulary so externally provisioned rows keep working.
var organizerAliases = map[string]struct{}{
	"owner":     {},
	"organizer": {},
	"admin":     {},
	"host":      {},
}

// IsOrganizerAlias reports whether a raw role name is in the organizer
// allow-list for bring-item deletion.
func IsOrganizerAlias(s string) bool {
	_, ok := organizerAliases[s]
	return ok
}
