package service

import (
	"gather_server/internal/dao/postgres/repository"
	"gather_server/internal/infrastructure/mailer"
	"gather_server/internal/service/auth"
	"gather_server/internal/service/bring"
	"gather_server/internal/service/event"
	"gather_server/internal/service/friend"
	"gather_server/internal/service/gift"
	"gather_server/internal/service/message"
	"gather_server/internal/service/participant"
	"gather_server/internal/service/user"
)

// Services aggregates every service instance. The handler layer reaches
// business logic only through this struct.
type Services struct {
	Auth        AuthService
	User        UserService
	Friend      FriendService
	Event       EventService
	Participant ParticipantService
	Bring       BringService
	Gift        GiftService
	Message     MessageService
}

// NewServices builds the aggregate on the repository aggregate and the mail
// dispatcher.
func NewServices(repos *repository.Repositories, mail mailer.Dispatcher) *Services {
	return &Services{
		Auth:        auth.NewAuthService(repos),
		User:        user.NewUserService(repos),
		Friend:      friend.NewFriendService(repos, mail),
		Event:       event.NewEventService(repos, mail),
		Participant: participant.NewParticipantService(repos),
		Bring:       bring.NewBringService(repos),
		Gift:        gift.NewGiftService(repos),
		Message:     message.NewMessageService(repos),
	}
}

// Svc is the global Services instance set by InitServices.
var Svc *Services

// InitServices sets the global instance; call from main after the
// repositories and mailer are ready.
func InitServices(repos *repository.Repositories, mail mailer.Dispatcher) {
	Svc = NewServices(repos, mail)
}
