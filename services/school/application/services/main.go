package services

import (
	"github.com/ghuser/schoolsvc/pkg/app"
	"github.com/ghuser/schoolsvc/services/school/infrastructure/messaging"
	"github.com/ghuser/schoolsvc/services/school/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	School *SchoolService
}

// New wires all school application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewSchoolRepository(a.Db)
	pub := messaging.NewBusPublisher(a.EventBus)
	return &Services{
		School: NewSchoolService(repo, pub, a.Logger),
	}
}
