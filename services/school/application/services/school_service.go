package services

import (
	"context"
	"fmt"

	"github.com/ghuser/schoolsvc/pkg/logger"
	schooldomain "github.com/ghuser/schoolsvc/services/school/domain"
	domainevents "github.com/ghuser/schoolsvc/services/school/domain/events"
	"github.com/ghuser/schoolsvc/services/school/domain/models"
	"github.com/ghuser/schoolsvc/services/school/domain/query"
	"github.com/ghuser/schoolsvc/services/school/domain/repositories"
	domainsvcs "github.com/ghuser/schoolsvc/services/school/domain/services"
)

// SchoolService orchestrates the repository, query predicates, and the event
// sink. All business rules live here: the live-record predicate, the update
// merge policy, and the soft-delete transition. NotFound and invalid-name are
// expected outcomes returned as sentinel errors; storage faults propagate
// wrapped in ErrStorage.
type SchoolService struct {
	repo repositories.SchoolRepository
	pub  domainevents.Publisher
	log  logger.Logger
}

// NewSchoolService returns a SchoolService wired with the given repository,
// event publisher, and logger.
func NewSchoolService(repo repositories.SchoolRepository, pub domainevents.Publisher, log logger.Logger) *SchoolService {
	return &SchoolService{repo: repo, pub: pub, log: log}
}

// List returns one page of schools, inactive rows included. An empty result
// is a valid empty page, never an error.
func (s *SchoolService) List(ctx context.Context, page repositories.PageRequest) (repositories.Page, error) {
	p, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return repositories.Page{}, fmt.Errorf("list schools: %w", err)
	}
	return p, nil
}

// Get returns the live school with the given id. ErrSchoolNotFound covers
// rows that never existed as well as soft-deleted ones: the live-record
// predicate is ByID AND IsActive, so inactive == nonexistent on this path.
func (s *SchoolService) Get(ctx context.Context, id int64) (*models.School, error) {
	school, err := s.repo.FindOne(ctx, query.ByID(id).And(query.IsActive()))
	if err != nil {
		return nil, fmt.Errorf("get school: %w", err)
	}
	return school, nil
}

// Create validates name, persists a new active school, and publishes a
// school.created event. There is no uniqueness constraint on name, so
// "already exists" cannot occur.
func (s *SchoolService) Create(ctx context.Context, name string) (*models.School, error) {
	schoolName, err := s.validName(name)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, models.NewSchool(schoolName))
	if err != nil {
		return nil, fmt.Errorf("save school: %w", err)
	}

	s.publish(ctx, domainevents.TopicSchoolCreated, saved)
	return saved, nil
}

// Update replaces the name of the live school with the given id and publishes
// a school.updated event. Every other field (id, active flag, audit data)
// carries over unchanged. When no live record exists nothing is written and
// nothing is published.
func (s *SchoolService) Update(ctx context.Context, id int64, name string) (*models.School, error) {
	schoolName, err := s.validName(name)
	if err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, current.WithName(schoolName))
	if err != nil {
		return nil, fmt.Errorf("update school: %w", err)
	}

	s.publish(ctx, domainevents.TopicSchoolUpdated, saved)
	return saved, nil
}

// Delete soft-deletes the live school with the given id and publishes a
// school.deleted event. Inactive is terminal: a second delete of the same id
// finds no live record and returns ErrSchoolNotFound.
func (s *SchoolService) Delete(ctx context.Context, id int64) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	current.Deactivate()
	saved, err := s.repo.Save(ctx, current)
	if err != nil {
		return fmt.Errorf("delete school: %w", err)
	}

	s.publish(ctx, domainevents.TopicSchoolDeleted, saved)
	return nil
}

func (s *SchoolService) validName(name string) (models.SchoolName, error) {
	schoolName, err := models.NewSchoolName(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", schooldomain.ErrInvalidSchoolName, err)
	}
	if err := domainsvcs.ValidateName(schoolName); err != nil {
		return "", fmt.Errorf("%w: %w", schooldomain.ErrInvalidSchoolName, err)
	}
	return schoolName, nil
}

// publish delivers a lifecycle event after a successful write. Failures are
// logged, never propagated: event delivery must not fail or roll back the
// mutation that triggered it.
func (s *SchoolService) publish(ctx context.Context, topic string, school *models.School) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, topic, domainevents.FromSchool(school)); err != nil {
		s.log.ErrorContext(ctx, "school event publish failed",
			"topic", topic,
			"school_id", school.ID,
			"error", err,
		)
	}
}
