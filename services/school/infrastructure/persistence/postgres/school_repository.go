package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ghuser/schoolsvc/pkg/database"
	schooldomain "github.com/ghuser/schoolsvc/services/school/domain"
	"github.com/ghuser/schoolsvc/services/school/domain/models"
	"github.com/ghuser/schoolsvc/services/school/domain/query"
	"github.com/ghuser/schoolsvc/services/school/domain/repositories"
)

const schoolColumns = "id, name, active, created_at, updated_at"

// SchoolRepository implements repositories.SchoolRepository against PostgreSQL.
type SchoolRepository struct {
	db *database.Database
}

// NewSchoolRepository returns a SchoolRepository backed by the given pool.
func NewSchoolRepository(db *database.Database) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// FindAll returns one page of rows regardless of the active flag, in id order.
func (r *SchoolRepository) FindAll(ctx context.Context, page repositories.PageRequest) (repositories.Page, error) {
	return r.findPage(ctx, query.Predicate{}, page)
}

// FindAllMatching returns one page of rows matching pred, in id order.
func (r *SchoolRepository) FindAllMatching(ctx context.Context, pred query.Predicate, page repositories.PageRequest) (repositories.Page, error) {
	return r.findPage(ctx, pred, page)
}

// FindOne returns the single row matching pred. Returns ErrSchoolNotFound
// when nothing matches.
func (r *SchoolRepository) FindOne(ctx context.Context, pred query.Predicate) (*models.School, error) {
	where, args := renderPredicate(pred)
	row := r.db.Pool().QueryRow(ctx,
		"SELECT "+schoolColumns+" FROM school"+where+" LIMIT 1",
		args...,
	)
	school, err := scanSchool(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schooldomain.ErrSchoolNotFound
		}
		return nil, storageErr("query school", err)
	}
	return school, nil
}

// Save inserts when school.ID is zero, otherwise updates the row by id.
// The store assigns id and created_at on insert and bumps updated_at on
// every write; the returned School reflects the persisted row.
func (r *SchoolRepository) Save(ctx context.Context, school *models.School) (*models.School, error) {
	var row pgx.Row
	if school.ID == 0 {
		row = r.db.Pool().QueryRow(ctx, `
			INSERT INTO school (name, active)
			VALUES ($1, $2)
			RETURNING `+schoolColumns,
			school.Name.String(),
			school.Active,
		)
	} else {
		row = r.db.Pool().QueryRow(ctx, `
			UPDATE school
			SET name = $2,
			    active = $3,
			    updated_at = NOW()
			WHERE id = $1
			RETURNING `+schoolColumns,
			school.ID,
			school.Name.String(),
			school.Active,
		)
	}

	saved, err := scanSchool(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Update targeted an id that no longer exists.
			return nil, schooldomain.ErrSchoolNotFound
		}
		return nil, storageErr("save school", err)
	}
	return saved, nil
}

func (r *SchoolRepository) findPage(ctx context.Context, pred query.Predicate, page repositories.PageRequest) (repositories.Page, error) {
	where, args := renderPredicate(pred)

	var total int
	if err := r.db.Pool().QueryRow(ctx,
		"SELECT COUNT(*) FROM school"+where,
		args...,
	).Scan(&total); err != nil {
		return repositories.Page{}, storageErr("count schools", err)
	}

	limitArgs := append(args, page.Size, page.Offset())
	rows, err := r.db.Pool().Query(ctx,
		fmt.Sprintf("SELECT %s FROM school%s ORDER BY id LIMIT $%d OFFSET $%d",
			schoolColumns, where, len(args)+1, len(args)+2),
		limitArgs...,
	)
	if err != nil {
		return repositories.Page{}, storageErr("query schools", err)
	}
	defer rows.Close()

	content := make([]*models.School, 0)
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return repositories.Page{}, storageErr("scan school", err)
		}
		content = append(content, school)
	}
	if err := rows.Err(); err != nil {
		return repositories.Page{}, storageErr("iterate schools", err)
	}

	return repositories.Page{
		Content:       content,
		TotalElements: total,
		Number:        page.Number,
		Size:          page.Size,
	}, nil
}

// renderPredicate turns a query.Predicate into a WHERE clause. Conditions
// join with AND only, matching the closed predicate set of the domain.
func renderPredicate(pred query.Predicate) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if pred.ID != nil {
		args = append(args, *pred.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if pred.Active != nil {
		args = append(args, *pred.Active)
		conds = append(conds, fmt.Sprintf("active = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanSchool(row pgx.Row) (*models.School, error) {
	var (
		school models.School
		name   string
	)
	if err := row.Scan(&school.ID, &name, &school.Active, &school.CreatedAt, &school.UpdatedAt); err != nil {
		return nil, err
	}
	school.Name = models.SchoolName(name)
	return &school, nil
}

// storageErr wraps a driver error as an ErrStorage so the boundary maps it to
// a 5xx without leaking SQL detail through the error chain type.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, schooldomain.ErrStorage, err)
}
