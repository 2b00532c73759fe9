package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It is backend-agnostic: all queries are built through the dialect's
// placeholder format and issued through the generic [Fetch]/[Exec] layer,
// so the same code serves PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect.Name()).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) ([]Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByLoginQuery(r.db.dialect, login)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByLogin").Msg("error: building query failed")
		return nil, err
	}

	rows, err := Fetch(ctx, r.db, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByLogin").Str("login", login).Msg("error: fetch failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rows, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(r.db.dialect)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error: building query failed")
		return nil, err
	}

	rows, err := Fetch(ctx, r.db, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error: fetch failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rows, nil
}

// Create inserts the user in a single statement. There is no prior lookup:
// the UNIQUE constraint on login is the authority on duplicates, which
// closes the check-then-insert race between concurrent creates.
func (r *userRepository) Create(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.dialect, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: building query failed")
		return err
	}

	if _, err := Exec(ctx, r.db, query, args...); err != nil {
		if r.db.dialect.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.Create").Str("login", user.Login).Msg("login already taken")
			return ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.Create").Msg("error: insert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, login string, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.dialect, login, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("error: building query failed")
		return err
	}

	outcome, err := Exec(ctx, r.db, query, args...)
	if err != nil {
		if r.db.dialect.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.Update").Str("login", user.Login).Msg("new login already taken")
			return ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.Update").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if outcome.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, login string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.dialect, login)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error: building query failed")
		return err
	}

	outcome, err := Exec(ctx, r.db, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if outcome.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
