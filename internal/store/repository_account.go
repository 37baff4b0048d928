package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/models"
	sq "github.com/Masterminds/squirrel"
)

var accountColumns = []string{"uid", "email", "password_hash", "created_at"}

// accountRepository is the SQL implementation of [AccountRepository] over the
// "users" table.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts account as is. A unique violation on email from
// either driver becomes [ErrEmailAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert("users").
		Columns(accountColumns...).
		Values(account.UID, account.Email, account.PasswordHash, account.CreatedAt).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return account, nil
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

func (r *accountRepository) FindAccountByUID(ctx context.Context, uid string) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"uid": uid})
}

func (r *accountRepository) findOne(ctx context.Context, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(accountColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&account.UID, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.findOne").Msg("error scanning account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}
