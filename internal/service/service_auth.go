package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/notes-board/internal/config"
	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/store"
	"github.com/MKhiriev/notes-board/internal/utils"
	"github.com/MKhiriev/notes-board/internal/validators"
	"github.com/MKhiriev/notes-board/models"
	"golang.org/x/crypto/bcrypt"
)

// authService registers password accounts, verifies credentials with bcrypt
// and issues HS256 bearer tokens whose subject is the account uid.
type authService struct {
	accountRepository store.AccountRepository

	// hashCost is the bcrypt cost used for new accounts.
	hashCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	uidGenerator *utils.UIDGenerator
	validator    validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] over accountRepository using the
// token and hashing parameters of cfg.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		accountRepository: accountRepository,
		hashCost:          cost,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		uidGenerator:      utils.NewUIDGenerator(),
		validator:         validators.NewBoardValidator(),
		logger:            logger,
	}
}

// SignUp hashes the password and stores a new account under a fresh UUIDv7.
//
// Returns [ErrInvalidDataProvided] for an empty email or password and a
// wrapped [store.ErrEmailAlreadyExists] when the email is taken.
func (a *authService) SignUp(ctx context.Context, credentials models.Credentials) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("email", credentials.Email).Msg("invalid sign up data provided")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.hashCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.Identity{}, fmt.Errorf("error hashing password: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		UID:          a.uidGenerator.Generate(),
		Email:        credentials.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("account creation ended with error")
		return models.Identity{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return account.Identity(), nil
}

// Login looks the account up by email and compares the password with the
// stored hash. Unknown email and wrong password both yield
// [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Account{}, ErrInvalidCredentials
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Debug().Str("email", credentials.Email).Msg("no account for email")
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Str("uid", account.UID).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	return account, nil
}

func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.UID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies signature, expiry and issuer. Every failure is reported
// as [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) FindAccount(ctx context.Context, uid string) (models.Account, error) {
	account, err := a.accountRepository.FindAccountByUID(ctx, uid)
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by uid failed: %w", err)
	}

	return account, nil
}
