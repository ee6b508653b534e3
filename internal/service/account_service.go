package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sampleapp/internal/cache"
	"sampleapp/internal/errors"
	"sampleapp/internal/metrics"
	"sampleapp/internal/model"
	"sampleapp/internal/repository"
	"sampleapp/internal/validation"
)

const accountCacheTTL = 5 * time.Minute

// DefaultBcryptCost is used when no cost is configured.
const DefaultBcryptCost = bcrypt.DefaultCost

const emailTakenMessage = "Email has already been taken"

// errEmailTaken reports a unique-index hit on email that raced past the
// EmailTaken check.
var errEmailTaken = errors.ValidationErrors{emailTakenMessage}

var accountSchema = validation.Schema{
	{Name: "name", Label: "Name", Rules: []validation.Rule{validation.Presence(), validation.MaxLength(50)}},
	{Name: "email", Label: "Email", Rules: []validation.Rule{validation.Presence(), validation.EmailFormat()}},
	{Name: "password", Label: "Password", Rules: []validation.Rule{validation.Presence(), validation.MinLength(6)}},
}

// AccountAttrs carries the user-editable account attributes. A nil field was
// not submitted. The admin flag is not part of it.
type AccountAttrs struct {
	Name                 *string
	Email                *string
	Password             *string
	PasswordConfirmation *string
}

// AccountService handles account operations.
type AccountService interface {
	Create(ctx context.Context, attrs AccountAttrs) (*model.Account, error)
	Update(ctx context.Context, id uuid.UUID, attrs AccountAttrs) (*model.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	List(ctx context.Context, page, perPage int) ([]model.Account, int64, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	EnsureAdmin(ctx context.Context, name, email, password string) (*model.Account, error)
}

type accountService struct {
	repo       repository.AccountRepository
	cache      *cache.Client
	validator  *validation.Validator
	bcryptCost int
}

// NewAccountService creates a new account service.
func NewAccountService(repo repository.AccountRepository, cache *cache.Client, validator *validation.Validator, bcryptCost int) AccountService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	return &accountService{
		repo:       repo,
		cache:      cache,
		validator:  validator,
		bcryptCost: bcryptCost,
	}
}

func (s *accountService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("account:%s", id.String())
}

// Create validates attrs and stores a new, non-admin account. The email
// check and the insert share one transaction.
func (s *accountService) Create(ctx context.Context, attrs AccountAttrs) (*model.Account, error) {
	values := map[string]string{
		"name":     deref(attrs.Name),
		"email":    deref(attrs.Email),
		"password": deref(attrs.Password),
	}

	var account *model.Account
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.AccountRepository) error {
		if err := s.validate(ctx, repo, values, attrs.PasswordConfirmation, uuid.Nil); err != nil {
			return err
		}

		digest, err := bcrypt.GenerateFromPassword([]byte(values["password"]), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		account = &model.Account{
			Name:           values["name"],
			Email:          normalizeEmail(values["email"]),
			PasswordDigest: string(digest),
		}
		if err := repo.Create(ctx, account); err != nil {
			if repository.IsDuplicate(err) {
				return errEmailTaken
			}
			return fmt.Errorf("create account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	return account, nil
}

// Update applies attrs to an existing account. Unsubmitted name or email
// keep their stored values; the password must be supplied every time.
func (s *accountService) Update(ctx context.Context, id uuid.UUID, attrs AccountAttrs) (*model.Account, error) {
	var account *model.Account
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.AccountRepository) error {
		// Read through the repository: cached copies carry no password digest.
		found, err := repo.FindByID(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return errors.ErrAccountNotFound
			}
			return fmt.Errorf("find account: %w", err)
		}

		values := map[string]string{
			"name":     found.Name,
			"email":    found.Email,
			"password": deref(attrs.Password),
		}
		if attrs.Name != nil {
			values["name"] = *attrs.Name
		}
		if attrs.Email != nil {
			values["email"] = *attrs.Email
		}
		if err := s.validate(ctx, repo, values, attrs.PasswordConfirmation, found.ID); err != nil {
			return err
		}

		digest, err := bcrypt.GenerateFromPassword([]byte(values["password"]), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		found.Name = values["name"]
		found.Email = normalizeEmail(values["email"])
		found.PasswordDigest = string(digest)
		if err := repo.Update(ctx, found); err != nil {
			switch {
			case repository.IsNotFound(err):
				return errors.ErrAccountNotFound
			case repository.IsDuplicate(err):
				return errEmailTaken
			}
			return fmt.Errorf("update account: %w", err)
		}
		account = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return account, nil
}

// GetAccount retrieves an account by ID with caching.
func (s *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	// Try cache first
	var cached model.Account
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	// Fetch from database
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.ErrAccountNotFound
		}
		return nil, err
	}

	// Cache the result
	_ = s.cache.SetJSON(ctx, s.cacheKey(id), account, accountCacheTTL)

	return account, nil
}

// FindByEmail looks an account up by email, ignoring case.
func (s *accountService) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	account, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return account, nil
}

// List returns one page of accounts and the total count.
func (s *accountService) List(ctx context.Context, page, perPage int) ([]model.Account, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}
	accounts, err := s.repo.List(ctx, offset(page, perPage), perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, total, nil
}

// Count returns the number of accounts.
func (s *accountService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Delete removes an account with its posts and follow edges.
func (s *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return errors.ErrAccountNotFound
		}
		return fmt.Errorf("delete account: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// EnsureAdmin creates the account if needed and grants it the admin flag.
func (s *accountService) EnsureAdmin(ctx context.Context, name, email, password string) (*model.Account, error) {
	account, err := s.FindByEmail(ctx, email)
	if err == errors.ErrAccountNotFound {
		account, err = s.Create(ctx, AccountAttrs{Name: &name, Email: &email, Password: &password})
	}
	if err != nil {
		return nil, err
	}
	if account.Admin {
		return account, nil
	}

	if err := s.repo.UpdateAdmin(ctx, account.ID, true); err != nil {
		return nil, fmt.Errorf("grant admin: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(account.ID))
	account.Admin = true
	return account, nil
}

// validate collects every rule violation for values. excludeID is ignored
// by the email uniqueness check so an account may keep its own address.
func (s *accountService) validate(ctx context.Context, repo repository.AccountRepository, values map[string]string, confirmation *string, excludeID uuid.UUID) error {
	msgs := s.validator.Validate(accountSchema, values)

	if confirmation != nil {
		if msg, ok := s.validator.Confirm("Password", values["password"], *confirmation); !ok {
			msgs = append(msgs, msg)
		}
	}

	if email := normalizeEmail(values["email"]); email != "" {
		taken, err := repo.EmailTaken(ctx, email, excludeID)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			msgs = append(msgs, emailTakenMessage)
		}
	}

	if len(msgs) > 0 {
		return errors.ValidationErrors(msgs)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}
