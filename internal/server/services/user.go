// Package services contains server-side business logic. UserService
// implements registration, login and the user CRUD operations on top of the
// auth primitives and a users.Repository.
package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/dmitrijs2005/usermgmt/internal/server/models"
	"github.com/dmitrijs2005/usermgmt/internal/server/repositories/users"
	"github.com/google/uuid"
)

// PasswordHasher is satisfied by *auth.PasswordHasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) (bool, error)
}

// TokenIssuer is satisfied by *auth.TokenService.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
}

type UserService struct {
	users  users.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger logging.Logger
	newID  func() string

	// dummyDigest is compared against on unknown-email logins so both
	// failure paths cost one bcrypt comparison.
	dummyOnce   sync.Once
	dummyDigest string
}

func NewUserService(repo users.Repository, hasher PasswordHasher, tokens TokenIssuer, l logging.Logger) *UserService {
	return &UserService{
		users:  repo,
		hasher: hasher,
		tokens: tokens,
		logger: l.With("module", "user_service"),
		newID:  uuid.NewString,
	}
}

// GetUser returns the public view of user id.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.PublicUser, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Public(), nil
}

// RegisterUser validates req, rejects an email id that is already taken,
// hashes the password and stores the new user.
func (s *UserService) RegisterUser(ctx context.Context, req RegisterUserRequest) (*models.PublicUser, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	req.EmailID = NormalizeEmail(req.EmailID)

	_, err := s.users.GetByEmail(ctx, req.EmailID)
	switch {
	case err == nil:
		return nil, common.NewValidationError(common.CodeEmailTaken, common.MsgEmailTaken)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, dbError(err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, &models.User{
		ID:       s.newID(),
		EmailID:  req.EmailID,
		UserName: req.UserName,
		FullName: req.FullName,
		Password: digest,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.NewValidationError(common.CodeEmailTaken, common.MsgEmailTaken)
		}
		return nil, dbError(err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u.Public(), nil
}

// UpdateUser changes the supplied fields of req.ID. A new password is
// re-hashed before it is stored.
func (s *UserService) UpdateUser(ctx context.Context, req UpdateUserRequest) (*models.PublicUser, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	upd := models.UserUpdate{UserName: req.UserName, FullName: req.FullName}
	if req.Password != "" {
		digest, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		upd.Password = digest
	}

	current, err := s.getUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return current.Public(), nil
	}

	u, err := s.users.Update(ctx, req.ID, upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, invalidUserID(req.ID)
		}
		return nil, dbError(err)
	}

	s.logger.Info(ctx, "user updated", "user_id", u.ID)
	return u.Public(), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.getUser(ctx, id); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return invalidUserID(id)
		}
		return dbError(err)
	}

	s.logger.Info(ctx, "user deleted", "user_id", id)
	return nil
}

// LoginUser checks the credentials in req and issues a token for the user.
// An unknown email id and a wrong password produce the same error.
func (s *UserService) LoginUser(ctx context.Context, req LoginUserRequest) (*LoginResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, NormalizeEmail(req.EmailID))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.compareDummy(req.Password)
			s.logger.Warn(ctx, "login failed")
			return nil, invalidCredentials()
		}
		return nil, dbError(err)
	}

	ok, err := s.hasher.Compare(req.Password, u.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn(ctx, "login failed")
		return nil, invalidCredentials()
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "user_id", u.ID)
	return &LoginResult{Token: token}, nil
}

func (s *UserService) getUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, invalidUserID(id)
		}
		return nil, dbError(err)
	}
	return u, nil
}

func (s *UserService) compareDummy(plaintext string) {
	s.dummyOnce.Do(func() {
		// empty on hash failure, then no comparison is made
		s.dummyDigest, _ = s.hasher.Hash("dummy-Passw0rd!")
	})
	if s.dummyDigest != "" {
		_, _ = s.hasher.Compare(plaintext, s.dummyDigest)
	}
}

// NormalizeEmail is the form email ids are stored and looked up in.
func NormalizeEmail(emailID string) string {
	return strings.ToLower(strings.TrimSpace(emailID))
}

func invalidUserID(id string) error {
	return common.NewValidationError(common.CodeInvalidUserID, common.MsgInvalidUserID+" "+id)
}

func invalidCredentials() error {
	return common.NewAuthenticationError(common.CodeInvalidCredentials, common.MsgInvalidCredentials, nil)
}

func dbError(err error) error {
	return common.NewSystemError(common.CodeDatabase, common.MsgDatabase, err)
}
