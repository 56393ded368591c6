// Package services contains server-side business logic. This file implements
// UserService, which registers users, authenticates them and manages the
// session cookie that carries their JWT.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/acquisitions/internal/common"
	"github.com/dmitrijs2005/acquisitions/internal/logging"
	"github.com/dmitrijs2005/acquisitions/internal/server/auth"
	"github.com/dmitrijs2005/acquisitions/internal/server/config"
	"github.com/dmitrijs2005/acquisitions/internal/server/models"
	"github.com/dmitrijs2005/acquisitions/internal/server/repositories/repomanager"
)

// dummyPassword is hashed once per service so that sign-in for an unknown
// email still pays for a full bcrypt comparison.
const dummyPassword = "acquisitions:no-such-user"

// RegisterInput is a validated sign-up request. An empty Role means
// common.RoleUser.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// CredentialsInput is a validated sign-in request.
type CredentialsInput struct {
	Email    string
	Password string
}

// UserService provides the credential lifecycle:
//   - Register: create a user and open a session
//   - Authenticate: verify credentials and open a session
//   - Terminate: close the session
//   - Session: resolve the presented session cookie to its claims
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	tokens      *auth.TokenIssuer
	cookies     *auth.CookieManager
	cookieName  string
	logger      logging.Logger
	dummyHash   string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	tokens := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration, nil)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	s := &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		cookies:     auth.NewCookieManager(cfg.IsProduction(), tokens.Validity()),
		cookieName:  cfg.CookieName,
		logger:      logger.With("module", "user_service"),
	}
	s.dummyHash = s.makeDummyHash()
	s.logger.Info(context.Background(), "user service ready",
		"bcrypt_cost", hasher.Cost(),
		"token_validity", tokens.Validity().String(),
	)
	return s
}

func (s *UserService) makeDummyHash() string {
	digest, err := s.hasher.Hash(dummyPassword)
	if err != nil {
		s.logger.Warn(context.Background(), "error preparing dummy hash", "error", err)
		return ""
	}
	return digest
}

// Register creates a user with a freshly hashed password, sets the session
// cookie on w and returns the public projection of the new user.
// An email that is already taken yields common.ErrDuplicateEmail, either from
// the lookup or from the unique index on insert.
func (s *UserService) Register(ctx context.Context, w http.ResponseWriter, in RegisterInput) (*models.PublicUser, error) {
	role := in.Role
	if role == "" {
		role = common.RoleUser
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		s.logger.Warn(ctx, "User with this email already exists", "email", in.Email)
		return nil, common.ErrDuplicateEmail
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Error(ctx, "error searching user", "email", in.Email, "error", err)
		return nil, fmt.Errorf("%w: error searching user: %w", common.ErrInfrastructure, err)
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err)
		return nil, err
	}

	user, err := repo.Insert(ctx, &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: digest,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			s.logger.Warn(ctx, "User with this email already exists", "email", in.Email)
			return nil, common.ErrDuplicateEmail
		}
		s.logger.Error(ctx, "error creating user", "email", in.Email, "error", err)
		return nil, fmt.Errorf("%w: error creating user: %w", common.ErrInfrastructure, err)
	}

	if err := s.startSession(w, user); err != nil {
		s.logger.Error(ctx, "error issuing token", "email", user.Email, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "User registered successfully", "email", user.Email, "id", user.ID)
	return user, nil
}

// Authenticate verifies email and password, sets the session cookie on w and
// returns the public projection of the user. Unknown emails, wrong passwords
// and unreadable stored hashes all yield common.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, w http.ResponseWriter, in CredentialsInput) (*models.PublicUser, error) {
	repo := s.repomanager.Users(s.db)

	found := true
	digest := s.dummyHash

	record, err := repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		digest = record.PasswordHash
	case errors.Is(err, common.ErrorNotFound):
		found = false
	default:
		s.logger.Error(ctx, "error searching user", "email", in.Email, "error", err)
		return nil, fmt.Errorf("%w: error searching user: %w", common.ErrInfrastructure, err)
	}

	ok, err := s.hasher.Verify(in.Password, digest)
	if err != nil && found {
		s.logger.Error(ctx, "error verifying stored password hash", "email", in.Email, "error", err)
	}
	if !found || !ok || err != nil {
		s.logger.Warn(ctx, "Sign in rejected", "email", in.Email)
		return nil, common.ErrInvalidCredentials
	}

	user := record.Public()
	if err := s.startSession(w, user); err != nil {
		s.logger.Error(ctx, "error issuing token", "email", user.Email, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "User signed in successfully", "email", user.Email)
	return user, nil
}

// Terminate clears the session cookie. It has no server-side state to drop
// and never fails.
func (s *UserService) Terminate(ctx context.Context, w http.ResponseWriter) error {
	s.cookies.Clear(w, s.cookieName)
	s.logger.Info(ctx, "User signed out successfully")
	return nil
}

// Session reads the session cookie from r and verifies its token. A missing
// cookie and any verification failure both yield common.ErrInvalidToken.
func (s *UserService) Session(r *http.Request) (*auth.Claims, error) {
	token, ok := s.cookies.Read(r, s.cookieName)
	if !ok {
		return nil, common.ErrInvalidToken
	}
	return s.tokens.Verify(token)
}

func (s *UserService) startSession(w http.ResponseWriter, u *models.PublicUser) error {
	token, err := s.tokens.Sign(auth.Claims{ID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		return fmt.Errorf("%w: error signing token: %w", common.ErrInfrastructure, err)
	}
	s.cookies.Set(w, s.cookieName, token)
	return nil
}
