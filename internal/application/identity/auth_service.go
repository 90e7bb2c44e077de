package identity

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/identity"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	ErrNotApproved        = shared.NewDomainError("ACCOUNT_NOT_APPROVED", "Your account is waiting for approval")
	ErrTokenExpired       = shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	ErrTokenInvalid       = shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	ErrTokenRevoked       = shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")
)

// AuthService handles sign-up, sign-in and the session lifecycle of
// business owners. A user's ID is the owner ID of every record they create.
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	publisher  shared.EventPublisher
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		publisher:  publisher,
		logger:     logger,
	}
}

// SignUp creates an unapproved user. No tokens are issued until an
// operator approves the account.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*UserResponse, error) {
	email := identity.NormalizeEmail(req.Email)
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	user, err := identity.NewUser(email, req.Password, identity.Profile{
		FullName:      req.FullName,
		BusinessName:  req.BusinessName,
		BusinessPhone: req.BusinessPhone,
	})
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	events := user.GetDomainEvents()
	user.ClearDomainEvents()
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events...); err != nil {
			s.logger.Error("Failed to publish sign-up event", zap.Error(err))
		}
	}

	s.logger.Info("User signed up", zap.String("user_id", user.ID.String()))
	resp := ToUserResponse(user)
	return &resp, nil
}

// SignIn verifies the credentials and issues a token pair for approved users
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, identity.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}
	if !user.CanSignIn() {
		s.logger.Info("Sign-in for unapproved account", zap.String("user_id", user.ID.String()))
		return nil, ErrNotApproved
	}
	return s.issue(user)
}

// Me returns the profile of the signed-in owner
func (s *AuthService) Me(ctx context.Context, ownerID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Refresh rotates a refresh token. The used token is revoked and the user
// must still be approved.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*SignInResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if s.blacklist != nil {
		revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if !revoked {
			revoked, err = s.blacklist.IsOwnerInvalidated(ctx, claims.OwnerID, claims.IssuedAtTime())
			if err != nil {
				return nil, err
			}
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	ownerID, err := claims.OwnerUUID()
	if err != nil {
		return nil, ErrTokenInvalid
	}
	user, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	if !user.CanSignIn() {
		return nil, ErrNotApproved
	}

	if s.blacklist != nil {
		if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.RemainingTTL()); err != nil {
			s.logger.Error("Failed to revoke used refresh token", zap.Error(err))
		}
	}
	return s.issue(user)
}

// SignOut revokes the access token the request was made with
func (s *AuthService) SignOut(ctx context.Context, claims *auth.Claims) error {
	if s.blacklist == nil || claims == nil {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		return err
	}
	s.logger.Info("User signed out", zap.String("user_id", claims.OwnerID))
	return nil
}

// Approve lets the user sign in
func (s *AuthService) Approve(ctx context.Context, email string) (*UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, identity.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	user.Approve()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("User approved", zap.String("user_id", user.ID.String()))
	resp := ToUserResponse(user)
	return &resp, nil
}

// Revoke withdraws approval and invalidates every token already issued to the user
func (s *AuthService) Revoke(ctx context.Context, email string) (*UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, identity.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	user.Revoke()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if s.blacklist != nil {
		if err := s.blacklist.InvalidateOwner(ctx, user.ID.String(), s.jwtService.RefreshTokenExpiration()); err != nil {
			return nil, err
		}
	}
	s.logger.Info("User approval revoked", zap.String("user_id", user.ID.String()))
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) issue(user *identity.User) (*SignInResponse, error) {
	pair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}
	return &SignInResponse{
		Token: TokenResponse{
			AccessToken:           pair.AccessToken,
			RefreshToken:          pair.RefreshToken,
			AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
			TokenType:             pair.TokenType,
		},
		User: ToUserResponse(user),
	}, nil
}
