package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"

	"github.com/planventura/eventos-api/internal/auth"
	"github.com/planventura/eventos-api/internal/bus"
	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/logger"
	"github.com/planventura/eventos-api/internal/mailer"
	"github.com/planventura/eventos-api/internal/repository"
)

// AuthService owns credential verification and token issuance for both
// account kinds. Handlers only ever see (account, signed token, error).
type AuthService interface {
	RegisterUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, string, error)
	LoginUser(ctx context.Context, req *domain.LoginRequest) (*domain.User, string, error)
	RegisterOrganizer(ctx context.Context, req *domain.CreateOrganizerRequest) (*domain.Organizer, string, error)
	LoginOrganizer(ctx context.Context, req *domain.OrganizerLoginRequest) (*domain.Organizer, string, error)
}

type authService struct {
	userRepo      repository.UserRepository
	organizerRepo repository.OrganizerRepository
	mailer        mailer.Service
	publisher     bus.Publisher
	jwtSecret     string
	sessionTTL    time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	organizerRepo repository.OrganizerRepository,
	mail mailer.Service,
	publisher bus.Publisher,
	jwtSecret string,
	sessionTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		organizerRepo: organizerRepo,
		mailer:        mail,
		publisher:     publisher,
		jwtSecret:     jwtSecret,
		sessionTTL:    sessionTTL,
	}
}

func (s *authService) RegisterUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req, passwordHash)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.NewSessionToken(user.ID, user.Email, auth.KindUser, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session token: %w", err)
	}

	if err := s.publisher.Publish(ctx, bus.UserRegistered, bus.UserRegisteredEvent{
		UserID:    user.ID,
		Email:     user.Email,
		UserName:  user.UserName,
		CreatedAt: user.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish user.registered", "error", err, "user_id", user.ID)
	}

	if err := s.mailer.SendWelcome(user.Email, user.UserName); err != nil {
		logger.WarnContext(ctx, "failed to send welcome email", "error", err, "user_id", user.ID)
	}

	return user, token, nil
}

func (s *authService) LoginUser(ctx context.Context, req *domain.LoginRequest) (*domain.User, string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	valid, err := argon2id.ComparePasswordAndHash(req.Password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken(user.ID, user.Email, auth.KindUser, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session token: %w", err)
	}

	return user, token, nil
}

func (s *authService) RegisterOrganizer(ctx context.Context, req *domain.CreateOrganizerRequest) (*domain.Organizer, string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	contactHash, err := bcrypt.GenerateFromPassword([]byte(req.Contact), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash contact secret: %w", err)
	}

	organizer, err := s.organizerRepo.Create(ctx, req, string(contactHash))
	if err != nil {
		return nil, "", err
	}

	token, err := auth.NewSessionToken(organizer.ID, organizer.OrganizerName, auth.KindOrganizer, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session token: %w", err)
	}

	if err := s.publisher.Publish(ctx, bus.OrganizerRegistered, map[string]interface{}{
		"organizer_id":   organizer.ID,
		"organizer_name": organizer.OrganizerName,
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish organizer.registered", "error", err, "organizer_id", organizer.ID)
	}

	return organizer, token, nil
}

func (s *authService) LoginOrganizer(ctx context.Context, req *domain.OrganizerLoginRequest) (*domain.Organizer, string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	organizer, err := s.organizerRepo.FindByName(ctx, req.OrganizerName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find organizer: %w", err)
	}
	if organizer == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organizer.ContactHash), []byte(req.Contact)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken(organizer.ID, organizer.OrganizerName, auth.KindOrganizer, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session token: %w", err)
	}

	return organizer, token, nil
}
