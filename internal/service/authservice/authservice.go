package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/taskhive/server/internal/config"
	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// Service handles registration and login. The ledger itself trusts whatever
// identity and role the callers hand it; this is where those come from.
type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	cfg         *config.Config
}

func New(cfg *config.Config, repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		cfg:         cfg,
	}
}

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be buyer or worker")
)

// Register creates the account with the role-dependent starting balance.
func (s *Service) Register(ctx context.Context, name, email, password, role, profilePic string) (*domain.User, error) {
	if role != domain.RoleBuyer && role != domain.RoleWorker {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	coins := s.cfg.BuyerStartCoins
	if role == domain.RoleWorker {
		coins = s.cfg.WorkerStartCoins
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		ProfilePic:   profilePic,
		Coins:        coins,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email), zap.String("role", role))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(email, role string) (string, error) {
	expirationTime := time.Now().Add(7 * 24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(email, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
