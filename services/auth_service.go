package services

import (
	"context"
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/pratapadwait/pratapliving/errors"
	"github.com/pratapadwait/pratapliving/models"
	"github.com/pratapadwait/pratapliving/services/logger"
)

// AuthService backs the opt-in admin gate. The original site shipped
// without any auth on mutation routes; this only runs when ADMIN_AUTH
// is enabled.
type AuthService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AuthServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuthService{db: opts.DB, logger: l}
}

// Login checks the credentials against the users table and issues a
// token. Unknown username and wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.ErrInvalidPassword
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", apperrors.ErrInvalidPassword
	}
	return IssueToken(user.ID, user.Username)
}

// EnsureAdmin creates the bootstrap operator account from ADMIN_USERNAME
// and ADMIN_PASSWORD if it does not exist yet.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	var existing models.User
	err := s.db.WithContext(ctx).First(&existing, "username = ?", username).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.logger.Info("creating bootstrap admin user %q", username)
	return s.db.WithContext(ctx).Create(&models.User{Username: username, Password: string(hash)}).Error
}
