package application

import (
	"errors"
	"strings"
	"time"

	"github.com/quillsign/quillsign/internal/api/middleware"
	"github.com/quillsign/quillsign/internal/domain/user"
	"github.com/quillsign/quillsign/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) Register(input user.RegisterDTO) error {
	existing, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		// An external identity minted for a past signing round can be claimed
		// by registering with its email.
		if existing.Type != user.TypeExternal {
			return ErrEmailTaken
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	usr := user.User{
		ID:       existing.ID,
		Email:    strings.ToLower(input.Email),
		Username: input.Username,
		Password: string(hashed),
		Type:     user.TypeOrigin,
	}
	if input.FullName != "" {
		usr.FullName = &input.FullName
	}
	return s.Repos.User.SaveUser(&usr)
}

func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if usr.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Username, usr.Email, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}
