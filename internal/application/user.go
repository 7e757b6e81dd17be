package application

import (
	"errors"
	"fmt"

	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (*user.User, error) {
	role := user.Role(input.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, input.Role)
	}

	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := user.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashed),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
		IsActive:  true,
	}
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate verifies credentials and returns the account. Inactive
// accounts cannot log in.
func (s *UserService) Authenticate(username, password string) (*user.User, error) {
	u, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

func (s *UserService) GetUser(id uint) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}
