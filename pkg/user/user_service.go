package user

import (
	"context"

	"expiry-tracker/domain"
	"expiry-tracker/entities"
)

type (
	UserService interface {
		List(ctx context.Context) ([]string, error)
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.RegisterUserResponse, error)
		Delete(ctx context.Context, name string) error
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) List(ctx context.Context) ([]string, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	return names, nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.RegisterUserResponse, error) {
	row := &entities.User{Name: req.Name}
	if err := s.userRepository.Register(ctx, row); err != nil {
		return domain.RegisterUserResponse{}, err
	}
	return domain.RegisterUserResponse{ID: row.ID, Name: row.Name}, nil
}

func (s *userService) Delete(ctx context.Context, name string) error {
	if name == "" {
		return domain.ErrEmptyUserName
	}
	return s.userRepository.DeleteByName(ctx, name)
}
