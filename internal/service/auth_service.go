package service

import (
	"context"
	"skillshare/internal/api/dto"
	"skillshare/internal/model"
	"skillshare/internal/pkg/security"
	"skillshare/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.AuthResponseDTO, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.AuthResponseDTO, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.AuthResponseDTO, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, regDTO.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     regDTO.Name,
		Email:    regDTO.Email,
		Password: passwordHash,
		Provider: model.ProviderLocal,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// Concurrent registration with the same email loses the race on the
		// unique index; report it the same way as the pre-check.
		if isDuplicateError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *authServiceImpl) issueToken(user *model.User) (*dto.AuthResponseDTO, error) {
	token, err := security.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponseDTO{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}
