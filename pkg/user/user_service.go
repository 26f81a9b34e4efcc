package user

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"Pickup-Order-System/pkg/jwt"
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error)
		UpdatePassword(ctx context.Context, userID string, req domain.UpdatePasswordRequest) error
		CreateAdmin(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		EnsureAdmin(ctx context.Context, name, phone, password string) (bool, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func ToUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Phone: user.Phone,
		Role:  user.Role,
		Address: domain.Address{
			FirstLine:  user.Address.FirstLine,
			SecondLine: user.Address.SecondLine,
			Pincode:    user.Address.Pincode,
		},
		CreatedAt: user.CreatedAt,
	}
}

func validateAddress(address domain.Address) error {
	if strings.TrimSpace(address.FirstLine) == "" || strings.TrimSpace(address.Pincode) == "" {
		return domain.ErrAddressFieldsRequired
	}
	return nil
}

func (s *userService) createAccount(ctx context.Context, req domain.RegisterRequest, role domain.Role) (*entities.User, error) {
	if len(req.Password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if err := validateAddress(req.Address); err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(req.Phone)
	if _, err := s.userRepository.GetUserByPhone(ctx, phone); err == nil {
		return nil, domain.ErrPhoneAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.Unexpected(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, domain.Unexpected(err)
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Phone:    phone,
		Password: string(hashed),
		Role:     role,
		Address: entities.Address{
			FirstLine:  req.Address.FirstLine,
			SecondLine: req.Address.SecondLine,
			Pincode:    req.Address.Pincode,
		},
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrPhoneAlreadyExists
		}
		return nil, domain.Unexpected(err)
	}
	return user, nil
}

func (s *userService) authResponse(user *entities.User) (domain.AuthResponse, error) {
	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	if err != nil {
		return domain.AuthResponse{}, domain.Unexpected(err)
	}
	return domain.AuthResponse{Token: token, User: ToUserResponse(user)}, nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	user, err := s.createAccount(ctx, req, domain.RoleUser)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByPhone(ctx, strings.TrimSpace(req.Phone))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, domain.Unexpected(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *userService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.Unexpected(err)
	}
	return user, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return ToUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}

	if phone := strings.TrimSpace(req.Phone); phone != "" && phone != user.Phone {
		taken, err := s.userRepository.PhoneTakenByOther(ctx, phone, userID)
		if err != nil {
			return domain.UserResponse{}, domain.Unexpected(err)
		}
		if taken {
			return domain.UserResponse{}, domain.ErrPhoneAlreadyExists
		}
		user.Phone = phone
	}

	if req.Address != nil {
		if err := validateAddress(*req.Address); err != nil {
			return domain.UserResponse{}, err
		}
		user.Address = entities.Address{
			FirstLine:  req.Address.FirstLine,
			SecondLine: req.Address.SecondLine,
			Pincode:    req.Address.Pincode,
		}
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrPhoneAlreadyExists
		}
		return domain.UserResponse{}, domain.Unexpected(err)
	}
	return ToUserResponse(user), nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID string, req domain.UpdatePasswordRequest) error {
	if len(req.NewPassword) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrIncorrectPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return domain.Unexpected(err)
	}
	user.Password = string(hashed)

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.Unexpected(err)
	}
	return nil
}

func (s *userService) CreateAdmin(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	admin, err := s.createAccount(ctx, req, domain.RoleAdmin)
	if err != nil {
		return domain.UserResponse{}, err
	}
	log.Infof("admin account created: %s", admin.ID)
	return ToUserResponse(admin), nil
}

// EnsureAdmin creates the bootstrap admin when no admin account exists yet.
func (s *userService) EnsureAdmin(ctx context.Context, name, phone, password string) (bool, error) {
	count, err := s.userRepository.CountUsersByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return false, domain.Unexpected(err)
	}
	if count > 0 || phone == "" || password == "" {
		return false, nil
	}

	_, err = s.createAccount(ctx, domain.RegisterRequest{
		Name:     name,
		Phone:    phone,
		Password: password,
		Address:  domain.Address{FirstLine: "-", Pincode: "-"},
	}, domain.RoleAdmin)
	if err != nil {
		return false, err
	}
	return true, nil
}
