package domain

import "time"

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessUpdatePassword = "password updated successfully"
	MessageSuccessCreateAdmin    = "admin created successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedUpdatePassword = "failed to update password"
	MessageFailedCreateAdmin    = "failed to create admin"

	ErrUserNotFound          = NewError(ErrNotFound, "user not found")
	ErrPhoneAlreadyExists    = NewError(ErrConflict, "user with this phone number already exists")
	ErrInvalidCredentials    = NewError(ErrUnauthorized, "invalid phone or password")
	ErrPasswordTooShort      = NewError(ErrInvalidInput, "password must be at least 6 characters")
	ErrIncorrectPassword     = NewError(ErrInvalidInput, "current password is incorrect")
	ErrAddressFieldsRequired = NewError(ErrInvalidInput, "address first line and pincode are required")
)

const MinPasswordLength = 6

type (
	Address struct {
		FirstLine  string `json:"first_line" validate:"required"`
		SecondLine string `json:"second_line,omitempty"`
		Pincode    string `json:"pincode" validate:"required"`
	}

	RegisterRequest struct {
		Name     string  `json:"name" validate:"required"`
		Phone    string  `json:"phone" validate:"required"`
		Password string  `json:"password" validate:"required,min=6"`
		Address  Address `json:"address" validate:"required"`
	}

	LoginRequest struct {
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UpdateProfileRequest struct {
		Name    string   `json:"name" validate:"omitempty"`
		Phone   string   `json:"phone" validate:"omitempty"`
		Address *Address `json:"address" validate:"omitempty"`
	}

	UpdatePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=6"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Phone     string    `json:"phone"`
		Role      Role      `json:"role"`
		Address   Address   `json:"address"`
		CreatedAt time.Time `json:"created_at"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
