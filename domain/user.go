package domain

import "errors"

var (
	MessageSuccessGetUsers     = "users retrieved successfully"
	MessageSuccessRegisterUser = "user registered successfully"
	MessageSuccessDeleteUser   = "user deleted successfully"

	MessageFailedGetUsers     = "failed to retrieve users"
	MessageFailedRegisterUser = "failed to register user"
	MessageFailedDeleteUser   = "failed to delete user"

	ErrEmptyUserName = errors.New("user name must not be empty")
)

type (
	RegisterUserRequest struct {
		Name string `json:"name" validate:"required"`
	}

	RegisterUserResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
