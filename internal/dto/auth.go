package dto

// LoginRequest carries the shared office password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the opaque session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest rotates the shared office password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
