package dto

type RegisterRequestDTO struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"required,oneof=buyer worker"`
	ProfilePic string `json:"profilePic"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	Name       string `json:"name" example:"Jane Doe"`
	Email      string `json:"email" example:"jane@example.com"`
	Role       string `json:"role" example:"worker"`
	ProfilePic string `json:"profilePic,omitempty"`
	Coins      int64  `json:"coins" example:"10"`
}

type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
