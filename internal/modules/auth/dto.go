package auth

type RegisterRequest struct {
	Firstname    string `json:"firstname" binding:"required"`
	Lastname     string `json:"lastname" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	ContactPhone string `json:"contactPhone" binding:"required"`
	Address      string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
}
