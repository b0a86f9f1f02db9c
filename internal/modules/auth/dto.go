package auth

type LoginRequest struct {
	RollNo string `json:"roll_no" binding:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	RollNo  string `json:"roll_no"`
	Student any    `json:"student"`
}
