package model

type User struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

// Session là bản ghi phiên lưu tại Redis, thay cho localStorage của trình duyệt.
// AccessToken của backend chỉ nằm trong bản ghi này, handler không trả nó ra ngoài.
type Session struct {
	Id          string  `json:"id"`
	User        User    `json:"user"`
	Balance     float64 `json:"balance"`
	AccessToken string  `json:"accessToken"`
}

type LoginResponse struct {
	AccessToken    string `json:"accessToken"`
	RefreshToken   string `json:"refreshToken"`
	Expires        string `json:"expires"`
	RefreshExpires string `json:"refreshExpires"`
}

type TopUpInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
