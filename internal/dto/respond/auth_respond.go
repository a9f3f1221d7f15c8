package respond

// LoginRespond carries the profile and token pair after register/login.
type LoginRespond struct {
	UserId       string `json:"userId"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenRespond carries the renewed token pair.
type RefreshTokenRespond struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
