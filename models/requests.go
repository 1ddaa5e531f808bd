package models

// RegisterRequest carries the fields required to create an account.
type RegisterRequest struct {
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Avatar     string `json:"avatar,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
}

// LoginRequest carries the credentials of a login attempt.
//
// Identifier may be a username or an e-mail address. For compatibility with
// existing clients the username and email fields are also accepted;
// [LoginRequest.LoginIdentifier] picks the first non-empty one.
type LoginRequest struct {
	Identifier string `json:"identifier,omitempty"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password"`
}

// LoginIdentifier returns the identifier used to look the user up.
func (r LoginRequest) LoginIdentifier() string {
	switch {
	case r.Identifier != "":
		return r.Identifier
	case r.Username != "":
		return r.Username
	default:
		return r.Email
	}
}

// RefreshRequest carries a refresh token sent in the request body.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is returned by a successful login. User is always the public
// view of the account.
type LoginResult struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Pair returns the token pair of the login result.
func (r LoginResult) Pair() TokenPair {
	return TokenPair{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}
}
