package user

import "time"

const (
	TestAccountEmail    = "demo@finesight.com"
	TestAccountPassword = "demo123"
	TestAccountName     = "Demo User"
)

type RegisterPayload struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyOtpPayload struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

type RefreshPayload struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UserDocument is the persisted user record. OTP and refresh-token state are
// unset (omitted) rather than zeroed so that "no pending OTP" and "no active
// session" are observable.
type UserDocument struct {
	Id                 string     `bson:"_id"`
	Email              string     `bson:"email"`
	Password           string     `bson:"password"`
	Name               string     `bson:"name"`
	IsVerified         bool       `bson:"isVerified"`
	Otp                string     `bson:"otp,omitempty"`
	OtpExpiry          *time.Time `bson:"otpExpiry,omitempty"`
	RefreshToken       string     `bson:"refreshToken,omitempty"`
	RefreshTokenExpiry *time.Time `bson:"refreshTokenExpiry,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt"`
}

type PublicUser struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RegisterResult struct {
	Message string `json:"message"`
	UserId  string `json:"userId"`
}

type LoginResult struct {
	Message      string     `json:"message"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         PublicUser `json:"user"`
}

type RefreshResult struct {
	AccessToken string     `json:"accessToken"`
	User        PublicUser `json:"user"`
}

type TestAccountCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type TestAccountResult struct {
	Message     string                 `json:"message"`
	Credentials TestAccountCredentials `json:"credentials"`
}
