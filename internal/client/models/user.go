package models

// Role is a QuickServe account role.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleProvider Role = "SERVICE_PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	ID              int64  `json:"id"`
	FullName        string `json:"fullName,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Role            Role   `json:"role,omitempty"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
	// ProviderID is set only for service providers.
	ProviderID *int64 `json:"providerId,omitempty"`
}

// AuthPayload is the body returned by login, signup and refresh.
type AuthPayload struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
	User         *User  `json:"user,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest registers a service provider.
type SignupRequest struct {
	FullName          string   `json:"fullName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Password          string   `json:"password"`
	AadharNumber      string   `json:"aadharNumber,omitempty"`
	Address           string   `json:"address,omitempty"`
	City              string   `json:"city,omitempty"`
	State             string   `json:"state,omitempty"`
	Pincode           string   `json:"pincode,omitempty"`
	PrimaryService    string   `json:"primaryService,omitempty"`
	SecondaryServices []string `json:"secondaryServices,omitempty"`
	Experience        int      `json:"experience,omitempty"`
	ServiceRadius     int      `json:"serviceRadius,omitempty"`
	HourlyRate        float64  `json:"hourlyRate,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	Languages         []string `json:"languages,omitempty"`
}

type CustomerSignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}
