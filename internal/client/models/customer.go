package models

type CustomerProfile struct {
	ID                int64  `json:"id"`
	FullName          string `json:"fullName,omitempty"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	ProfilePhotoURL   string `json:"profilePhotoUrl,omitempty"`
	Address           string `json:"address,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	Pincode           string `json:"pincode,omitempty"`
	TotalBookings     int    `json:"totalBookings"`
	CompletedBookings int    `json:"completedBookings"`
	CancelledBookings int    `json:"cancelledBookings"`
	MemberSince       string `json:"memberSince,omitempty"`
}

type CustomerProfileUpdate struct {
	FullName        string `json:"fullName,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	Pincode         string `json:"pincode,omitempty"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

// CustomerBooking is the customer's view of a booking.
type CustomerBooking struct {
	ID                 int64         `json:"id"`
	ProviderID         int64         `json:"providerId,omitempty"`
	ProviderName       string        `json:"providerName,omitempty"`
	ProviderPhone      string        `json:"providerPhone,omitempty"`
	ProviderAvatar     string        `json:"providerAvatar,omitempty"`
	ProviderRating     float64       `json:"providerRating,omitempty"`
	ProviderVerified   bool          `json:"providerVerified"`
	ServiceID          int64         `json:"serviceId,omitempty"`
	ServiceName        string        `json:"serviceName,omitempty"`
	ServiceDescription string        `json:"serviceDescription,omitempty"`
	ServiceDuration    string        `json:"serviceDuration,omitempty"`
	BookingDate        string        `json:"bookingDate,omitempty"`
	BookingTime        string        `json:"bookingTime,omitempty"`
	Status             BookingStatus `json:"status"`
	Address            string        `json:"address,omitempty"`
	Price              float64       `json:"price,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	CreatedAt          string        `json:"createdAt,omitempty"`
	ConfirmedAt        string        `json:"confirmedAt,omitempty"`
	CompletedAt        string        `json:"completedAt,omitempty"`
	CancelledAt        string        `json:"cancelledAt,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
	HasReview          bool          `json:"hasReview"`
	ReviewRating       *int          `json:"reviewRating,omitempty"`
}

type CreateBookingRequest struct {
	ProviderID     int64  `json:"providerId"`
	ServiceID      int64  `json:"serviceId"`
	BookingDate    string `json:"bookingDate"`
	BookingTime    string `json:"bookingTime"`
	Address        string `json:"address,omitempty"`
	Notes          string `json:"notes,omitempty"`
	SavedAddressID *int64 `json:"savedAddressId,omitempty"`
}

type Review struct {
	ID                  int64  `json:"id"`
	BookingID           int64  `json:"bookingId,omitempty"`
	ServiceName         string `json:"serviceName,omitempty"`
	ProviderID          int64  `json:"providerId,omitempty"`
	ProviderName        string `json:"providerName,omitempty"`
	ProviderAvatar      string `json:"providerAvatar,omitempty"`
	CustomerName        string `json:"customerName,omitempty"`
	CustomerAvatar      string `json:"customerAvatar,omitempty"`
	Rating              int    `json:"rating"`
	Comment             string `json:"comment,omitempty"`
	ProviderResponse    string `json:"providerResponse,omitempty"`
	ProviderRespondedAt string `json:"providerRespondedAt,omitempty"`
	CreatedAt           string `json:"createdAt,omitempty"`
}

type ReviewInput struct {
	BookingID int64  `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

type SavedAddress struct {
	ID        int64  `json:"id"`
	Label     string `json:"label,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode,omitempty"`
	IsDefault bool   `json:"isDefault"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type AddressInput struct {
	Label     string `json:"label,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode,omitempty"`
	IsDefault bool   `json:"isDefault"`
}
