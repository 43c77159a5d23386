package models

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

type WorkingHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	IsOpen bool   `json:"isOpen"`
}

// ProviderProfile is replaced wholesale on fetch and on update.
type ProviderProfile struct {
	ID                int64                   `json:"id"`
	Name              string                  `json:"name,omitempty"`
	Email             string                  `json:"email,omitempty"`
	Phone             string                  `json:"phone,omitempty"`
	Title             string                  `json:"title,omitempty"`
	Bio               string                  `json:"bio,omitempty"`
	Avatar            string                  `json:"avatar,omitempty"`
	Location          string                  `json:"location,omitempty"`
	Address           string                  `json:"address,omitempty"`
	City              string                  `json:"city,omitempty"`
	State             string                  `json:"state,omitempty"`
	Pincode           string                  `json:"pincode,omitempty"`
	Rating            float64                 `json:"rating,omitempty"`
	Reviews           int                     `json:"reviews,omitempty"`
	Experience        string                  `json:"experience,omitempty"`
	CompletedJobs     int                     `json:"completedJobs,omitempty"`
	ResponseTime      string                  `json:"responseTime,omitempty"`
	Verified          bool                    `json:"verified"`
	MemberSince       string                  `json:"memberSince,omitempty"`
	PrimaryService    string                  `json:"primaryService,omitempty"`
	SecondaryServices []string                `json:"secondaryServices,omitempty"`
	HourlyRate        float64                 `json:"hourlyRate,omitempty"`
	Languages         []string                `json:"languages,omitempty"`
	Skills            []string                `json:"skills,omitempty"`
	Certifications    []Certification         `json:"certifications,omitempty"`
	ServiceRadiusKm   int                     `json:"serviceRadiusKm,omitempty"`
	WorkingHours      map[string]WorkingHours `json:"workingHours,omitempty"`
	// IsAvailable is patched locally after a confirmed availability change.
	IsAvailable bool `json:"isAvailable"`
}

type ProviderProfileUpdate struct {
	FullName          string                  `json:"fullName,omitempty"`
	Phone             string                  `json:"phone,omitempty"`
	Bio               string                  `json:"bio,omitempty"`
	Address           string                  `json:"address,omitempty"`
	City              string                  `json:"city,omitempty"`
	State             string                  `json:"state,omitempty"`
	Pincode           string                  `json:"pincode,omitempty"`
	ExperienceYears   *int                    `json:"experienceYears,omitempty"`
	ServiceRadiusKm   *int                    `json:"serviceRadiusKm,omitempty"`
	HourlyRate        *float64                `json:"hourlyRate,omitempty"`
	PrimaryService    string                  `json:"primaryService,omitempty"`
	SecondaryServices []string                `json:"secondaryServices,omitempty"`
	Languages         []string                `json:"languages,omitempty"`
	Skills            []string                `json:"skills,omitempty"`
	Certifications    []Certification         `json:"certifications,omitempty"`
	WorkingHours      map[string]WorkingHours `json:"workingHours,omitempty"`
}

type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Duration        string  `json:"duration,omitempty"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Active          bool    `json:"active"`
	CreatedAt       string  `json:"createdAt,omitempty"`
}

// ServiceInput is the body of service create and update calls. Nil pointers
// are left out so an update only touches what was set.
type ServiceInput struct {
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// Booking is the provider's view of a booking.
type Booking struct {
	ID            int64         `json:"id"`
	Customer      string        `json:"customer,omitempty"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	Service       string        `json:"service,omitempty"`
	ServiceID     int64         `json:"serviceId,omitempty"`
	Date          string        `json:"date,omitempty"`
	Time          string        `json:"time,omitempty"`
	Status        BookingStatus `json:"status"`
	Address       string        `json:"address,omitempty"`
	Price         float64       `json:"price,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	ConfirmedAt   string        `json:"confirmedAt,omitempty"`
	CompletedAt   string        `json:"completedAt,omitempty"`
}

type BookingStatusUpdate struct {
	Status             BookingStatus `json:"status"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
}

type DashboardStats struct {
	TotalEarnings     float64 `json:"totalEarnings"`
	WeeklyEarnings    float64 `json:"weeklyEarnings"`
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	TodayBookings     int     `json:"todayBookings"`
	AverageRating     float64 `json:"averageRating"`
	TotalReviews      int     `json:"totalReviews"`
	ProfileViews      int     `json:"profileViews"`
	ActiveServices    int     `json:"activeServices"`
	EarningsTrend     string  `json:"earningsTrend,omitempty"`
	BookingsTrend     string  `json:"bookingsTrend,omitempty"`
	RatingStatus      string  `json:"ratingStatus,omitempty"`
	ViewsTrend        string  `json:"viewsTrend,omitempty"`
}
