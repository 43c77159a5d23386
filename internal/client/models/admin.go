package models

type RecentBooking struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName,omitempty"`
	ProviderName  string  `json:"providerName,omitempty"`
	ServiceName   string  `json:"serviceName,omitempty"`
	Status        string  `json:"status,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	ScheduledDate string  `json:"scheduledDate,omitempty"`
}

type RecentUser struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type AdminDashboardStats struct {
	TotalUsers                   int64              `json:"totalUsers"`
	TotalCustomers               int64              `json:"totalCustomers"`
	TotalProviders               int64              `json:"totalProviders"`
	TotalBookings                int64              `json:"totalBookings"`
	TotalRevenue                 float64            `json:"totalRevenue"`
	UserGrowthPercent            float64            `json:"userGrowthPercent"`
	BookingGrowthPercent         float64            `json:"bookingGrowthPercent"`
	RevenueGrowthPercent         float64            `json:"revenueGrowthPercent"`
	PendingBookings              int64              `json:"pendingBookings"`
	ConfirmedBookings            int64              `json:"confirmedBookings"`
	CompletedBookings            int64              `json:"completedBookings"`
	CancelledBookings            int64              `json:"cancelledBookings"`
	ActiveProviders              int64              `json:"activeProviders"`
	PendingVerificationProviders int64              `json:"pendingVerificationProviders"`
	SuspendedProviders           int64              `json:"suspendedProviders"`
	RecentBookings               []RecentBooking    `json:"recentBookings,omitempty"`
	RecentUsers                  []RecentUser       `json:"recentUsers,omitempty"`
	BookingsByCategory           map[string]int64   `json:"bookingsByCategory,omitempty"`
	RevenueByCategory            map[string]float64 `json:"revenueByCategory,omitempty"`
}

type AdminUser struct {
	ID              int64         `json:"id"`
	FullName        string        `json:"fullName,omitempty"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	Role            Role          `json:"role,omitempty"`
	Status          AccountStatus `json:"status,omitempty"`
	ProfilePhotoURL string        `json:"profilePhotoUrl,omitempty"`
	CreatedAt       string        `json:"createdAt,omitempty"`
	UpdatedAt       string        `json:"updatedAt,omitempty"`
	ProviderID      *int64        `json:"providerId,omitempty"`
	CustomerID      *int64        `json:"customerId,omitempty"`
	City            string        `json:"city,omitempty"`
	State           string        `json:"state,omitempty"`
	TotalBookings   int           `json:"totalBookings"`
	AvgRating       float64       `json:"avgRating"`
}

type AdminProviderService struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	IsActive        bool    `json:"isActive"`
}

type AdminProvider struct {
	ID                int64                  `json:"id"`
	UserID            int64                  `json:"userId,omitempty"`
	FullName          string                 `json:"fullName,omitempty"`
	Email             string                 `json:"email,omitempty"`
	Phone             string                 `json:"phone,omitempty"`
	Status            AccountStatus          `json:"status,omitempty"`
	ProfilePhotoURL   string                 `json:"profilePhotoUrl,omitempty"`
	AadharNumber      string                 `json:"aadharNumber,omitempty"`
	Address           string                 `json:"address,omitempty"`
	City              string                 `json:"city,omitempty"`
	State             string                 `json:"state,omitempty"`
	Pincode           string                 `json:"pincode,omitempty"`
	PrimaryService    string                 `json:"primaryService,omitempty"`
	SecondaryServices []string               `json:"secondaryServices,omitempty"`
	ExperienceYears   int                    `json:"experienceYears"`
	ServiceRadiusKm   int                    `json:"serviceRadiusKm"`
	HourlyRate        float64                `json:"hourlyRate"`
	Bio               string                 `json:"bio,omitempty"`
	Languages         []string               `json:"languages,omitempty"`
	IsAvailable       bool                   `json:"isAvailable"`
	IsVerified        bool                   `json:"isVerified"`
	AvgRating         float64                `json:"avgRating"`
	TotalReviews      int                    `json:"totalReviews"`
	TotalBookings     int                    `json:"totalBookings"`
	CompletedBookings int                    `json:"completedBookings"`
	TotalEarnings     float64                `json:"totalEarnings"`
	CreatedAt         string                 `json:"createdAt,omitempty"`
	UpdatedAt         string                 `json:"updatedAt,omitempty"`
	Services          []AdminProviderService `json:"services,omitempty"`
}

type AdminBooking struct {
	ID                 int64         `json:"id"`
	CustomerID         int64         `json:"customerId,omitempty"`
	CustomerName       string        `json:"customerName,omitempty"`
	CustomerEmail      string        `json:"customerEmail,omitempty"`
	CustomerPhone      string        `json:"customerPhone,omitempty"`
	ProviderID         int64         `json:"providerId,omitempty"`
	ProviderName       string        `json:"providerName,omitempty"`
	ProviderEmail      string        `json:"providerEmail,omitempty"`
	ProviderPhone      string        `json:"providerPhone,omitempty"`
	ServiceID          int64         `json:"serviceId,omitempty"`
	ServiceName        string        `json:"serviceName,omitempty"`
	ServiceCategory    string        `json:"serviceCategory,omitempty"`
	ScheduledDate      string        `json:"scheduledDate,omitempty"`
	ScheduledTime      string        `json:"scheduledTime,omitempty"`
	ServiceAddress     string        `json:"serviceAddress,omitempty"`
	CustomerNotes      string        `json:"customerNotes,omitempty"`
	ProviderNotes      string        `json:"providerNotes,omitempty"`
	Status             BookingStatus `json:"status"`
	Amount             float64       `json:"amount"`
	PaymentStatus      string        `json:"paymentStatus,omitempty"`
	CreatedAt          string        `json:"createdAt,omitempty"`
	UpdatedAt          string        `json:"updatedAt,omitempty"`
	CompletedAt        string        `json:"completedAt,omitempty"`
	CancelledAt        string        `json:"cancelledAt,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
}

type UserStatusUpdate struct {
	Status AccountStatus `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

type ProviderVerification struct {
	Verified bool   `json:"verified"`
	Notes    string `json:"notes,omitempty"`
}

type AdminBookingStatusUpdate struct {
	Status BookingStatus `json:"status"`
	Notes  string        `json:"notes,omitempty"`
}

// UserQuery filters the admin user list.
type UserQuery struct {
	Page   int
	Size   int
	Search string
	Role   Role
	Status AccountStatus
}

type ProviderQuery struct {
	Page     int
	Size     int
	Search   string
	Status   AccountStatus
	Verified *bool
}

type BookingQuery struct {
	Page   int
	Size   int
	Search string
	Status BookingStatus
}
