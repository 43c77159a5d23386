package models

type Category struct {
	Value         string `json:"value"`
	DisplayName   string `json:"displayName"`
	Icon          string `json:"icon,omitempty"`
	ProviderCount int    `json:"providerCount"`
}

// ProviderListing is one row of the public provider search.
type ProviderListing struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	AvatarURL       string   `json:"avatarUrl,omitempty"`
	PrimaryService  string   `json:"primaryService,omitempty"`
	Services        []string `json:"services,omitempty"`
	AverageRating   float64  `json:"averageRating"`
	TotalReviews    int      `json:"totalReviews"`
	HourlyRate      float64  `json:"hourlyRate,omitempty"`
	Location        string   `json:"location,omitempty"`
	Verified        bool     `json:"verified"`
	IsAvailable     bool     `json:"isAvailable"`
	ResponseTime    string   `json:"responseTime,omitempty"`
	CompletedJobs   int      `json:"completedJobs"`
	ExperienceYears int      `json:"experienceYears"`
}

type PublicService struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Duration        string  `json:"duration,omitempty"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
}

type ProviderDetail struct {
	ID                 int64                 `json:"id"`
	Name               string                `json:"name"`
	Email              string                `json:"email,omitempty"`
	Phone              string                `json:"phone,omitempty"`
	AvatarURL          string                `json:"avatarUrl,omitempty"`
	Bio                string                `json:"bio,omitempty"`
	Address            string                `json:"address,omitempty"`
	City               string                `json:"city,omitempty"`
	State              string                `json:"state,omitempty"`
	Pincode            string                `json:"pincode,omitempty"`
	ServiceRadiusKm    int                   `json:"serviceRadiusKm,omitempty"`
	PrimaryService     string                `json:"primaryService,omitempty"`
	SecondaryServices  []string              `json:"secondaryServices,omitempty"`
	ExperienceYears    int                   `json:"experienceYears"`
	Skills             []string              `json:"skills,omitempty"`
	Languages          []string              `json:"languages,omitempty"`
	Certifications     []Certification       `json:"certifications,omitempty"`
	AverageRating      float64               `json:"averageRating"`
	TotalReviews       int                   `json:"totalReviews"`
	CompletedJobs      int                   `json:"completedJobs"`
	ProfileViews       int                   `json:"profileViews"`
	Verified           bool                  `json:"verified"`
	IsAvailable        bool                  `json:"isAvailable"`
	MemberSince        string                `json:"memberSince,omitempty"`
	Services           []PublicService       `json:"services,omitempty"`
	RecentReviews      []Review              `json:"recentReviews,omitempty"`
	RatingDistribution map[string]int64      `json:"ratingDistribution,omitempty"`
	WorkingHours       map[string]SlotWindow `json:"workingHours,omitempty"`
}

// SlotWindow is a day's availability as the public endpoint reports it.
type SlotWindow struct {
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	IsAvailable bool   `json:"isAvailable"`
}

// ProviderSearch holds the public provider search filters. Zero values are
// omitted from the query string.
type ProviderSearch struct {
	Category  string
	City      string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	SortBy    string
	Page      int
	Size      int
}
