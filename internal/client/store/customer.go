package store

import (
	"context"

	"github.com/dmitrijs2005/quickserve/internal/client/api"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

type CustomerState struct {
	Profile          *models.CustomerProfile
	Bookings         []models.CustomerBooking
	UpcomingBookings []models.CustomerBooking
	PastBookings     []models.CustomerBooking
	SelectedBooking  *models.CustomerBooking

	Categories       []models.Category
	Providers        []models.ProviderListing
	SelectedProvider *models.ProviderDetail
	ProviderReviews  []models.Review

	SavedAddresses []models.SavedAddress
	MyReviews      []models.Review

	IsLoading          bool
	IsLoadingProfile   bool
	IsLoadingBookings  bool
	IsLoadingProviders bool
	Error              string
}

func initialCustomer() CustomerState {
	return CustomerState{
		Bookings:         []models.CustomerBooking{},
		UpcomingBookings: []models.CustomerBooking{},
		PastBookings:     []models.CustomerBooking{},
		Categories:       []models.Category{},
		Providers:        []models.ProviderListing{},
		ProviderReviews:  []models.Review{},
		SavedAddresses:   []models.SavedAddress{},
		MyReviews:        []models.Review{},
	}
}

// CustomerStore backs the customer's browsing, booking and review flows.
type CustomerStore struct {
	base[CustomerState]
	customer *api.CustomerAPI
	public   *api.PublicAPI
}

func NewCustomerStore(customer *api.CustomerAPI, public *api.PublicAPI, log logging.Logger) *CustomerStore {
	s := &CustomerStore{customer: customer, public: public}
	s.name = "customer"
	s.log = log
	s.errOf = func(st *CustomerState) *string { return &st.Error }
	s.state = initialCustomer()
	return s
}

func (s *CustomerStore) State() CustomerState {
	return s.snapshot()
}

func custLoading(st *CustomerState) *bool      { return &st.IsLoading }
func profileLoading(st *CustomerState) *bool   { return &st.IsLoadingProfile }
func bookingsLoading(st *CustomerState) *bool  { return &st.IsLoadingBookings }
func providersLoading(st *CustomerState) *bool { return &st.IsLoadingProviders }

func customerBookingID(v models.CustomerBooking) int64 { return v.ID }
func addressID(v models.SavedAddress) int64            { return v.ID }

func (s *CustomerStore) FetchProfile(ctx context.Context) error {
	return s.act(ctx, "fetch_profile", "Failed to fetch profile", profileLoading, func(ctx context.Context) (func(*CustomerState), error) {
		p, err := decode[models.CustomerProfile](s.customer.GetProfile(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.Profile = &p }, nil
	})
}

func (s *CustomerStore) UpdateProfile(ctx context.Context, in models.CustomerProfileUpdate) error {
	return s.act(ctx, "update_profile", "Failed to update profile", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		p, err := decode[models.CustomerProfile](s.customer.UpdateProfile(ctx, in))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.Profile = &p }, nil
	})
}

func (s *CustomerStore) FetchBookings(ctx context.Context) error {
	return s.act(ctx, "fetch_bookings", "Failed to fetch bookings", bookingsLoading, func(ctx context.Context) (func(*CustomerState), error) {
		list, err := decodeList[models.CustomerBooking](s.customer.GetBookings(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.Bookings = list }, nil
	})
}

func (s *CustomerStore) FetchUpcomingBookings(ctx context.Context) error {
	return s.act(ctx, "fetch_upcoming_bookings", "Failed to fetch upcoming bookings", bookingsLoading, func(ctx context.Context) (func(*CustomerState), error) {
		list, err := decodeList[models.CustomerBooking](s.customer.GetUpcomingBookings(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.UpcomingBookings = list }, nil
	})
}

func (s *CustomerStore) FetchPastBookings(ctx context.Context) error {
	return s.act(ctx, "fetch_past_bookings", "Failed to fetch past bookings", bookingsLoading, func(ctx context.Context) (func(*CustomerState), error) {
		list, err := decodeList[models.CustomerBooking](s.customer.GetPastBookings(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.PastBookings = list }, nil
	})
}

// FetchBooking loads one booking into SelectedBooking.
func (s *CustomerStore) FetchBooking(ctx context.Context, id int64) error {
	return s.act(ctx, "fetch_booking", "Failed to fetch booking", bookingsLoading, func(ctx context.Context) (func(*CustomerState), error) {
		b, err := decode[models.CustomerBooking](s.customer.GetBooking(ctx, id))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.SelectedBooking = &b }, nil
	})
}

// CreateBooking prepends the new booking to both the full and upcoming lists.
func (s *CustomerStore) CreateBooking(ctx context.Context, in models.CreateBookingRequest) (models.CustomerBooking, error) {
	var created models.CustomerBooking
	err := s.act(ctx, "create_booking", "Failed to create booking", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		var err error
		created, err = decode[models.CustomerBooking](s.customer.CreateBooking(ctx, in))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) {
			st.Bookings = prepend(created, st.Bookings)
			st.UpcomingBookings = prepend(created, st.UpcomingBookings)
		}, nil
	})
	return created, err
}

// CancelBooking replaces the booking in the full list and moves it from
// upcoming to the head of past.
func (s *CustomerStore) CancelBooking(ctx context.Context, id int64, reason string) (models.CustomerBooking, error) {
	var updated models.CustomerBooking
	err := s.act(ctx, "cancel_booking", "Failed to cancel booking", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		var err error
		updated, err = decode[models.CustomerBooking](s.customer.CancelBooking(ctx, id, reason))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) {
			st.Bookings = replaceByID(st.Bookings, id, customerBookingID, updated)
			st.UpcomingBookings = removeByID(st.UpcomingBookings, id, customerBookingID)
			st.PastBookings = prepend(updated, st.PastBookings)
		}, nil
	})
	return updated, err
}

// FetchCategories does not raise a loading flag.
func (s *CustomerStore) FetchCategories(ctx context.Context) error {
	return s.act(ctx, "fetch_categories", "Failed to fetch categories", nil, func(ctx context.Context) (func(*CustomerState), error) {
		list, err := decodeList[models.Category](s.public.GetCategories(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.Categories = list }, nil
	})
}

func (s *CustomerStore) SearchProviders(ctx context.Context, q models.ProviderSearch) error {
	return s.act(ctx, "search_providers", "Failed to search providers", providersLoading, func(ctx context.Context) (func(*CustomerState), error) {
		list, err := decodeList[models.ProviderListing](s.public.SearchProviders(ctx, q))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.Providers = list }, nil
	})
}

func (s *CustomerStore) FetchProviderDetails(ctx context.Context, id int64) error {
	return s.act(ctx, "fetch_provider_details", "Failed to fetch provider details", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		d, err := decode[models.ProviderDetail](s.public.GetProviderDetails(ctx, id))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.SelectedProvider = &d }, nil
	})
}

func (s *CustomerStore) FetchProviderReviews(ctx context.Context, id int64, page, size int) error {
	return s.act(ctx, "fetch_provider_reviews", "Failed to fetch reviews", providersLoading, func(ctx context.Context) (func(*CustomerState), error) {
		list, err := decodeList[models.Review](s.public.GetProviderReviews(ctx, id, page, size))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.ProviderReviews = list }, nil
	})
}

func (s *CustomerStore) ClearSelectedProvider() {
	s.update(func(st *CustomerState) {
		st.SelectedProvider = nil
		st.ProviderReviews = []models.Review{}
	})
}

func (s *CustomerStore) FetchSavedAddresses(ctx context.Context) error {
	return s.act(ctx, "fetch_addresses", "Failed to fetch addresses", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		list, err := decodeList[models.SavedAddress](s.customer.GetSavedAddresses(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.SavedAddresses = list }, nil
	})
}

// AddSavedAddress appends, keeping the server's ordering of older entries.
func (s *CustomerStore) AddSavedAddress(ctx context.Context, in models.AddressInput) (models.SavedAddress, error) {
	var created models.SavedAddress
	err := s.act(ctx, "add_address", "Failed to add address", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		var err error
		created, err = decode[models.SavedAddress](s.customer.AddSavedAddress(ctx, in))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.SavedAddresses = appendCopy(st.SavedAddresses, created) }, nil
	})
	return created, err
}

func (s *CustomerStore) UpdateSavedAddress(ctx context.Context, id int64, in models.AddressInput) (models.SavedAddress, error) {
	var updated models.SavedAddress
	err := s.act(ctx, "update_address", "Failed to update address", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		var err error
		updated, err = decode[models.SavedAddress](s.customer.UpdateSavedAddress(ctx, id, in))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.SavedAddresses = replaceByID(st.SavedAddresses, id, addressID, updated) }, nil
	})
	return updated, err
}

func (s *CustomerStore) DeleteSavedAddress(ctx context.Context, id int64) error {
	return s.act(ctx, "delete_address", "Failed to delete address", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		if _, err := s.customer.DeleteSavedAddress(ctx, id); err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.SavedAddresses = removeByID(st.SavedAddresses, id, addressID) }, nil
	})
}

// SetDefaultAddress marks only the matching address as default.
func (s *CustomerStore) SetDefaultAddress(ctx context.Context, id int64) error {
	return s.act(ctx, "set_default_address", "Failed to set default address", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		if _, err := s.customer.SetDefaultAddress(ctx, id); err != nil {
			return nil, err
		}
		return func(st *CustomerState) {
			st.SavedAddresses = mapItems(st.SavedAddresses, func(a models.SavedAddress) models.SavedAddress {
				a.IsDefault = a.ID == id
				return a
			})
		}, nil
	})
}

// CreateReview prepends the review and marks the booking as reviewed in the
// full and past lists.
func (s *CustomerStore) CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	var created models.Review
	err := s.act(ctx, "create_review", "Failed to create review", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		var err error
		created, err = decode[models.Review](s.customer.CreateReview(ctx, in))
		if err != nil {
			return nil, err
		}

		rating := in.Rating
		markReviewed := func(b models.CustomerBooking) models.CustomerBooking {
			if b.ID == in.BookingID {
				b.HasReview = true
				b.ReviewRating = &rating
			}
			return b
		}
		return func(st *CustomerState) {
			st.MyReviews = prepend(created, st.MyReviews)
			st.Bookings = mapItems(st.Bookings, markReviewed)
			st.PastBookings = mapItems(st.PastBookings, markReviewed)
		}, nil
	})
	return created, err
}

func (s *CustomerStore) FetchMyReviews(ctx context.Context) error {
	return s.act(ctx, "fetch_reviews", "Failed to fetch reviews", custLoading, func(ctx context.Context) (func(*CustomerState), error) {
		list, err := decodeList[models.Review](s.customer.GetMyReviews(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *CustomerState) { st.MyReviews = list }, nil
	})
}

func (s *CustomerStore) ClearData() {
	s.update(func(st *CustomerState) { *st = initialCustomer() })
}
