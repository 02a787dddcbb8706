package domain

// SampleWarning is shown together with sample options
const SampleWarning = "Unable to fetch live availability. Showing sample rates."

// SampleOptions returns the placeholder option set used when live pricing fails
// or returns nothing. These options are never sent to the vendor as a booking.
func SampleOptions(tour Tour) []TourOption {
	seats := func(n int) *int { return &n }

	return []TourOption{
		{
			TourID:   tour.TourID,
			OptionID: 1,
			Name:     "Standard Ticket – No Transfer",
			Sample:   true,
			Transfers: []Transfer{{
				TransferID:     1,
				Name:           "Without Transfer",
				AdultPrice:     145,
				ChildPrice:     110,
				InfantPrice:    0,
				SeatsAvailable: seats(24),
			}},
		},
		{
			TourID:   tour.TourID,
			OptionID: 2,
			Name:     "VIP Ticket – With Hotel Transfer",
			Sample:   true,
			Transfers: []Transfer{{
				TransferID:     2,
				Name:           "With Transfer",
				AdultPrice:     210,
				ChildPrice:     170,
				InfantPrice:    0,
				SeatsAvailable: seats(4),
			}},
		},
		{
			TourID:   tour.TourID,
			OptionID: 3,
			Name:     "Private Group",
			Sample:   true,
			Transfers: []Transfer{{
				TransferID:     3,
				Name:           "Without Transfer",
				AdultPrice:     320,
				ChildPrice:     260,
				InfantPrice:    0,
				Unavailable:    true,
				SeatsAvailable: seats(0),
			}},
		},
	}
}
