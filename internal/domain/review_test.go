package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewsWith(ratings []int, public []bool) []*Review {
	res := make([]*Review, len(ratings))
	for i, r := range ratings {
		res[i] = &Review{Rating: r, IsPublic: public[i]}
	}
	return res
}

func TestComputeRating(t *testing.T) {
	tests := []struct {
		name      string
		ratings   []int
		public    []bool
		wantAvg   string
		wantCount int
	}{
		{"all public", []int{5, 4, 3}, []bool{true, true, true}, "4.00", 3},
		{"hidden review excluded", []int{5, 4, 3}, []bool{true, true, false}, "4.50", 2},
		{"deleted review gone", []int{5, 4}, []bool{true, true}, "4.50", 2},
		{"rounds to two places", []int{5, 4, 4}, []bool{true, true, true}, "4.33", 3},
		{"all hidden", []int{5, 1}, []bool{false, false}, "0.00", 0},
		{"no reviews", nil, nil, "0.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRating(reviewsWith(tt.ratings, tt.public))

			assert.Equal(t, tt.wantAvg, got.Average.StringFixed(2))
			assert.Equal(t, tt.wantCount, got.Count)
		})
	}
}

func TestValidateRating(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		assert.NoError(t, ValidateRating(r))
	}
	assert.ErrorIs(t, ValidateRating(0), ErrInvalidRating)
	assert.ErrorIs(t, ValidateRating(6), ErrInvalidRating)
}

func TestCheckReviewEligibility(t *testing.T) {
	today := date(t, "2024-06-15")
	completed := &Booking{Status: BookingStatusCompleted, CheckIn: date(t, "2024-06-10"), CheckOut: date(t, "2024-06-15")}
	confirmed := &Booking{Status: BookingStatusConfirmed, CheckIn: date(t, "2024-06-01"), CheckOut: date(t, "2024-06-05")}
	completedLater := &Booking{Status: BookingStatusCompleted, CheckIn: date(t, "2024-06-14"), CheckOut: date(t, "2024-06-16")}

	assert.NoError(t, CheckReviewEligibility(false, []*Booking{confirmed, completed}, today))
	assert.ErrorIs(t, CheckReviewEligibility(false, []*Booking{confirmed}, today), ErrReviewNotEligible)
	assert.ErrorIs(t, CheckReviewEligibility(false, nil, today), ErrReviewNotEligible)
	assert.ErrorIs(t, CheckReviewEligibility(false, []*Booking{completedLater}, today), ErrReviewNotEligible)
	assert.ErrorIs(t, CheckReviewEligibility(true, []*Booking{completed}, today), ErrDuplicateReview)
}

func TestCreateReviewInput_Validate(t *testing.T) {
	today := date(t, "2024-06-15")
	future := date(t, "2024-07-01")

	valid := CreateReviewInput{Rating: 4, Title: "Lovely", Comment: "Great stay"}
	require.NoError(t, valid.Validate(today))

	bad := valid
	bad.Rating = 0
	assert.ErrorIs(t, bad.Validate(today), ErrInvalidRating)

	bad = valid
	bad.StayDate = &future
	assert.ErrorIs(t, bad.Validate(today), ErrFutureStayDate)

	bad = valid
	bad.Title = ""
	assert.ErrorIs(t, bad.Validate(today), ErrValidation)
}

func TestUpdateReviewInput_Apply(t *testing.T) {
	r := &Review{Rating: 3, Title: "Ok", Comment: "Fine"}
	rating := 5

	require.NoError(t, UpdateReviewInput{Rating: &rating}.Apply(r))
	assert.Equal(t, 5, r.Rating)

	bad := 9
	assert.ErrorIs(t, UpdateReviewInput{Rating: &bad}.Apply(r), ErrInvalidRating)
	assert.Equal(t, 5, r.Rating)
}

func TestReview_Permissions(t *testing.T) {
	r := &Review{UserID: "author"}

	assert.True(t, r.CanModerate(Actor{UserID: "author"}, "owner"))
	assert.True(t, r.CanModerate(Actor{UserID: "owner"}, "owner"))
	assert.True(t, r.CanModerate(Actor{UserID: "x", IsStaff: true}, "owner"))
	assert.False(t, r.CanModerate(Actor{UserID: "x"}, "owner"))

	assert.True(t, r.CanDelete(Actor{UserID: "author"}))
	assert.False(t, r.CanDelete(Actor{UserID: "owner"}))
}
