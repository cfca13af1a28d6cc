package model

import "time"

const (
	MinRating       = 1
	MaxRating       = 5
	MaxReviewLength = 500
)

// Audiobook is the metadata record for one uploaded book. CoverImage and
// AudioFile hold object names resolvable through the file store; AuthorName is
// a snapshot taken at upload time and is never re-synced with author profile
// edits.
type Audiobook struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	AuthorID      string    `bson:"authorId" json:"authorId"`
	AuthorName    string    `bson:"authorName" json:"authorName"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Categories    []string  `bson:"categories" json:"categories"`
	Subcategories []string  `bson:"subcategories" json:"subcategories"`
	Genre         string    `bson:"genre" json:"genre"`
	CoverImage    string    `bson:"coverImage" json:"coverImage"`
	AudioFile     string    `bson:"audioFile" json:"audioFile"`
	UploadedAt    time.Time `bson:"uploadedAt" json:"uploadedAt"`
	Ratings       []Rating  `bson:"ratings" json:"ratings"`

	// Derived fields, only ever written by the rating methods below.
	TotalRatings  int     `bson:"total_ratings" json:"total_ratings"`
	TotalCount    int     `bson:"total_count" json:"total_count"`
	AverageRating float64 `bson:"average_rating" json:"average_rating"`
}

type Rating struct {
	UserID string `bson:"userId" json:"userId"`
	Rating int    `bson:"rating" json:"rating"`
	Review string `bson:"review" json:"review"`
}

// UpsertRating overwrites the rating an identity already holds, or appends a
// new one, then refreshes the aggregates. It reports whether an existing entry
// was replaced.
func (a *Audiobook) UpsertRating(userID string, rating int, review string) bool {
	for i := range a.Ratings {
		if a.Ratings[i].UserID == userID {
			a.Ratings[i].Rating = rating
			a.Ratings[i].Review = review
			a.recalculate()

			return true
		}
	}

	a.Ratings = append(a.Ratings, Rating{UserID: userID, Rating: rating, Review: review})
	a.recalculate()

	return false
}

// RemoveRating splices out the identity's rating and decrements the aggregates
// by the removed value. It reports whether a rating was found.
func (a *Audiobook) RemoveRating(userID string) (Rating, bool) {
	idx := -1
	for i := range a.Ratings {
		if a.Ratings[i].UserID == userID {
			idx = i

			break
		}
	}
	if idx == -1 {
		return Rating{}, false
	}

	removed := a.Ratings[idx]
	a.Ratings = append(a.Ratings[:idx], a.Ratings[idx+1:]...)

	if len(a.Ratings) == 0 {
		a.TotalRatings = 0
		a.TotalCount = 0
		a.AverageRating = 0

		return removed, true
	}

	a.TotalRatings -= removed.Rating
	a.TotalCount--
	a.AverageRating = float64(a.TotalRatings) / float64(a.TotalCount)

	return removed, true
}

// RatingOf returns the rating the identity holds on this book, if any.
func (a *Audiobook) RatingOf(userID string) (Rating, bool) {
	for i := range a.Ratings {
		if a.Ratings[i].UserID == userID {
			return a.Ratings[i], true
		}
	}

	return Rating{}, false
}

func (a *Audiobook) recalculate() {
	if len(a.Ratings) == 0 {
		a.TotalRatings = 0
		a.TotalCount = 0
		a.AverageRating = 0

		return
	}

	total := 0
	for i := range a.Ratings {
		total += a.Ratings[i].Rating
	}

	a.TotalRatings = total
	a.TotalCount = len(a.Ratings)
	a.AverageRating = float64(total) / float64(len(a.Ratings))
}
