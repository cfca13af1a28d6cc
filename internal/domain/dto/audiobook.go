package dto

import "audiblebooks/internal/domain/entity"

// UploadRequest carries everything needed to create one audiobook: the scalar
// metadata plus the two binary payloads.
type UploadRequest struct {
	Title         string
	Description   string
	Categories    []string
	Subcategories []string
	Genre         string
	Audio         *entity.Part
	Cover         *entity.Part
}

// UpdateRequest holds a partial update: nil pointers and nil slices mean "leave
// untouched"; a non-nil Audio/Cover part replaces the stored object.
type UpdateRequest struct {
	Title         *string
	Description   *string
	Categories    []string
	Subcategories []string
	Genre         *string
	Audio         *entity.Part
	Cover         *entity.Part
}

// AudiobookDescriptor is the listing shape served to readers: record metadata
// with the referenced blobs resolved and base64-encoded. Either data field is
// nil when the blob could not be fetched.
type AudiobookDescriptor struct {
	ID             string  `json:"id"`
	Author         string  `json:"author"`
	AuthorName     string  `json:"authorName"`
	Title          string  `json:"title"`
	Rating         float64 `json:"rating"`
	CoverImageData *string `json:"coverImageData"`
	AudioData      *string `json:"audioBase64Data"`
}

// RatingSummary reflects a record's derived rating fields after a rating
// mutation.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
	TotalCount    int     `json:"total_count"`
}

// AudioPayload is a whole audio object buffered and base64-encoded for JSON
// transport.
type AudioPayload struct {
	AudioBase64 string `json:"audioBase64"`
	ContentType string `json:"contentType"`
}
