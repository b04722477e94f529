package models

import "time"

// Review is an employer's rating of a worker.
type Review struct {
	ID         string    `json:"id"`
	WorkerID   string    `json:"workerId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewSummary is the review list of a worker with its average rating.
type ReviewSummary struct {
	WorkerID string   `json:"workerId"`
	Average  float64  `json:"average"`
	Total    int      `json:"total"`
	Reviews  []Review `json:"reviews"`
}

const (
	MinRating = 1
	MaxRating = 5
)
