package model

import "time"

// FAQ is a canonical FAQ entry in the source language (English).
// UpdatedAt is refreshed whenever the entry or its translation set changes.
type FAQ struct {
	ID             int64
	QuestionSource string
	AnswerSource   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Translations   []Translation
}
