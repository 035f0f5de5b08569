package model

import "time"

// Translation is one language's rendering of a FAQ's question and answer.
// At most one translation exists per (FAQ, language) pair. Question and
// answer may equal the source text when the provider failed at synthesis
// time (degraded fallback).
type Translation struct {
	ID        int64
	FAQID     int64
	Language  string
	Question  string
	Answer    string
	CreatedAt time.Time
}
