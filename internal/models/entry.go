package models

import "strings"

type Rating string

const (
	RatingYes     Rating = "yes"
	RatingNeutral Rating = "neutral"
	RatingNo      Rating = "no"
)

type ProfileID string

const (
	ProfilePrivate ProfileID = "private"
	ProfileWork    ProfileID = "work"
)

// Location is an optional coordinate pair attached to an entry at save time.
type Location struct {
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	AccuracyM *float64 `json:"accuracyM,omitempty"`
}

// VisitEntry is one captured moment. Entries are created once by the capture
// flow and never updated in place; the log flow only reads and deletes them.
type VisitEntry struct {
	ID           string     `json:"id"`
	CreatedAtIso string     `json:"createdAtIso"` // RFC3339, sole sort key (descending)
	PhotoURI     string     `json:"photoUri"`
	Rating       Rating     `json:"rating"`
	Comment      string     `json:"comment,omitempty"`
	Location     *Location  `json:"location,omitempty"`
	ProfileID    ProfileID  `json:"profileId"`
	CategoryID   CategoryID `json:"categoryId,omitempty"`
}

func IsRating(v Rating) bool {
	return v == RatingYes || v == RatingNeutral || v == RatingNo
}

func IsProfileID(v ProfileID) bool {
	return v == ProfilePrivate || v == ProfileWork
}

// SanitizeResult is the outcome of validating one untrusted stored record.
// Rejected records carry a reason for logging; they are never surfaced to the
// user.
type SanitizeResult struct {
	Entry  VisitEntry
	OK     bool
	Reason string
}

// SanitizeEntry validates a record read from storage. Records missing any
// required field or carrying an out-of-set rating/profile are rejected whole;
// an unknown category is normalized to "other" rather than causing rejection.
func SanitizeEntry(e VisitEntry) SanitizeResult {
	switch {
	case e.ID == "":
		return SanitizeResult{Reason: "missing id"}
	case e.CreatedAtIso == "":
		return SanitizeResult{Reason: "missing createdAtIso"}
	case e.PhotoURI == "":
		return SanitizeResult{Reason: "missing photoUri"}
	case !IsRating(e.Rating):
		return SanitizeResult{Reason: "invalid rating"}
	case !IsProfileID(e.ProfileID):
		return SanitizeResult{Reason: "invalid profileId"}
	}

	e.CategoryID = NormalizeCategory(e.CategoryID)
	e.Comment = strings.TrimSpace(e.Comment)
	return SanitizeResult{Entry: e, OK: true}
}
