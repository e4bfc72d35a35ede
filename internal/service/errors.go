package service

import "errors"

var (
	// ErrInvalidTripID is returned when trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidPageID is returned when a legal page ID is empty.
	ErrInvalidPageID = errors.New("invalid legal page id")

	// ErrInvalidSubmissionID is returned when a contact submission ID is empty.
	ErrInvalidSubmissionID = errors.New("invalid submission id")

	// ErrInvalidVisitorID is returned when a visit is reported without a visitor ID.
	ErrInvalidVisitorID = errors.New("invalid visitor id")

	// ErrTripComingSoon is returned when a booking is requested for a trip that is not open yet.
	ErrTripComingSoon = errors.New("trip is coming soon")

	// ErrInvalidCredentials is returned for every failed sign-in, whatever the cause.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a session token is missing, invalid or revoked.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoFiles is returned when an upload request carries no files.
	ErrNoFiles = errors.New("no files to upload")

	// ErrAllUploadsFailed is returned when not a single file of an upload could be hosted.
	ErrAllUploadsFailed = errors.New("all uploads failed")
)
