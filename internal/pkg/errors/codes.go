package errors

import "net/http"

var (
	ErrInvalidFormat = New(
		"INVALID_FORMAT",
		"Invalid timeline format: semanticSegments array is missing",
		http.StatusUnprocessableEntity,
	)

	ErrMalformedJSON = New(
		"MALFORMED_JSON",
		"Uploaded file is not valid JSON",
		http.StatusBadRequest,
	)

	ErrFileUnreadable = New(
		"FILE_UNREADABLE",
		"Uploaded file could not be read",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = New(
		"FILE_TOO_LARGE",
		"Uploaded file is too large",
		http.StatusRequestEntityTooLarge,
	)

	ErrNoDataset = New(
		"NO_DATASET",
		"No timeline has been uploaded yet",
		http.StatusNotFound,
	)

	ErrNoData = New(
		"NO_DATA",
		"No data to display",
		http.StatusNotFound,
	)

	ErrInvalidDateRange = New(
		"INVALID_DATE_RANGE",
		"Invalid date range",
		http.StatusBadRequest,
	)

	ErrStaleDataset = New(
		"STALE_DATASET",
		"Timeline was replaced by a newer upload",
		http.StatusConflict,
	)

	ErrPreferencesError = New(
		"PREFERENCES_ERROR",
		"Preferences operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
