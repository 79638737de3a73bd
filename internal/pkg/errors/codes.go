package errors

import "net/http"

var (
	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Explorer session not found",
		http.StatusNotFound,
	)

	ErrEntityNotFound = New(
		"ENTITY_NOT_FOUND",
		"Entity not found",
		http.StatusNotFound,
	)

	ErrInvalidTransition = New(
		"INVALID_TRANSITION",
		"Navigation transition not allowed from the current level",
		http.StatusConflict,
	)

	ErrNoZoneSelected = New(
		"NO_ZONE_SELECTED",
		"Select an arrondissement or a quartier first",
		http.StatusConflict,
	)

	ErrQuerySuperseded = New(
		"QUERY_SUPERSEDED",
		"A newer query for this session replaced this one",
		http.StatusConflict,
	)

	ErrInvalidBoundaryKind = New(
		"INVALID_BOUNDARY_KIND",
		"Unknown boundary kind",
		http.StatusBadRequest,
	)

	ErrInvalidDate = New(
		"INVALID_DATE",
		"Invalid date, expected YYYY-MM-DD not in the future",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrDataUnavailable = New(
		"DATA_UNAVAILABLE",
		"Remote data is currently unavailable",
		http.StatusServiceUnavailable,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
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
