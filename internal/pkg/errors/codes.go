package errors

import "net/http"

var (
	ErrSpotNotFound = New(
		"SPOT_NOT_FOUND",
		"Accessibility spot not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidSpotType = New(
		"INVALID_SPOT_TYPE",
		"Unknown accessibility spot type",
		http.StatusBadRequest,
	)

	ErrInvalidSpotStatus = New(
		"INVALID_SPOT_STATUS",
		"Unknown accessibility spot status",
		http.StatusBadRequest,
	)

	ErrInvalidSpotID = New(
		"INVALID_SPOT_ID",
		"Spot id must be a valid UUID",
		http.StatusBadRequest,
	)

	ErrImportFailed = New(
		"IMPORT_FAILED",
		"Geodata import failed",
		http.StatusBadGateway,
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
