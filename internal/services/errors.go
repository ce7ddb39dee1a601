package services

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	pkgerrors "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/errors"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/platform/apierr"
)

// ErrNoDataAvailable means a data source failed and no summary could be built.
var ErrNoDataAvailable = errors.New("no data available")

func noDataAvailable(source string, err error) error {
	return apierr.New(http.StatusServiceUnavailable, "no_data_available",
		fmt.Errorf("%s: %w: %w", source, ErrNoDataAvailable, err))
}

func unauthorized() error {
	return apierr.Unauthorized("unauthorized", pkgerrors.ErrUnauthorized)
}

func invalidArgument(code, msg string) error {
	return apierr.BadRequest(code, fmt.Errorf("%s: %w", msg, pkgerrors.ErrInvalidArgument))
}

func notFound(code, what string) error {
	return apierr.NotFound(code, fmt.Errorf("%s: %w", what, pkgerrors.ErrNotFound))
}

// internal wraps unexpected storage failures; handlers render them as 500.
func internal(code string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.NotFound(code, fmt.Errorf("%w: %w", pkgerrors.ErrNotFound, err))
	}
	return apierr.New(http.StatusInternalServerError, code, err)
}
