package adaptor

import (
	"errors"
	"net/http"

	"menu-booking/internal/pricing"
	"menu-booking/internal/usecase"
	"menu-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps domain errors to HTTP statuses. Services wrap the
// sentinels, so errors.Is sees through the added context.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrSubcategoryNotFound),
		errors.Is(err, usecase.ErrItemNotFound),
		errors.Is(err, usecase.ErrAddonNotFound),
		errors.Is(err, usecase.ErrBookingNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrDuplicateName),
		errors.Is(err, usecase.ErrBookingConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidTaxConfig),
		errors.Is(err, usecase.ErrInvalidPricingConfig),
		errors.Is(err, usecase.ErrInvalidAvailability),
		errors.Is(err, usecase.ErrItemNotBookable),
		errors.Is(err, usecase.ErrOutsideAvailability),
		errors.Is(err, usecase.ErrAddonItemMismatch),
		errors.Is(err, usecase.ErrInvalidStatusTransition):
		log.Warn(operation+" failed - unprocessable", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	case errors.Is(err, pricing.ErrNoTiers),
		errors.Is(err, pricing.ErrNoMatchingTier),
		errors.Is(err, pricing.ErrNoDiscountConfig),
		errors.Is(err, pricing.ErrNoTimeWindows),
		errors.Is(err, pricing.ErrOutsideTimeWindows),
		errors.Is(err, pricing.ErrUnknownPricingType):
		log.Warn(operation+" failed - pricing", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parseBoolPtr reads an optional true/false query parameter.
func parseBoolPtr(value string) *bool {
	switch value {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
