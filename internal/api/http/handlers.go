package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wms-platform/intake-classification-service/internal/application"
	"github.com/wms-platform/intake-classification-service/pkg/errors"
	"github.com/wms-platform/intake-classification-service/pkg/logging"
	"github.com/wms-platform/intake-classification-service/pkg/middleware"
)

// Handlers contains HTTP handlers for intake classification endpoints
type Handlers struct {
	service *application.IntakeService
	logger  *logging.Logger
}

// NewHandlers creates new HTTP handlers
func NewHandlers(service *application.IntakeService, logger *logging.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger,
	}
}

// ClassifyPackage handles POST /api/v1/classifications
func (h *Handlers) ClassifyPackage() gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, h.logger.Logger)

		// The body is bound into raw JSON per field so that a non-numeric
		// measurement reaches the validator with its original type intact
		// instead of failing opaquely at bind time.
		var body map[string]json.RawMessage
		if err := c.ShouldBindJSON(&body); err != nil {
			responder.RespondBadRequest("request body must be a JSON object")
			return
		}

		cmd := application.ClassifyPackageCommand{
			Width:  measurementValue(body, "width"),
			Height: measurementValue(body, "height"),
			Length: measurementValue(body, "length"),
			Mass:   measurementValue(body, "mass"),
		}

		result, err := h.service.ClassifyPackage(c.Request.Context(), cmd)
		if err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				responder.RespondWithAppError(appErr)
			} else {
				responder.RespondInternalError(err)
			}
			return
		}

		middleware.AddSpanAttributes(c, map[string]interface{}{
			"package.category": result.Category,
			"package.volume":   result.Volume,
		})

		c.JSON(http.StatusOK, result)
	}
}

// measurementValue extracts a single measurement from the raw body, keeping
// the distinction between an absent field and an explicit null.
func measurementValue(body map[string]json.RawMessage, field string) any {
	raw, ok := body[field]
	if !ok {
		return application.Missing
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return application.Missing
	}
	return value
}
