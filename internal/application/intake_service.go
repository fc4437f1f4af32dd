package application

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/wms-platform/intake-classification-service/internal/domain"
	"github.com/wms-platform/intake-classification-service/pkg/errors"
	"github.com/wms-platform/intake-classification-service/pkg/logging"
	"github.com/wms-platform/intake-classification-service/pkg/metrics"
)

// IntakeService implements the application layer for package intake classification
type IntakeService struct {
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewIntakeService creates a new IntakeService. Metrics may be nil in tests.
func NewIntakeService(logger *logging.Logger, m *metrics.Metrics) *IntakeService {
	return &IntakeService{
		logger:  logger,
		metrics: m,
	}
}

// ClassifyPackage coerces the raw measurements in width, height, length, mass
// order and classifies the package. The first offending field aborts the call;
// the validation failure is mapped to an AppError and never downgraded.
func (s *IntakeService) ClassifyPackage(ctx context.Context, cmd ClassifyPackageCommand) (*ClassificationResult, error) {
	start := time.Now()

	spec := domain.PackageSpec{}
	for _, m := range []struct {
		field string
		raw   any
		dst   *float64
	}{
		{"width", cmd.Width, &spec.Width},
		{"height", cmd.Height, &spec.Height},
		{"length", cmd.Length, &spec.Length},
		{"mass", cmd.Mass, &spec.Mass},
	} {
		value, err := s.decodeMeasurement(m.field, m.raw)
		if err != nil {
			return nil, s.validationFailure(err)
		}
		// Each field is validated completely before the next one is looked at,
		// so the first offending field in call order always wins.
		if err := domain.ValidateMeasurement(m.field, value); err != nil {
			return nil, s.validationFailure(err)
		}
		*m.dst = value
	}

	decision, err := domain.Classify(spec)
	if err != nil {
		return nil, s.validationFailure(err)
	}

	if s.metrics != nil {
		s.metrics.RecordPackageClassified(string(decision.Category), time.Since(start))
	}

	s.logger.Info("Package classified",
		"category", decision.Category,
		"volume", decision.Volume,
		"bulky", decision.Bulky,
		"heavy", decision.Heavy,
	)

	return &ClassificationResult{
		Category: string(decision.Category),
		Volume:   decision.Volume,
		Bulky:    decision.Bulky,
		Heavy:    decision.Heavy,
	}, nil
}

func (s *IntakeService) decodeMeasurement(field string, raw any) (float64, error) {
	if _, absent := raw.(missingValue); absent {
		return 0, domain.ErrMissingMeasurement(field)
	}
	return domain.CoerceMeasurement(field, raw)
}

func (s *IntakeService) validationFailure(err error) error {
	var fieldErr *domain.FieldError
	if !stderrors.As(err, &fieldErr) {
		return errors.ErrInternal("").Wrap(err)
	}

	if s.metrics != nil {
		s.metrics.RecordValidationFailure(fieldErr.Field, string(fieldErr.Kind))
	}

	s.logger.Warn("Package rejected by measurement validation",
		"field", fieldErr.Field,
		"reason", fieldErr.Kind,
	)

	return errors.ErrValidation(fieldErr.Error()).
		WithDetail("field", fieldErr.Field).
		WithDetail("reason", string(fieldErr.Kind)).
		Wrap(fieldErr)
}
