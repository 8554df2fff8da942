package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

type allocatorInspector interface {
	Snapshot() []idgen.KindUsage
	Threshold() float64
	ApproachingCapacity() bool
}

// CapacityReport is a point-in-time view of id space consumption across all
// configured kinds.
type CapacityReport struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Threshold   float64           `json:"threshold"`
	Approaching bool              `json:"approaching_capacity"`
	Kinds       []idgen.KindUsage `json:"kinds"`
}

// CapacityService reports on identifier range consumption.
type CapacityService struct {
	alloc  allocatorInspector
	logger *zap.Logger
}

// NewCapacityService constructs the capacity service.
func NewCapacityService(alloc allocatorInspector, logger *zap.Logger) *CapacityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CapacityService{alloc: alloc, logger: logger}
}

// Report returns usage for every kind, ordered by range start.
func (s *CapacityService) Report() CapacityReport {
	return CapacityReport{
		GeneratedAt: time.Now().UTC(),
		Threshold:   s.alloc.Threshold(),
		Approaching: s.alloc.ApproachingCapacity(),
		Kinds:       s.alloc.Snapshot(),
	}
}

// Usage returns the reading for a single kind.
func (s *CapacityService) Usage(kind idgen.Kind) (idgen.KindUsage, error) {
	for _, usage := range s.alloc.Snapshot() {
		if usage.Kind == kind {
			return usage, nil
		}
	}
	return idgen.KindUsage{}, appErrors.Validationf("unknown id kind %q", kind)
}

// ApproachingCapacity reports whether any kind sits at or past the warning
// threshold.
func (s *CapacityService) ApproachingCapacity() bool {
	return s.alloc.ApproachingCapacity()
}

// Warnings returns one human-readable line per kind at or past the warning
// threshold. Empty when all ranges have headroom.
func (s *CapacityService) Warnings() []string {
	threshold := s.alloc.Threshold()
	var out []string
	for _, usage := range s.alloc.Snapshot() {
		if usage.UsagePercent >= threshold {
			out = append(out, fmt.Sprintf("%s: %.1f%% of id range [%d, %d] used, %d ids left",
				usage.Kind, usage.UsagePercent*100, usage.Range.Start, usage.Range.End, usage.Remaining))
		}
	}
	return out
}
