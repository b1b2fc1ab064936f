package bdphone

import (
	"time"

	"github.com/google/uuid"
)

// Stats summarizes validation outcomes over a batch of numbers. The report
// carries its own id and timestamp so it can be embedded in audit logs as a
// standalone record.
type Stats struct {
	ReportID    uuid.UUID
	GeneratedAt time.Time

	Total   int
	Valid   int
	Invalid int

	ByType     map[NumberType]int
	ByOperator map[string]int
	ByArea     map[string]int
	ByFormat   map[NumberFormat]int
	ByError    map[ErrorCode]int
}

// GenerateStats classifies every number with the validator's default options
// and tallies the outcomes. It is a pure fold: no state is shared across
// items beyond the accumulator being built, so batches can be summarized
// concurrently with other engine use.
func (v *Validator) GenerateStats(phones []string) Stats {
	stats := Stats{
		ReportID:    uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Total:       len(phones),
		ByType:      make(map[NumberType]int),
		ByOperator:  make(map[string]int),
		ByArea:      make(map[string]int),
		ByFormat:    make(map[NumberFormat]int),
		ByError:     make(map[ErrorCode]int),
	}

	for _, phone := range phones {
		res := v.classify(phone, v.defaults)
		if !res.Valid {
			stats.Invalid++
			if res.Err != nil {
				stats.ByError[res.Err.Code]++
			}
			continue
		}

		stats.Valid++
		stats.ByType[res.Type]++
		stats.ByFormat[res.Format]++
		switch {
		case res.Operator != nil:
			stats.ByOperator[res.Operator.Name]++
		case res.Area != nil:
			stats.ByArea[res.Area.Area]++
		}
	}

	return stats
}
