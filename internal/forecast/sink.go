package forecast

import (
	"github.com/rs/zerolog"

	"github.com/sp496/inventory-planning/internal/schedule"
)

// logSink reports generation progress through zerolog. Notices are advisory
// and never affect the run.
type logSink struct {
	log zerolog.Logger
}

// NewLogSink returns a ProgressSink that logs progress and warnings.
func NewLogSink(log zerolog.Logger) schedule.ProgressSink {
	return logSink{log: log}
}

func (s logSink) Start(total int) {
	s.log.Info().Int("patients", total).Msg("processing patients")
}

func (s logSink) Progress(processed int) {
	s.log.Info().Int("processed", processed).Msg("patients processed")
}

func (s logSink) NoPlanMatched(subjectNumber string) {
	s.log.Warn().Str("subject", subjectNumber).Msg("no treatment plan found for patient")
}
