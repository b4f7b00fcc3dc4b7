package schedule

// ProgressSink receives advisory notices while a forecast is generated.
// Implementations must not affect control flow; every notice is best-effort.
type ProgressSink interface {
	// Start is called once with the total patient count before processing.
	Start(totalPatients int)
	// Progress is called after every 10 patients processed.
	Progress(processed int)
	// NoPlanMatched is called once per patient no treatment plan matched;
	// the patient contributes zero visits.
	NoPlanMatched(subjectNumber string)
}

// NopSink discards all notices.
type NopSink struct{}

func (NopSink) Start(int) {}

func (NopSink) Progress(int) {}

func (NopSink) NoPlanMatched(string) {}

var _ ProgressSink = NopSink{}
