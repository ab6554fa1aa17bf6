package encounter

import (
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
)

// Record is the outcome of one run.
type Record struct {
	RunID ulid.ULID
	Wave  int
	At    time.Time
}

// Ranked is a record with a marker for the run that just ended.
type Ranked struct {
	Record
	Latest bool
}

// Records keeps run history for the lifetime of the process.
type Records struct {
	records []Record
}

func NewRecords() *Records { return &Records{} }

// Add stores the wave number a run reached.
func (r *Records) Add(wave int, at time.Time) Record {
	rec := Record{RunID: ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()), Wave: wave, At: at}
	r.records = append(r.records, rec)
	return rec
}

func (r *Records) Len() int { return len(r.records) }

// Sorted lists runs best first, newer runs winning ties.
func (r *Records) Sorted() []Ranked {
	if len(r.records) == 0 {
		return nil
	}
	out := make([]Ranked, len(r.records))
	last := len(r.records) - 1
	for i, rec := range r.records {
		out[i] = Ranked{Record: rec, Latest: i == last}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wave != out[j].Wave {
			return out[i].Wave > out[j].Wave
		}
		return out[i].At.After(out[j].At)
	})
	return out
}
