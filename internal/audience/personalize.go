package audience

import (
	"strings"
	"time"
)

// Placeholders lists the template tokens substituted per recipient. Anything else is left as is.
var Placeholders = []string{"lead_name", "first_name", "company", "position", "location"}

// Personalize substitutes the known placeholders in template. A nil vars map leaves it untouched;
// a known placeholder without a value renders empty.
func Personalize(template string, vars map[string]string) string {
	if vars == nil {
		return template
	}
	pairs := make([]string, 0, len(Placeholders)*2)
	for _, key := range Placeholders {
		pairs = append(pairs, "{{"+key+"}}", vars[key])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// DefaultBatchSize is how many recipients share one send minute.
const DefaultBatchSize = 10

// StaggeredSendTime spreads index i into batches one minute apart starting at max(now, scheduled).
func StaggeredSendTime(now time.Time, scheduled *time.Time, i, batchSize int) time.Time {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	base := now
	if scheduled != nil && scheduled.After(now) {
		base = *scheduled
	}
	return base.Add(time.Duration(i/batchSize) * time.Minute)
}
