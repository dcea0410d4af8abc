package console

import (
	"fmt"
	"math"
	"time"
)

// Humanize formats d in the short form used for message deltas: "850ms",
// "2s", "5m", "3h" or "2d". Values are rounded to the largest whole unit.
func Humanize(d time.Duration) string {
	ms := d.Milliseconds()

	abs := ms
	if abs < 0 {
		abs = -abs
	}

	units := []struct {
		suffix string
		size   time.Duration
	}{
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}

	for _, u := range units {
		size := u.size.Milliseconds()
		if abs >= size {
			return fmt.Sprintf("%d%s", int64(math.Round(float64(ms)/float64(size))), u.suffix)
		}
	}

	return fmt.Sprintf("%dms", ms)
}
