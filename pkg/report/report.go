// Package report renders benchmark results in the phone book output format.
package report

import (
	"fmt"
	"io"
	"time"

	"phonebench/pkg/core"
)

// FormatDuration renders d as "MM min. SS sec. LLL ms.". Minutes wrap at an
// hour.
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d min. %02d sec. %03d ms.", (ms/60000)%60, (ms/1000)%60, ms%1000)
}

// Write prints one result. The preprocessing and searching lines only appear
// when a preprocessing phase ran.
func Write(w io.Writer, res core.BenchmarkResult) error {
	if _, err := fmt.Fprintf(w, "Found %d / %d entries. Time taken: %s\n",
		res.MatchCount, res.TotalQueries, FormatDuration(res.Total())); err != nil {
		return err
	}
	if !res.Preprocessed {
		return nil
	}

	stopped := ""
	if res.FallbackTriggered {
		stopped = " - STOPPED, moved to linear search"
	}
	_, err := fmt.Fprintf(w, "%s time: %s%s\nSearching time: %s\n",
		res.PreprocessLabel, FormatDuration(res.PreprocessDuration), stopped, FormatDuration(res.SearchDuration))
	return err
}
