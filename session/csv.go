package session

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// WriteHistoryCSV dumps the edit log to w, one row per accepted edit with
// the full derived snapshot alongside it. The session never reads this
// back; it exists for offline inspection of a run.
func (s *Session) WriteHistoryCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "time", "field", "raw"}
	for _, f := range (Entry{}).Result.Fields() {
		header = append(header, f.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, e := range s.History() {
		row := []string{
			e.ID,
			e.Time.Format(time.RFC3339Nano),
			e.Field,
			e.Raw,
		}
		for _, m := range e.Result.Fields() {
			row = append(row, f(m.Value))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
