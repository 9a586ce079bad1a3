package bench

import (
	"fmt"
	"io"
)

func commaize(n int64) string {
	if n < 0 {
		return "-" + commaize(-n)
	}
	s1, s2 := fmt.Sprintf("%d", n), ""
	for i, j := len(s1)-1, 0; i >= 0; i, j = i-1, j+1 {
		if j%3 == 0 && j != 0 {
			s2 = "," + s2
		}
		s2 = string(s1[i]) + s2
	}
	return s2
}

// WriteOutput writes one result line to w.
func WriteOutput(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "%-12s %-10s rate=%.2f  I = %s/s  P = %s/s  hit=%.4f  len=%d\n",
		r.Table,
		r.Distribution,
		r.MatchingRate,
		commaize(int64(r.InsertOpsPerSec())),
		commaize(int64(r.ProbeOpsPerSec())),
		r.HitRate(),
		r.Len,
	)
	return err
}
