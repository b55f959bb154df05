package report

import (
	"time"
)

// session is one derived worked interval. checkOut is nil for an open session
// (a check-in that never got a matching check-out); open sessions contribute
// zero duration.
type session struct {
	checkIn  time.Time
	checkOut *time.Time
}

func (s session) duration() time.Duration {
	if s.checkOut == nil {
		return 0
	}
	return s.checkOut.Sub(s.checkIn)
}

// pairSessions greedily matches chronologically sorted check-ins to sorted
// check-outs for one (employee, period) group, left to right:
//
//   - a check-out strictly after the current check-in closes a session and
//     advances both cursors
//   - a check-out at or before the current check-in is a stray with no open
//     check-in and is discarded
//   - trailing unmatched check-ins become open sessions
//
// The greedy policy generalizes to any number of check-in/out cycles per
// period and can never produce a negative duration.
func pairSessions(checkIns, checkOuts []time.Time) ([]session, time.Duration) {
	var (
		sessions []session
		total    time.Duration
	)

	i, j := 0, 0
	for i < len(checkIns) && j < len(checkOuts) {
		if checkOuts[j].After(checkIns[i]) {
			out := checkOuts[j]
			sessions = append(sessions, session{checkIn: checkIns[i], checkOut: &out})
			total += out.Sub(checkIns[i])
			i++
			j++
			continue
		}
		// Stray checkout, no preceding open check-in
		j++
	}

	for ; i < len(checkIns); i++ {
		sessions = append(sessions, session{checkIn: checkIns[i]})
	}

	return sessions, total
}
