package content

import "time"

// Timestamp is a resolved modification time or Unknown when the backing
// file could not be found. Unknown is older than every resolved time.
type Timestamp struct {
	t     time.Time
	known bool
}

func Resolved(t time.Time) Timestamp {
	return Timestamp{t: t, known: true}
}

func Unknown() Timestamp {
	return Timestamp{}
}

func (ts Timestamp) Known() bool {
	return ts.known
}

func (ts Timestamp) Time() (time.Time, bool) {
	return ts.t, ts.known
}

// UnixMilli is 0 for Unknown.
func (ts Timestamp) UnixMilli() int64 {
	if !ts.known {
		return 0
	}
	return ts.t.UnixMilli()
}

func (ts Timestamp) Compare(other Timestamp) int {
	switch {
	case !ts.known && !other.known:
		return 0
	case !ts.known:
		return -1
	case !other.known:
		return 1
	default:
		return ts.t.Compare(other.t)
	}
}
