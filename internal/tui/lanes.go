package tui

import "context"

// Lane is an independent fetch pipeline. Lanes may be in flight together;
// within a lane only the newest request counts.
type Lane int

// Lanes.
const (
	LaneList Lane = iota
	LaneTrend
	LaneNews
	LaneStats
	LaneBizcircles
	laneCount
)

func (l Lane) String() string {
	switch l {
	case LaneList:
		return "list"
	case LaneTrend:
		return "trend"
	case LaneNews:
		return "news"
	case LaneStats:
		return "stats"
	case LaneBizcircles:
		return "bizcircles"
	default:
		return "unknown"
	}
}

type laneState struct {
	cancel  context.CancelFunc
	token   uint64
	loading bool
}

// lanes tracks the generation token and cancel func of each lane.
type lanes struct {
	parent context.Context
	slots  [laneCount]laneState
}

func newLanes(parent context.Context) lanes {
	if parent == nil {
		parent = context.Background()
	}
	return lanes{parent: parent}
}

// start supersedes the lane's in-flight request and returns the context and
// token for a new one.
func (l *lanes) start(lane Lane) (context.Context, uint64) {
	s := &l.slots[lane]
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(l.parent)
	s.token++
	s.cancel = cancel
	s.loading = true
	return ctx, s.token
}

// finish settles the request holding token. It reports false for a
// superseded request, whose result must be dropped.
func (l *lanes) finish(lane Lane, token uint64) bool {
	s := &l.slots[lane]
	if s.token != token {
		return false
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.loading = false
	return true
}

// abandon cancels the lane's request and invalidates its token.
func (l *lanes) abandon(lane Lane) {
	s := &l.slots[lane]
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.token++
	s.loading = false
}

func (l *lanes) loading(lane Lane) bool {
	return l.slots[lane].loading
}

func (l *lanes) token(lane Lane) uint64 {
	return l.slots[lane].token
}

func (l *lanes) cancelAll() {
	for i := range l.slots {
		l.abandon(Lane(i))
	}
}
