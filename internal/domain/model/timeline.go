package model

import "time"

// TimelineEntry is one reached milestone on an order's progress timeline.
type TimelineEntry struct {
	Stage Stage     `json:"status"`
	Time  time.Time `json:"time"`
}

// milestone pairs a display stage with the minimum forward-chain rank at which
// an order is considered to have reached it.
var milestones = []struct {
	stage Stage
	rank  int
}{
	{StageAccepted, 1},
	{StagePreparing, 2},
	{StageReady, 3},
	{StagePickedUp, 4},
	{StageDelivered, 6},
}

// SynthesizeTimeline rebuilds a timeline from the current canonical status
// alone. The placed entry is stamped with the order time; every later milestone
// implied by the current status is stamped with now, since the order service
// keeps no transition history. Callers that do have observed history should
// overlay it with Transition records.
func SynthesizeTimeline(status OrderStatus, orderTime, now time.Time) []TimelineEntry {
	timeline := []TimelineEntry{{Stage: StagePlaced, Time: orderTime}}

	rank := progressRank[status]
	for _, m := range milestones {
		if rank >= m.rank {
			timeline = append(timeline, TimelineEntry{Stage: m.stage, Time: now})
		}
	}
	return timeline
}

// Transition is a stage change actually observed by one of the pollers,
// stamped with the real time of observation.
type Transition struct {
	OrderNumber int64
	Stage       Stage
	Status      OrderStatus
	ObservedAt  time.Time
}

// OverlayTransitions substitutes observed times into a synthesized timeline.
// Entries with no matching observation keep their synthesized stamp.
func OverlayTransitions(timeline []TimelineEntry, observed []Transition) []TimelineEntry {
	if len(observed) == 0 {
		return timeline
	}

	firstSeen := make(map[Stage]time.Time, len(observed))
	for _, t := range observed {
		if cur, ok := firstSeen[t.Stage]; !ok || t.ObservedAt.Before(cur) {
			firstSeen[t.Stage] = t.ObservedAt
		}
	}

	out := make([]TimelineEntry, len(timeline))
	copy(out, timeline)
	for i := range out {
		if out[i].Stage == StagePlaced {
			continue
		}
		if at, ok := firstSeen[out[i].Stage]; ok {
			out[i].Time = at
		}
	}
	return out
}
