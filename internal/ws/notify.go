package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// ProgressEvent is the wire shape for every progress push. UserHandle is the
// anonymized leaderboard handle, never the account id.
type ProgressEvent struct {
	Type       string `json:"type"`
	UserHandle int64  `json:"user_handle"`
	XPAwarded  int64  `json:"xp_awarded,omitempty"`
	TotalXP    int64  `json:"total_xp"`
	League     string `json:"league,omitempty"`
	Timestamp  string `json:"timestamp"`
}

const (
	EventXPAwarded      = "xp_awarded"
	EventLeaguePromoted = "league_promoted"
)

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyXPAwarded(userHandle, awarded, totalXP int64) {
	publish(ProgressEvent{
		Type:       EventXPAwarded,
		UserHandle: userHandle,
		XPAwarded:  awarded,
		TotalXP:    totalXP,
	})
}

func NotifyLeaguePromoted(userHandle, totalXP int64, league string) {
	publish(ProgressEvent{
		Type:       EventLeaguePromoted,
		UserHandle: userHandle,
		TotalXP:    totalXP,
		League:     league,
	})
}

func publish(evt ProgressEvent) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
