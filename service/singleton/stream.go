package singleton

import (
	"sync"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
)

// Live intelligence stream: each open websocket holds one subscriber
// channel; a full channel is skipped rather than blocking the save.
var (
	intelligenceSubs     map[uint64][]chan *model.AIMessageResponse
	intelligenceSubsLock sync.RWMutex
)

func init() {
	intelligenceSubs = make(map[uint64][]chan *model.AIMessageResponse)
}

// SubscribeIntelligence registers a listener for the user's exchanges.
// The returned cancel func must be called when the socket closes.
func SubscribeIntelligence(userID uint64) (<-chan *model.AIMessageResponse, func()) {
	ch := make(chan *model.AIMessageResponse, 8)

	intelligenceSubsLock.Lock()
	intelligenceSubs[userID] = append(intelligenceSubs[userID], ch)
	intelligenceSubsLock.Unlock()

	cancel := func() {
		intelligenceSubsLock.Lock()
		defer intelligenceSubsLock.Unlock()
		subs := intelligenceSubs[userID]
		for i, c := range subs {
			if c == ch {
				intelligenceSubs[userID] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		close(ch)
	}
	return ch, cancel
}

func notifyIntelligenceSubscribers(resp *model.AIMessageResponse) {
	intelligenceSubsLock.RLock()
	defer intelligenceSubsLock.RUnlock()
	for _, ch := range intelligenceSubs[resp.UserMessage.UserID] {
		select {
		case ch <- resp:
		default:
		}
	}
}
