package tracker

import (
	"sync"
)

type replyKey struct {
	chatID    int64
	messageID int
}

// ReplyTracker remembers the bot's last posted translation per
// (chat, original message), so a newer translation can supersede it.
type ReplyTracker struct {
	mu      sync.Mutex
	replies map[replyKey]int
}

func NewReplyTracker() *ReplyTracker {
	return &ReplyTracker{replies: make(map[replyKey]int)}
}

// TakePrevious atomically returns and removes the tracked bot message id for
// the given original message. The second result reports whether one existed.
func (x *ReplyTracker) TakePrevious(chatID int64, originalMessageID int) (int, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()

	key := replyKey{chatID: chatID, messageID: originalMessageID}
	botMessageID, ok := x.replies[key]
	if ok {
		delete(x.replies, key)
	}
	return botMessageID, ok
}

// Record overwrites the tracked bot message id for the original message.
func (x *ReplyTracker) Record(chatID int64, originalMessageID, botMessageID int) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.replies[replyKey{chatID: chatID, messageID: originalMessageID}] = botMessageID
}

func (x *ReplyTracker) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.replies)
}
