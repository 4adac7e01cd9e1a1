package p2p

import (
	"sync/atomic"
	"time"
)

// Statistic counts the traffic of one connection. It is safe for concurrent use so that
// the writing and reading sides of a connection can share one instance.
type Statistic struct {
	sentBytes        atomic.Int64
	sentMessages     atomic.Int64
	receivedBytes    atomic.Int64
	receivedMessages atomic.Int64
	lastActivity     atomic.Int64
}

func NewStatistic(now time.Time) *Statistic {
	s := &Statistic{}
	s.lastActivity.Store(now.UnixNano())
	return s
}

func (s *Statistic) addSent(bytes int) {
	s.sentBytes.Add(int64(bytes))
	s.sentMessages.Add(1)
}

func (s *Statistic) addReceived(bytes int) {
	s.receivedBytes.Add(int64(bytes))
	s.receivedMessages.Add(1)
}

func (s *Statistic) touch(now time.Time) {
	s.lastActivity.Store(now.UnixNano())
}

func (s *Statistic) SentBytes() int64        { return s.sentBytes.Load() }
func (s *Statistic) SentMessages() int64     { return s.sentMessages.Load() }
func (s *Statistic) ReceivedBytes() int64    { return s.receivedBytes.Load() }
func (s *Statistic) ReceivedMessages() int64 { return s.receivedMessages.Load() }

// LastActivity is the time of the last non keep-alive message in either direction.
func (s *Statistic) LastActivity() time.Time {
	return time.Unix(0, s.lastActivity.Load())
}
