// Package moq contributes the moq-transfork event catalog to the qlog
// event union.
//
// Each event kind has a construction function returning a ready-to-log
// qlog.Event with its schema-qualified name pre-filled:
//
//	w.LogEvent(moq.SubscriptionStarted(7, []string{"clock", "seconds"}, 1, 0, 0, 0))
//
// Payload shapes are pure data records; the set of variants is closed
// within this package. SessionEmitter additionally reproduces the group-ID
// pairing between a session's stream event and its session_started event.
package moq
