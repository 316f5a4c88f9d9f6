package moq

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

// StreamCreated records a locally opened moq-transfork stream.
func StreamCreated(streamType StreamType) qlog.Event {
	return qlog.NewEvent(Stream{name: "stream_created", StreamType: streamType})
}

// StreamParsed records a stream opened by the peer.
func StreamParsed(streamType StreamType) qlog.Event {
	return qlog.NewEvent(Stream{name: "stream_parsed", StreamType: streamType})
}

// SessionStartedClient records the client half of session establishment.
func SessionStartedClient(supportedVersions, extensionIDs []uint64, tracingID uint64) qlog.Event {
	if extensionIDs == nil {
		extensionIDs = []uint64{}
	}
	return qlog.NewEvent(SessionClient{
		SupportedVersions: supportedVersions,
		ExtensionIDs:      extensionIDs,
		TracingID:         tracingID,
	})
}

// SessionStartedServer records the server half of session establishment.
func SessionStartedServer(selectedVersion uint64, extensionIDs []uint64) qlog.Event {
	if extensionIDs == nil {
		extensionIDs = []uint64{}
	}
	return qlog.NewEvent(SessionServer{
		SelectedVersion: selectedVersion,
		ExtensionIDs:    extensionIDs,
	})
}

// SessionUpdateCreated records a locally sent session update.
func SessionUpdateCreated(sessionBitrate uint64) qlog.Event {
	return qlog.NewEvent(SessionUpdate{name: "session_update_created", SessionBitrate: sessionBitrate})
}

// SessionUpdateParsed records a session update received from the peer.
func SessionUpdateParsed(sessionBitrate uint64) qlog.Event {
	return qlog.NewEvent(SessionUpdate{name: "session_update_parsed", SessionBitrate: sessionBitrate})
}

// AnnouncePleaseCreated records a locally sent announce interest.
func AnnouncePleaseCreated(trackPrefixParts []string) qlog.Event {
	return qlog.NewEvent(AnnouncePlease{name: "announce_please_created", TrackPrefixParts: trackPrefixParts})
}

// AnnouncePleaseParsed records an announce interest from the peer.
func AnnouncePleaseParsed(trackPrefixParts []string) qlog.Event {
	return qlog.NewEvent(AnnouncePlease{name: "announce_please_parsed", TrackPrefixParts: trackPrefixParts})
}

// AnnounceCreated records a locally sent announce.
func AnnounceCreated(status AnnounceStatus, trackSuffixParts [][]string) qlog.Event {
	return qlog.NewEvent(Announce{name: "announce_created", AnnounceStatus: status, TrackSuffixParts: trackSuffixParts})
}

// AnnounceParsed records an announce received from the peer.
func AnnounceParsed(status AnnounceStatus, trackSuffixParts [][]string) qlog.Event {
	return qlog.NewEvent(Announce{name: "announce_parsed", AnnounceStatus: status, TrackSuffixParts: trackSuffixParts})
}

// SubscriptionStarted records a new subscription.
func SubscriptionStarted(subscribeID uint64, trackPathParts []string, trackPriority, groupOrder, groupMin, groupMax uint64) qlog.Event {
	return qlog.NewEvent(Subscribe{
		SubscribeID:    subscribeID,
		TrackPathParts: trackPathParts,
		TrackPriority:  trackPriority,
		GroupOrder:     groupOrder,
		GroupMin:       groupMin,
		GroupMax:       groupMax,
	})
}

// SubscriptionUpdateCreated records a locally sent subscription update.
func SubscriptionUpdateCreated(trackPriority, groupOrder, groupMin, groupMax uint64) qlog.Event {
	return qlog.NewEvent(SubscribeUpdate{
		name:          "subscription_update_created",
		TrackPriority: trackPriority,
		GroupOrder:    groupOrder,
		GroupMin:      groupMin,
		GroupMax:      groupMax,
	})
}

// SubscriptionUpdateParsed records a subscription update from the peer.
func SubscriptionUpdateParsed(trackPriority, groupOrder, groupMin, groupMax uint64) qlog.Event {
	return qlog.NewEvent(SubscribeUpdate{
		name:          "subscription_update_parsed",
		TrackPriority: trackPriority,
		GroupOrder:    groupOrder,
		GroupMin:      groupMin,
		GroupMax:      groupMax,
	})
}

// SubscriptionGapCreated records a locally signalled group gap.
func SubscriptionGapCreated(groupStart, groupCount, groupErrorCode uint64) qlog.Event {
	return qlog.NewEvent(SubscribeGap{
		name:           "subscription_gap_created",
		GroupStart:     groupStart,
		GroupCount:     groupCount,
		GroupErrorCode: groupErrorCode,
	})
}

// SubscriptionGapParsed records a group gap signalled by the peer.
func SubscriptionGapParsed(groupStart, groupCount, groupErrorCode uint64) qlog.Event {
	return qlog.NewEvent(SubscribeGap{
		name:           "subscription_gap_parsed",
		GroupStart:     groupStart,
		GroupCount:     groupCount,
		GroupErrorCode: groupErrorCode,
	})
}

// InfoCreated records locally produced track info.
func InfoCreated(trackPriority, groupLatest, groupOrder uint64) qlog.Event {
	return qlog.NewEvent(Info{name: "info_created", TrackPriority: trackPriority, GroupLatest: groupLatest, GroupOrder: groupOrder})
}

// InfoParsed records track info received from the peer.
func InfoParsed(trackPriority, groupLatest, groupOrder uint64) qlog.Event {
	return qlog.NewEvent(Info{name: "info_parsed", TrackPriority: trackPriority, GroupLatest: groupLatest, GroupOrder: groupOrder})
}

// InfoPleaseCreated records a locally sent info request.
func InfoPleaseCreated(trackPathParts []string) qlog.Event {
	return qlog.NewEvent(InfoPlease{name: "info_please_created", TrackPathParts: trackPathParts})
}

// InfoPleaseParsed records an info request from the peer.
func InfoPleaseParsed(trackPathParts []string) qlog.Event {
	return qlog.NewEvent(InfoPlease{name: "info_please_parsed", TrackPathParts: trackPathParts})
}

// FetchCreated records a locally sent fetch.
func FetchCreated(trackPathParts []string, trackPriority, groupSequence, frameSequence uint64) qlog.Event {
	return qlog.NewEvent(Fetch{
		name:           "fetch_created",
		TrackPathParts: trackPathParts,
		TrackPriority:  trackPriority,
		GroupSequence:  groupSequence,
		FrameSequence:  frameSequence,
	})
}

// FetchParsed records a fetch received from the peer.
func FetchParsed(trackPathParts []string, trackPriority, groupSequence, frameSequence uint64) qlog.Event {
	return qlog.NewEvent(Fetch{
		name:           "fetch_parsed",
		TrackPathParts: trackPathParts,
		TrackPriority:  trackPriority,
		GroupSequence:  groupSequence,
		FrameSequence:  frameSequence,
	})
}

// FetchUpdateCreated records a locally sent fetch update.
func FetchUpdateCreated(trackPriority uint64) qlog.Event {
	return qlog.NewEvent(FetchUpdate{name: "fetch_update_created", TrackPriority: trackPriority})
}

// FetchUpdateParsed records a fetch update from the peer.
func FetchUpdateParsed(trackPriority uint64) qlog.Event {
	return qlog.NewEvent(FetchUpdate{name: "fetch_update_parsed", TrackPriority: trackPriority})
}

// GroupCreated records a locally opened group.
func GroupCreated(subscribeID, groupSequence uint64) qlog.Event {
	return qlog.NewEvent(Group{name: "group_created", SubscribeID: subscribeID, GroupSequence: groupSequence})
}

// GroupParsed records a group opened by the peer.
func GroupParsed(subscribeID, groupSequence uint64) qlog.Event {
	return qlog.NewEvent(Group{name: "group_parsed", SubscribeID: subscribeID, GroupSequence: groupSequence})
}

// FrameCreated records a locally produced frame.
func FrameCreated(payload qlog.RawInfo) qlog.Event {
	return qlog.NewEvent(Frame{name: "frame_created", Payload: payload})
}

// FrameParsed records a frame received from the peer.
func FrameParsed(payload qlog.RawInfo) qlog.Event {
	return qlog.NewEvent(Frame{name: "frame_parsed", Payload: payload})
}

// NewTracingID derives a random session tracing ID.
func NewTracingID() uint64 {
	u := uuid.New()
	return binary.BigEndian.Uint64(u[:8])
}
