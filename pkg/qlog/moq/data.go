package moq

import "github.com/moq-protocol/qlog-go/pkg/qlog"

// Schema is the event schema identifier prefixed to every event name.
const Schema = "moq-transfork-03"

// EventSchema is the URN declared in the trace file header.
const EventSchema = "urn:ietf:params:qlog:events:moq"

// StreamType classifies a moq-transfork stream.
type StreamType string

// Stream types defined by moq-transfork.
const (
	StreamTypeSession   StreamType = "session"
	StreamTypeAnnounced StreamType = "announced"
	StreamTypeSubscribe StreamType = "subscribe"
	StreamTypeFetch     StreamType = "fetch"
	StreamTypeInfo      StreamType = "info"
	StreamTypeGroup     StreamType = "group"
)

// AnnounceStatus is the state carried by an announce message.
type AnnounceStatus string

const (
	// AnnounceEnded: the path is no longer available.
	AnnounceEnded AnnounceStatus = "ended"
	// AnnounceActive: the path is now available.
	AnnounceActive AnnounceStatus = "active"
	// AnnounceLive: all active paths have been sent.
	AnnounceLive AnnounceStatus = "live"
)

// Stream is the payload of stream_created and stream_parsed.
type Stream struct {
	name       string
	StreamType StreamType `json:"stream_type" cbor:"stream_type"`
}

// Category implements qlog.EventData.
func (Stream) Category() string { return Schema }

// EventName implements qlog.EventData.
func (s Stream) EventName() string { return s.name }

// SessionClient is the payload of a client-initiated session_started.
type SessionClient struct {
	SupportedVersions []uint64 `json:"supported_versions" cbor:"supported_versions"`
	ExtensionIDs      []uint64 `json:"extension_ids" cbor:"extension_ids"`
	TracingID         uint64   `json:"tracing_id" cbor:"tracing_id"`
}

// Category implements qlog.EventData.
func (SessionClient) Category() string { return Schema }

// EventName implements qlog.EventData.
func (SessionClient) EventName() string { return "session_started" }

// SessionServer is the payload of a server-answered session_started.
type SessionServer struct {
	SelectedVersion uint64   `json:"selected_version" cbor:"selected_version"`
	ExtensionIDs    []uint64 `json:"extension_ids" cbor:"extension_ids"`
}

// Category implements qlog.EventData.
func (SessionServer) Category() string { return Schema }

// EventName implements qlog.EventData.
func (SessionServer) EventName() string { return "session_started" }

// SessionUpdate is the payload of session_update_created/parsed.
type SessionUpdate struct {
	name           string
	SessionBitrate uint64 `json:"session_bitrate" cbor:"session_bitrate"`
}

// Category implements qlog.EventData.
func (SessionUpdate) Category() string { return Schema }

// EventName implements qlog.EventData.
func (s SessionUpdate) EventName() string { return s.name }

// AnnouncePlease is the payload of announce_please_created/parsed.
type AnnouncePlease struct {
	name             string
	TrackPrefixParts []string `json:"track_prefix_parts" cbor:"track_prefix_parts"`
}

// Category implements qlog.EventData.
func (AnnouncePlease) Category() string { return Schema }

// EventName implements qlog.EventData.
func (a AnnouncePlease) EventName() string { return a.name }

// Announce is the payload of announce_created/parsed.
type Announce struct {
	name             string
	AnnounceStatus   AnnounceStatus `json:"announce_status" cbor:"announce_status"`
	TrackSuffixParts [][]string     `json:"track_suffix_parts" cbor:"track_suffix_parts"`
}

// Category implements qlog.EventData.
func (Announce) Category() string { return Schema }

// EventName implements qlog.EventData.
func (a Announce) EventName() string { return a.name }

// Subscribe is the payload of subscription_started.
type Subscribe struct {
	SubscribeID    uint64   `json:"subscribe_id" cbor:"subscribe_id"`
	TrackPathParts []string `json:"track_path_parts" cbor:"track_path_parts"`
	TrackPriority  uint64   `json:"track_priority" cbor:"track_priority"`
	GroupOrder     uint64   `json:"group_order" cbor:"group_order"`
	GroupMin       uint64   `json:"group_min" cbor:"group_min"`
	GroupMax       uint64   `json:"group_max" cbor:"group_max"`
}

// Category implements qlog.EventData.
func (Subscribe) Category() string { return Schema }

// EventName implements qlog.EventData.
func (Subscribe) EventName() string { return "subscription_started" }

// SubscribeUpdate is the payload of subscription_update_created/parsed.
type SubscribeUpdate struct {
	name          string
	TrackPriority uint64 `json:"track_priority" cbor:"track_priority"`
	GroupOrder    uint64 `json:"group_order" cbor:"group_order"`
	GroupMin      uint64 `json:"group_min" cbor:"group_min"`
	GroupMax      uint64 `json:"group_max" cbor:"group_max"`
}

// Category implements qlog.EventData.
func (SubscribeUpdate) Category() string { return Schema }

// EventName implements qlog.EventData.
func (s SubscribeUpdate) EventName() string { return s.name }

// SubscribeGap is the payload of subscription_gap_created/parsed.
type SubscribeGap struct {
	name           string
	GroupStart     uint64 `json:"group_start" cbor:"group_start"`
	GroupCount     uint64 `json:"group_count" cbor:"group_count"`
	GroupErrorCode uint64 `json:"group_error_code" cbor:"group_error_code"`
}

// Category implements qlog.EventData.
func (SubscribeGap) Category() string { return Schema }

// EventName implements qlog.EventData.
func (s SubscribeGap) EventName() string { return s.name }

// Info is the payload of info_created/parsed.
type Info struct {
	name          string
	TrackPriority uint64 `json:"track_priority" cbor:"track_priority"`
	GroupLatest   uint64 `json:"group_latest" cbor:"group_latest"`
	GroupOrder    uint64 `json:"group_order" cbor:"group_order"`
}

// Category implements qlog.EventData.
func (Info) Category() string { return Schema }

// EventName implements qlog.EventData.
func (i Info) EventName() string { return i.name }

// InfoPlease is the payload of info_please_created/parsed.
type InfoPlease struct {
	name           string
	TrackPathParts []string `json:"track_path_parts" cbor:"track_path_parts"`
}

// Category implements qlog.EventData.
func (InfoPlease) Category() string { return Schema }

// EventName implements qlog.EventData.
func (i InfoPlease) EventName() string { return i.name }

// Fetch is the payload of fetch_created/parsed.
type Fetch struct {
	name           string
	TrackPathParts []string `json:"track_path_parts" cbor:"track_path_parts"`
	TrackPriority  uint64   `json:"track_priority" cbor:"track_priority"`
	GroupSequence  uint64   `json:"group_sequence" cbor:"group_sequence"`
	FrameSequence  uint64   `json:"frame_sequence" cbor:"frame_sequence"`
}

// Category implements qlog.EventData.
func (Fetch) Category() string { return Schema }

// EventName implements qlog.EventData.
func (f Fetch) EventName() string { return f.name }

// FetchUpdate is the payload of fetch_update_created/parsed.
type FetchUpdate struct {
	name          string
	TrackPriority uint64 `json:"track_priority" cbor:"track_priority"`
}

// Category implements qlog.EventData.
func (FetchUpdate) Category() string { return Schema }

// EventName implements qlog.EventData.
func (f FetchUpdate) EventName() string { return f.name }

// Group is the payload of group_created/parsed.
type Group struct {
	name          string
	SubscribeID   uint64 `json:"subscribe_id" cbor:"subscribe_id"`
	GroupSequence uint64 `json:"group_sequence" cbor:"group_sequence"`
}

// Category implements qlog.EventData.
func (Group) Category() string { return Schema }

// EventName implements qlog.EventData.
func (g Group) EventName() string { return g.name }

// Frame is the payload of frame_created/parsed.
type Frame struct {
	name    string
	Payload qlog.RawInfo `json:"payload" cbor:"payload"`
}

// Category implements qlog.EventData.
func (Frame) Category() string { return Schema }

// EventName implements qlog.EventData.
func (f Frame) EventName() string { return f.name }
