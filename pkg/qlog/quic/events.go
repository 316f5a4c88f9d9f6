package quic

import "github.com/moq-protocol/qlog-go/pkg/qlog"

// ServerListening is the payload of server_listening.
type ServerListening struct {
	IPv4          IPAddress `json:"ip_v4,omitempty" cbor:"ip_v4,omitempty"`
	PortV4        *uint16   `json:"port_v4,omitempty" cbor:"port_v4,omitempty"`
	IPv6          IPAddress `json:"ip_v6,omitempty" cbor:"ip_v6,omitempty"`
	PortV6        *uint16   `json:"port_v6,omitempty" cbor:"port_v6,omitempty"`
	RetryRequired *bool     `json:"retry_required,omitempty" cbor:"retry_required,omitempty"`
}

// Category implements qlog.EventData.
func (ServerListening) Category() string { return Schema }

// EventName implements qlog.EventData.
func (ServerListening) EventName() string { return "server_listening" }

// ConnectionStarted is the payload of connection_started.
type ConnectionStarted struct {
	Local  PathEndpointInfo `json:"local" cbor:"local"`
	Remote PathEndpointInfo `json:"remote" cbor:"remote"`
}

// Category implements qlog.EventData.
func (ConnectionStarted) Category() string { return Schema }

// EventName implements qlog.EventData.
func (ConnectionStarted) EventName() string { return "connection_started" }

// ConnectionClosed is the payload of connection_closed. ConnectionCode
// holds a transport or crypto error name, ApplicationCode the raw
// application error value.
type ConnectionClosed struct {
	Owner           Owner                  `json:"owner,omitempty" cbor:"owner,omitempty"`
	ConnectionCode  string                 `json:"connection_code,omitempty" cbor:"connection_code,omitempty"`
	ApplicationCode *uint64                `json:"application_code,omitempty" cbor:"application_code,omitempty"`
	InternalCode    *uint32                `json:"internal_code,omitempty" cbor:"internal_code,omitempty"`
	Reason          string                 `json:"reason,omitempty" cbor:"reason,omitempty"`
	Trigger         ConnectionCloseTrigger `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (ConnectionClosed) Category() string { return Schema }

// EventName implements qlog.EventData.
func (ConnectionClosed) EventName() string { return "connection_closed" }

// ConnectionIDUpdated is the payload of connection_id_updated.
type ConnectionIDUpdated struct {
	Owner Owner        `json:"owner" cbor:"owner"`
	Old   ConnectionID `json:"old,omitempty" cbor:"old,omitempty"`
	New   ConnectionID `json:"new,omitempty" cbor:"new,omitempty"`
}

// Category implements qlog.EventData.
func (ConnectionIDUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (ConnectionIDUpdated) EventName() string { return "connection_id_updated" }

// SpinBitUpdated is the payload of spin_bit_updated.
type SpinBitUpdated struct {
	State bool `json:"state" cbor:"state"`
}

// Category implements qlog.EventData.
func (SpinBitUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (SpinBitUpdated) EventName() string { return "spin_bit_updated" }

// ConnectionStateUpdated is the payload of connection_state_updated.
type ConnectionStateUpdated struct {
	Old *ConnectionState `json:"old,omitempty" cbor:"old,omitempty"`
	New ConnectionState  `json:"new" cbor:"new"`
}

// Category implements qlog.EventData.
func (ConnectionStateUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (ConnectionStateUpdated) EventName() string { return "connection_state_updated" }

// PathAssigned is the payload of path_assigned.
type PathAssigned struct {
	PathID     string            `json:"path_id" cbor:"path_id"`
	PathLocal  *PathEndpointInfo `json:"path_local,omitempty" cbor:"path_local,omitempty"`
	PathRemote *PathEndpointInfo `json:"path_remote,omitempty" cbor:"path_remote,omitempty"`
}

// Category implements qlog.EventData.
func (PathAssigned) Category() string { return Schema }

// EventName implements qlog.EventData.
func (PathAssigned) EventName() string { return "path_assigned" }

// MTUUpdated is the payload of mtu_updated. Done signals the end of MTU
// discovery for now.
type MTUUpdated struct {
	Old  *uint32 `json:"old,omitempty" cbor:"old,omitempty"`
	New  uint32  `json:"new" cbor:"new"`
	Done bool    `json:"done,omitempty" cbor:"done,omitempty"`
}

// Category implements qlog.EventData.
func (MTUUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (MTUUpdated) EventName() string { return "mtu_updated" }

// VersionInformation is the payload of version_information.
type VersionInformation struct {
	ServerVersions []Version `json:"server_versions,omitempty" cbor:"server_versions,omitempty"`
	ClientVersions []Version `json:"client_versions,omitempty" cbor:"client_versions,omitempty"`
	ChosenVersion  Version   `json:"chosen_version,omitempty" cbor:"chosen_version,omitempty"`
}

// Category implements qlog.EventData.
func (VersionInformation) Category() string { return Schema }

// EventName implements qlog.EventData.
func (VersionInformation) EventName() string { return "version_information" }

// AlpnInformation is the payload of alpn_information.
type AlpnInformation struct {
	ServerAlpns []AlpnIdentifier `json:"server_alpns,omitempty" cbor:"server_alpns,omitempty"`
	ClientAlpns []AlpnIdentifier `json:"client_alpns,omitempty" cbor:"client_alpns,omitempty"`
	ChosenAlpn  *AlpnIdentifier  `json:"chosen_alpn,omitempty" cbor:"chosen_alpn,omitempty"`
}

// Category implements qlog.EventData.
func (AlpnInformation) Category() string { return Schema }

// EventName implements qlog.EventData.
func (AlpnInformation) EventName() string { return "alpn_information" }

// ParametersSet is the payload of parameters_set, one event per owner.
type ParametersSet struct {
	Owner Owner `json:"owner,omitempty" cbor:"owner,omitempty"`

	ResumptionAllowed *bool  `json:"resumption_allowed,omitempty" cbor:"resumption_allowed,omitempty"`
	EarlyDataEnabled  *bool  `json:"early_data_enabled,omitempty" cbor:"early_data_enabled,omitempty"`
	TLSCipher         string `json:"tls_cipher,omitempty" cbor:"tls_cipher,omitempty"`

	OriginalDestinationConnectionID ConnectionID        `json:"original_destination_connection_id,omitempty" cbor:"original_destination_connection_id,omitempty"`
	InitialSourceConnectionID       ConnectionID        `json:"initial_source_connection_id,omitempty" cbor:"initial_source_connection_id,omitempty"`
	RetrySourceConnectionID         ConnectionID        `json:"retry_source_connection_id,omitempty" cbor:"retry_source_connection_id,omitempty"`
	StatelessResetToken             StatelessResetToken `json:"stateless_reset_token,omitempty" cbor:"stateless_reset_token,omitempty"`
	DisableActiveMigration          *bool               `json:"disable_active_migration,omitempty" cbor:"disable_active_migration,omitempty"`

	MaxIdleTimeout          *uint64 `json:"max_idle_timeout,omitempty" cbor:"max_idle_timeout,omitempty"`
	MaxUDPPayloadSize       *uint32 `json:"max_udp_payload_size,omitempty" cbor:"max_udp_payload_size,omitempty"`
	AckDelayExponent        *uint16 `json:"ack_delay_exponent,omitempty" cbor:"ack_delay_exponent,omitempty"`
	MaxAckDelay             *uint16 `json:"max_ack_delay,omitempty" cbor:"max_ack_delay,omitempty"`
	ActiveConnectionIDLimit *uint32 `json:"active_connection_id_limit,omitempty" cbor:"active_connection_id_limit,omitempty"`

	InitialMaxData                 *uint64 `json:"initial_max_data,omitempty" cbor:"initial_max_data,omitempty"`
	InitialMaxStreamDataBidiLocal  *uint64 `json:"initial_max_stream_data_bidi_local,omitempty" cbor:"initial_max_stream_data_bidi_local,omitempty"`
	InitialMaxStreamDataBidiRemote *uint64 `json:"initial_max_stream_data_bidi_remote,omitempty" cbor:"initial_max_stream_data_bidi_remote,omitempty"`
	InitialMaxStreamDataUni        *uint64 `json:"initial_max_stream_data_uni,omitempty" cbor:"initial_max_stream_data_uni,omitempty"`
	InitialMaxStreamsBidi          *uint64 `json:"initial_max_streams_bidi,omitempty" cbor:"initial_max_streams_bidi,omitempty"`
	InitialMaxStreamsUni           *uint64 `json:"initial_max_streams_uni,omitempty" cbor:"initial_max_streams_uni,omitempty"`

	PreferredAddress *PreferredAddress `json:"preferred_address,omitempty" cbor:"preferred_address,omitempty"`

	UnknownParameters []UnknownParameter `json:"unknown_parameters,omitempty" cbor:"unknown_parameters,omitempty"`

	MaxDatagramFrameSize *uint64 `json:"max_datagram_frame_size,omitempty" cbor:"max_datagram_frame_size,omitempty"`
	GreaseQuicBit        *bool   `json:"grease_quic_bit,omitempty" cbor:"grease_quic_bit,omitempty"`
}

// Category implements qlog.EventData.
func (ParametersSet) Category() string { return Schema }

// EventName implements qlog.EventData.
func (ParametersSet) EventName() string { return "parameters_set" }

// ParametersRestored is the payload of parameters_restored, logging the
// 0-RTT parameters remembered from a previous connection.
type ParametersRestored struct {
	DisableActiveMigration *bool   `json:"disable_active_migration,omitempty" cbor:"disable_active_migration,omitempty"`
	MaxIdleTimeout         *uint64 `json:"max_idle_timeout,omitempty" cbor:"max_idle_timeout,omitempty"`
	MaxUDPPayloadSize      *uint32 `json:"max_udp_payload_size,omitempty" cbor:"max_udp_payload_size,omitempty"`

	ActiveConnectionIDLimit *uint32 `json:"active_connection_id_limit,omitempty" cbor:"active_connection_id_limit,omitempty"`

	InitialMaxData                 *uint64 `json:"initial_max_data,omitempty" cbor:"initial_max_data,omitempty"`
	InitialMaxStreamDataBidiLocal  *uint64 `json:"initial_max_stream_data_bidi_local,omitempty" cbor:"initial_max_stream_data_bidi_local,omitempty"`
	InitialMaxStreamDataBidiRemote *uint64 `json:"initial_max_stream_data_bidi_remote,omitempty" cbor:"initial_max_stream_data_bidi_remote,omitempty"`
	InitialMaxStreamDataUni        *uint64 `json:"initial_max_stream_data_uni,omitempty" cbor:"initial_max_stream_data_uni,omitempty"`
	InitialMaxStreamsBidi          *uint64 `json:"initial_max_streams_bidi,omitempty" cbor:"initial_max_streams_bidi,omitempty"`
	InitialMaxStreamsUni           *uint64 `json:"initial_max_streams_uni,omitempty" cbor:"initial_max_streams_uni,omitempty"`

	MaxDatagramFrameSize *uint64 `json:"max_datagram_frame_size,omitempty" cbor:"max_datagram_frame_size,omitempty"`
	GreaseQuicBit        *bool   `json:"grease_quic_bit,omitempty" cbor:"grease_quic_bit,omitempty"`
}

// Category implements qlog.EventData.
func (ParametersRestored) Category() string { return Schema }

// EventName implements qlog.EventData.
func (ParametersRestored) EventName() string { return "parameters_restored" }

// PacketSent is the payload of packet_sent.
type PacketSent struct {
	Header PacketHeader `json:"header" cbor:"header"`
	Frames []Frame      `json:"frames,omitempty" cbor:"frames,omitempty"`

	IsCoalesced *bool `json:"is_coalesced,omitempty" cbor:"is_coalesced,omitempty"`

	// RetryToken is only set for Retry packets.
	RetryToken *Token `json:"retry_token,omitempty" cbor:"retry_token,omitempty"`
	// StatelessResetToken is only set for stateless reset packets.
	StatelessResetToken StatelessResetToken `json:"stateless_reset_token,omitempty" cbor:"stateless_reset_token,omitempty"`
	// SupportedVersions is only set for version negotiation packets.
	SupportedVersions []Version `json:"supported_versions,omitempty" cbor:"supported_versions,omitempty"`

	Raw              *qlog.RawInfo     `json:"raw,omitempty" cbor:"raw,omitempty"`
	DatagramID       *uint32           `json:"datagram_id,omitempty" cbor:"datagram_id,omitempty"`
	IsMTUProbePacket *bool             `json:"is_mtu_probe_packet,omitempty" cbor:"is_mtu_probe_packet,omitempty"`
	Trigger          PacketSentTrigger `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (PacketSent) Category() string { return Schema }

// EventName implements qlog.EventData.
func (PacketSent) EventName() string { return "packet_sent" }

// PacketReceived is the payload of packet_received.
type PacketReceived struct {
	Header PacketHeader `json:"header" cbor:"header"`
	Frames []Frame      `json:"frames,omitempty" cbor:"frames,omitempty"`

	IsCoalesced *bool `json:"is_coalesced,omitempty" cbor:"is_coalesced,omitempty"`

	RetryToken          *Token              `json:"retry_token,omitempty" cbor:"retry_token,omitempty"`
	StatelessResetToken StatelessResetToken `json:"stateless_reset_token,omitempty" cbor:"stateless_reset_token,omitempty"`
	SupportedVersions   []Version           `json:"supported_versions,omitempty" cbor:"supported_versions,omitempty"`

	Raw        *qlog.RawInfo         `json:"raw,omitempty" cbor:"raw,omitempty"`
	DatagramID *uint32               `json:"datagram_id,omitempty" cbor:"datagram_id,omitempty"`
	Trigger    PacketReceivedTrigger `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (PacketReceived) Category() string { return Schema }

// EventName implements qlog.EventData.
func (PacketReceived) EventName() string { return "packet_received" }

// PacketDropped is the payload of packet_dropped. Header is best effort
// since the packet could not be processed.
type PacketDropped struct {
	Header     *PacketHeader        `json:"header,omitempty" cbor:"header,omitempty"`
	Raw        *qlog.RawInfo        `json:"raw,omitempty" cbor:"raw,omitempty"`
	DatagramID *uint32              `json:"datagram_id,omitempty" cbor:"datagram_id,omitempty"`
	Details    map[string]string    `json:"details,omitempty" cbor:"details,omitempty"`
	Trigger    PacketDroppedTrigger `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (PacketDropped) Category() string { return Schema }

// EventName implements qlog.EventData.
func (PacketDropped) EventName() string { return "packet_dropped" }

// PacketBuffered is the payload of packet_buffered.
type PacketBuffered struct {
	Header     *PacketHeader         `json:"header,omitempty" cbor:"header,omitempty"`
	Raw        *qlog.RawInfo         `json:"raw,omitempty" cbor:"raw,omitempty"`
	DatagramID *uint32               `json:"datagram_id,omitempty" cbor:"datagram_id,omitempty"`
	Trigger    PacketBufferedTrigger `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (PacketBuffered) Category() string { return Schema }

// EventName implements qlog.EventData.
func (PacketBuffered) EventName() string { return "packet_buffered" }

// PacketsAcked is the payload of packets_acked.
type PacketsAcked struct {
	PacketNumberSpace *PacketNumberSpace `json:"packet_number_space,omitempty" cbor:"packet_number_space,omitempty"`
	PacketNumbers     []uint64           `json:"packet_numbers,omitempty" cbor:"packet_numbers,omitempty"`
}

// Category implements qlog.EventData.
func (PacketsAcked) Category() string { return Schema }

// EventName implements qlog.EventData.
func (PacketsAcked) EventName() string { return "packets_acked" }

// UDPDatagramsSent is the payload of udp_datagrams_sent.
type UDPDatagramsSent struct {
	Count       *uint16        `json:"count,omitempty" cbor:"count,omitempty"`
	Raw         []qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
	ECN         *ECN           `json:"ecn,omitempty" cbor:"ecn,omitempty"`
	DatagramIDs []uint32       `json:"datagram_ids,omitempty" cbor:"datagram_ids,omitempty"`
}

// Category implements qlog.EventData.
func (UDPDatagramsSent) Category() string { return Schema }

// EventName implements qlog.EventData.
func (UDPDatagramsSent) EventName() string { return "udp_datagrams_sent" }

// UDPDatagramsReceived is the payload of udp_datagrams_received.
type UDPDatagramsReceived struct {
	Count       *uint16        `json:"count,omitempty" cbor:"count,omitempty"`
	Raw         []qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
	ECN         *ECN           `json:"ecn,omitempty" cbor:"ecn,omitempty"`
	DatagramIDs []uint32       `json:"datagram_ids,omitempty" cbor:"datagram_ids,omitempty"`
}

// Category implements qlog.EventData.
func (UDPDatagramsReceived) Category() string { return Schema }

// EventName implements qlog.EventData.
func (UDPDatagramsReceived) EventName() string { return "udp_datagrams_received" }

// UDPDatagramDropped is the payload of udp_datagram_dropped.
type UDPDatagramDropped struct {
	Raw *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

// Category implements qlog.EventData.
func (UDPDatagramDropped) Category() string { return Schema }

// EventName implements qlog.EventData.
func (UDPDatagramDropped) EventName() string { return "udp_datagram_dropped" }

// StreamStateUpdated is the payload of stream_state_updated.
type StreamStateUpdated struct {
	StreamID   uint64           `json:"stream_id" cbor:"stream_id"`
	StreamType *StreamDirection `json:"stream_type,omitempty" cbor:"stream_type,omitempty"`
	Old        *StreamState     `json:"old,omitempty" cbor:"old,omitempty"`
	New        StreamState      `json:"new" cbor:"new"`
	StreamSide *StreamSide      `json:"stream_side,omitempty" cbor:"stream_side,omitempty"`
}

// Category implements qlog.EventData.
func (StreamStateUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (StreamStateUpdated) EventName() string { return "stream_state_updated" }

// FramesProcessed is the payload of frames_processed. It exists for
// implementations that process batches of frames decoupled from packet
// receipt.
type FramesProcessed struct {
	Frames        []Frame  `json:"frames" cbor:"frames"`
	PacketNumbers []uint64 `json:"packet_numbers,omitempty" cbor:"packet_numbers,omitempty"`
}

// Category implements qlog.EventData.
func (FramesProcessed) Category() string { return Schema }

// EventName implements qlog.EventData.
func (FramesProcessed) EventName() string { return "frames_processed" }

// KeyUpdated is the payload of key_updated.
type KeyUpdated struct {
	KeyType    KeyType    `json:"key_type" cbor:"key_type"`
	Old        string     `json:"old,omitempty" cbor:"old,omitempty"`
	New        string     `json:"new,omitempty" cbor:"new,omitempty"`
	Generation *uint32    `json:"generation,omitempty" cbor:"generation,omitempty"`
	Trigger    KeyTrigger `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (KeyUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (KeyUpdated) EventName() string { return "key_updated" }

// KeyDiscarded is the payload of key_discarded.
type KeyDiscarded struct {
	KeyType    KeyType    `json:"key_type" cbor:"key_type"`
	Key        string     `json:"key,omitempty" cbor:"key,omitempty"`
	Generation *uint32    `json:"generation,omitempty" cbor:"generation,omitempty"`
	Trigger    KeyTrigger `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (KeyDiscarded) Category() string { return Schema }

// EventName implements qlog.EventData.
func (KeyDiscarded) EventName() string { return "key_discarded" }

// RecoveryParametersSet is the payload of recovery_parameters_set.
// Time values are milliseconds.
type RecoveryParametersSet struct {
	ReorderingThreshold *uint16  `json:"reordering_threshold,omitempty" cbor:"reordering_threshold,omitempty"`
	TimeThreshold       *float32 `json:"time_threshold,omitempty" cbor:"time_threshold,omitempty"`
	TimerGranularity    *uint16  `json:"timer_granularity,omitempty" cbor:"timer_granularity,omitempty"`
	InitialRTT          *float32 `json:"initial_rtt,omitempty" cbor:"initial_rtt,omitempty"`

	MaxDatagramSize         *uint32 `json:"max_datagram_size,omitempty" cbor:"max_datagram_size,omitempty"`
	InitialCongestionWindow *uint64 `json:"initial_congestion_window,omitempty" cbor:"initial_congestion_window,omitempty"`
	MinimumCongestionWindow *uint64 `json:"minimum_congestion_window,omitempty" cbor:"minimum_congestion_window,omitempty"`
}

// Category implements qlog.EventData.
func (RecoveryParametersSet) Category() string { return Schema }

// EventName implements qlog.EventData.
func (RecoveryParametersSet) EventName() string { return "recovery_parameters_set" }

// RecoveryMetricsUpdated is the payload of recovery_metrics_updated.
// Only metrics that changed since the previous event need to be set.
// RTT values are milliseconds.
type RecoveryMetricsUpdated struct {
	MinRTT      *float32 `json:"min_rtt,omitempty" cbor:"min_rtt,omitempty"`
	SmoothedRTT *float32 `json:"smoothed_rtt,omitempty" cbor:"smoothed_rtt,omitempty"`
	LatestRTT   *float32 `json:"latest_rtt,omitempty" cbor:"latest_rtt,omitempty"`
	RTTVariance *float32 `json:"rtt_variance,omitempty" cbor:"rtt_variance,omitempty"`

	PtoCount *uint16 `json:"pto_count,omitempty" cbor:"pto_count,omitempty"`

	CongestionWindow *uint64 `json:"congestion_window,omitempty" cbor:"congestion_window,omitempty"`
	BytesInFlight    *uint64 `json:"bytes_in_flight,omitempty" cbor:"bytes_in_flight,omitempty"`
	Ssthresh         *uint64 `json:"ssthresh,omitempty" cbor:"ssthresh,omitempty"`

	PacketsInFlight *uint64 `json:"packets_in_flight,omitempty" cbor:"packets_in_flight,omitempty"`
	PacingRate      *uint64 `json:"pacing_rate,omitempty" cbor:"pacing_rate,omitempty"`
}

// Category implements qlog.EventData.
func (RecoveryMetricsUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (RecoveryMetricsUpdated) EventName() string { return "recovery_metrics_updated" }

// CongestionStateUpdated is the payload of congestion_state_updated.
// State names depend on the congestion controller in use.
type CongestionStateUpdated struct {
	Old     string `json:"old,omitempty" cbor:"old,omitempty"`
	New     string `json:"new" cbor:"new"`
	Trigger string `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (CongestionStateUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (CongestionStateUpdated) EventName() string { return "congestion_state_updated" }

// LossTimerUpdated is the payload of loss_timer_updated. Delta is the
// time to expiry in milliseconds when the timer is set.
type LossTimerUpdated struct {
	TimerType         *TimerType         `json:"timer_type,omitempty" cbor:"timer_type,omitempty"`
	PacketNumberSpace *PacketNumberSpace `json:"packet_number_space,omitempty" cbor:"packet_number_space,omitempty"`
	EventType         TimerEventType     `json:"event_type" cbor:"event_type"`
	Delta             *float32           `json:"delta,omitempty" cbor:"delta,omitempty"`
}

// Category implements qlog.EventData.
func (LossTimerUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (LossTimerUpdated) EventName() string { return "loss_timer_updated" }

// PacketLost is the payload of packet_lost.
type PacketLost struct {
	Header           *PacketHeader     `json:"header,omitempty" cbor:"header,omitempty"`
	Frames           []Frame           `json:"frames,omitempty" cbor:"frames,omitempty"`
	IsMTUProbePacket *bool             `json:"is_mtu_probe_packet,omitempty" cbor:"is_mtu_probe_packet,omitempty"`
	Trigger          PacketLostTrigger `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (PacketLost) Category() string { return Schema }

// EventName implements qlog.EventData.
func (PacketLost) EventName() string { return "packet_lost" }

// MarkedForRetransmit is the payload of marked_for_retransmit.
type MarkedForRetransmit struct {
	Frames []Frame `json:"frames" cbor:"frames"`
}

// Category implements qlog.EventData.
func (MarkedForRetransmit) Category() string { return Schema }

// EventName implements qlog.EventData.
func (MarkedForRetransmit) EventName() string { return "marked_for_retransmit" }

// ECNStateUpdated is the payload of ecn_state_updated.
type ECNStateUpdated struct {
	Old     *ECNState `json:"old,omitempty" cbor:"old,omitempty"`
	New     ECNState  `json:"new" cbor:"new"`
	Trigger string    `json:"trigger,omitempty" cbor:"trigger,omitempty"`
}

// Category implements qlog.EventData.
func (ECNStateUpdated) Category() string { return Schema }

// EventName implements qlog.EventData.
func (ECNStateUpdated) EventName() string { return "ecn_state_updated" }
