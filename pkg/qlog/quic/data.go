package quic

import "github.com/moq-protocol/qlog-go/pkg/qlog"

// Schema is the event schema identifier prefixed to every event name.
const Schema = "quic-10"

// EventSchema is the URN declared in the trace file header.
const EventSchema = "urn:ietf:params:qlog:events:quic-10"

// Hex-encoded identifiers. An IPAddress may be human-readable, raw-byte
// or redacted form.
type (
	Version             = string
	ConnectionID        = string
	IPAddress           = string
	StatelessResetToken = string
)

// Owner says which endpoint an update belongs to.
type Owner string

const (
	OwnerLocal  Owner = "local"
	OwnerRemote Owner = "remote"
)

// PathEndpointInfo is one half/direction of a network path.
type PathEndpointInfo struct {
	IPv4   IPAddress `json:"ip_v4,omitempty" cbor:"ip_v4,omitempty"`
	PortV4 *uint16   `json:"port_v4,omitempty" cbor:"port_v4,omitempty"`
	IPv6   IPAddress `json:"ip_v6,omitempty" cbor:"ip_v6,omitempty"`
	PortV6 *uint16   `json:"port_v6,omitempty" cbor:"port_v6,omitempty"`

	// ConnectionIDs associated with the path. Usually one, but overlaps
	// happen around connection ID updates.
	ConnectionIDs []ConnectionID `json:"connection_ids,omitempty" cbor:"connection_ids,omitempty"`
}

// PacketType classifies a QUIC packet.
type PacketType string

const (
	PacketTypeInitial            PacketType = "initial"
	PacketTypeHandshake          PacketType = "handshake"
	PacketType0RTT               PacketType = "0RTT"
	PacketType1RTT               PacketType = "1RTT"
	PacketTypeRetry              PacketType = "retry"
	PacketTypeVersionNegotiation PacketType = "version_negotiation"
	PacketTypeStatelessReset     PacketType = "stateless_reset"
	PacketTypeUnknown            PacketType = "unknown"
)

// PacketNumberSpace is one of the three QUIC packet number spaces.
type PacketNumberSpace string

const (
	PacketNumberSpaceInitial         PacketNumberSpace = "initial"
	PacketNumberSpaceHandshake       PacketNumberSpace = "handshake"
	PacketNumberSpaceApplicationData PacketNumberSpace = "application_data"
)

// PacketHeader is the decoded QUIC packet header. If the packet type
// value does not map to a known type, PacketType is "unknown" and the raw
// value goes in PacketTypeBytes.
type PacketHeader struct {
	QuicBit         *bool        `json:"quic_bit,omitempty" cbor:"quic_bit,omitempty"`
	PacketType      PacketType   `json:"packet_type" cbor:"packet_type"`
	PacketTypeBytes *uint64      `json:"packet_type_bytes,omitempty" cbor:"packet_type_bytes,omitempty"`
	PacketNumber    *uint64      `json:"packet_number,omitempty" cbor:"packet_number,omitempty"`
	Flags           *uint8       `json:"flags,omitempty" cbor:"flags,omitempty"`
	Token           *Token       `json:"token,omitempty" cbor:"token,omitempty"`
	Length          *uint16      `json:"length,omitempty" cbor:"length,omitempty"`
	Version         Version      `json:"version,omitempty" cbor:"version,omitempty"`
	SCIL            *uint8       `json:"scil,omitempty" cbor:"scil,omitempty"`
	DCIL            *uint8       `json:"dcil,omitempty" cbor:"dcil,omitempty"`
	SCID            ConnectionID `json:"scid,omitempty" cbor:"scid,omitempty"`
	DCID            ConnectionID `json:"dcid,omitempty" cbor:"dcid,omitempty"`
}

// TokenType distinguishes retry from resumption tokens.
type TokenType string

const (
	TokenTypeRetry      TokenType = "retry"
	TokenTypeResumption TokenType = "resumption"
)

// Token is an address validation token carried in an Initial or Retry
// packet. Decoded metadata is implementation specific, so Details is a
// free-form map.
type Token struct {
	Type    TokenType         `json:"type,omitempty" cbor:"type,omitempty"`
	Details map[string]string `json:"details,omitempty" cbor:"details,omitempty"`
	Raw     *qlog.RawInfo     `json:"raw,omitempty" cbor:"raw,omitempty"`
}

// KeyType identifies a TLS secret.
type KeyType string

const (
	KeyTypeServerInitialSecret   KeyType = "server_initial_secret"
	KeyTypeClientInitialSecret   KeyType = "client_initial_secret"
	KeyTypeServerHandshakeSecret KeyType = "server_handshake_secret"
	KeyTypeClientHandshakeSecret KeyType = "client_handshake_secret"
	KeyTypeServer0RTTSecret      KeyType = "server_0rtt_secret"
	KeyTypeClient0RTTSecret      KeyType = "client_0rtt_secret"
	KeyTypeServer1RTTSecret      KeyType = "server_1rtt_secret"
	KeyTypeClient1RTTSecret      KeyType = "client_1rtt_secret"
)

// ECN is the ECN marking in the IP header.
type ECN string

const (
	ECNNotECT ECN = "Not-ECT"
	ECNECT1   ECN = "ECT(1)"
	ECNECT0   ECN = "ECT(0)"
	ECNCE     ECN = "CE"
)

// FrameType names a QUIC frame kind.
type FrameType string

const (
	FrameTypePadding            FrameType = "padding"
	FrameTypePing               FrameType = "ping"
	FrameTypeAck                FrameType = "ack"
	FrameTypeResetStream        FrameType = "reset_stream"
	FrameTypeStopSending        FrameType = "stop_sending"
	FrameTypeCrypto             FrameType = "crypto"
	FrameTypeNewToken           FrameType = "new_token"
	FrameTypeStream             FrameType = "stream"
	FrameTypeMaxData            FrameType = "max_data"
	FrameTypeMaxStreamData      FrameType = "max_stream_data"
	FrameTypeMaxStreams         FrameType = "max_streams"
	FrameTypeDataBlocked        FrameType = "data_blocked"
	FrameTypeStreamDataBlocked  FrameType = "stream_data_blocked"
	FrameTypeStreamsBlocked     FrameType = "streams_blocked"
	FrameTypeNewConnectionID    FrameType = "new_connection_id"
	FrameTypeRetireConnectionID FrameType = "retire_connection_id"
	FrameTypePathChallenge      FrameType = "path_challenge"
	FrameTypePathResponse       FrameType = "path_response"
	FrameTypeConnectionClose    FrameType = "connection_close"
	FrameTypeHandshakeDone      FrameType = "handshake_done"
	FrameTypeUnknown            FrameType = "unknown"
	FrameTypeDatagram           FrameType = "datagram"
)

// Frame is one variant of the closed QUIC frame union. Construct frames
// with the New*Frame functions so the frame_type discriminator is set.
type Frame interface {
	frameType() FrameType
}

// AckRange is a closed range of acknowledged packet numbers, serialized
// as [low, high] or [single].
type AckRange []uint64

// PaddingFrame stands in for a run of PADDING bytes; log one frame per
// packet with Raw.PayloadLength carrying the padded length.
type PaddingFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (PaddingFrame) frameType() FrameType { return FrameTypePadding }

// NewPaddingFrame creates a PADDING frame.
func NewPaddingFrame(raw *qlog.RawInfo) PaddingFrame {
	return PaddingFrame{FrameType: FrameTypePadding, Raw: raw}
}

// PingFrame is a PING frame.
type PingFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (PingFrame) frameType() FrameType { return FrameTypePing }

// NewPingFrame creates a PING frame.
func NewPingFrame(raw *qlog.RawInfo) PingFrame {
	return PingFrame{FrameType: FrameTypePing, Raw: raw}
}

// AckFrame is an ACK frame, with optional ECN counts.
type AckFrame struct {
	FrameType   FrameType     `json:"frame_type" cbor:"frame_type"`
	AckDelay    *float32      `json:"ack_delay,omitempty" cbor:"ack_delay,omitempty"`
	AckedRanges []AckRange    `json:"acked_ranges,omitempty" cbor:"acked_ranges,omitempty"`
	ECT1        *uint64       `json:"ect1,omitempty" cbor:"ect1,omitempty"`
	ECT0        *uint64       `json:"ect0,omitempty" cbor:"ect0,omitempty"`
	CE          *uint64       `json:"ce,omitempty" cbor:"ce,omitempty"`
	Raw         *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (AckFrame) frameType() FrameType { return FrameTypeAck }

// NewAckFrame creates an ACK frame for the given ranges.
func NewAckFrame(ackDelay *float32, ackedRanges []AckRange) AckFrame {
	return AckFrame{FrameType: FrameTypeAck, AckDelay: ackDelay, AckedRanges: ackedRanges}
}

// ResetStreamFrame is a RESET_STREAM frame.
type ResetStreamFrame struct {
	FrameType      FrameType     `json:"frame_type" cbor:"frame_type"`
	StreamID       uint64        `json:"stream_id" cbor:"stream_id"`
	ErrorCode      string        `json:"error_code" cbor:"error_code"`
	ErrorCodeBytes *uint64       `json:"error_code_bytes,omitempty" cbor:"error_code_bytes,omitempty"`
	FinalSize      uint64        `json:"final_size" cbor:"final_size"`
	Raw            *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (ResetStreamFrame) frameType() FrameType { return FrameTypeResetStream }

// NewResetStreamFrame creates a RESET_STREAM frame.
func NewResetStreamFrame(streamID, errorCode, finalSize uint64) ResetStreamFrame {
	return ResetStreamFrame{
		FrameType:      FrameTypeResetStream,
		StreamID:       streamID,
		ErrorCode:      "unknown",
		ErrorCodeBytes: &errorCode,
		FinalSize:      finalSize,
	}
}

// StopSendingFrame is a STOP_SENDING frame.
type StopSendingFrame struct {
	FrameType      FrameType     `json:"frame_type" cbor:"frame_type"`
	StreamID       uint64        `json:"stream_id" cbor:"stream_id"`
	ErrorCode      string        `json:"error_code" cbor:"error_code"`
	ErrorCodeBytes *uint64       `json:"error_code_bytes,omitempty" cbor:"error_code_bytes,omitempty"`
	Raw            *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (StopSendingFrame) frameType() FrameType { return FrameTypeStopSending }

// NewStopSendingFrame creates a STOP_SENDING frame.
func NewStopSendingFrame(streamID, errorCode uint64) StopSendingFrame {
	return StopSendingFrame{
		FrameType:      FrameTypeStopSending,
		StreamID:       streamID,
		ErrorCode:      "unknown",
		ErrorCodeBytes: &errorCode,
	}
}

// CryptoFrame is a CRYPTO frame.
type CryptoFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Offset    uint64        `json:"offset" cbor:"offset"`
	Length    uint64        `json:"length" cbor:"length"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (CryptoFrame) frameType() FrameType { return FrameTypeCrypto }

// NewCryptoFrame creates a CRYPTO frame.
func NewCryptoFrame(offset, length uint64) CryptoFrame {
	return CryptoFrame{FrameType: FrameTypeCrypto, Offset: offset, Length: length}
}

// NewTokenFrame is a NEW_TOKEN frame.
type NewTokenFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Token     Token         `json:"token" cbor:"token"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (NewTokenFrame) frameType() FrameType { return FrameTypeNewToken }

// NewNewTokenFrame creates a NEW_TOKEN frame.
func NewNewTokenFrame(token Token) NewTokenFrame {
	return NewTokenFrame{FrameType: FrameTypeNewToken, Token: token}
}

// StreamFrame is a STREAM frame. Offset and Length are always logged,
// with their defaults if absent from the wire image.
type StreamFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	StreamID  uint64        `json:"stream_id" cbor:"stream_id"`
	Offset    uint64        `json:"offset" cbor:"offset"`
	Length    uint64        `json:"length" cbor:"length"`
	Fin       bool          `json:"fin,omitempty" cbor:"fin,omitempty"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (StreamFrame) frameType() FrameType { return FrameTypeStream }

// NewStreamFrame creates a STREAM frame.
func NewStreamFrame(streamID, offset, length uint64, fin bool) StreamFrame {
	return StreamFrame{FrameType: FrameTypeStream, StreamID: streamID, Offset: offset, Length: length, Fin: fin}
}

// MaxDataFrame is a MAX_DATA frame.
type MaxDataFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Maximum   uint64        `json:"maximum" cbor:"maximum"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (MaxDataFrame) frameType() FrameType { return FrameTypeMaxData }

// NewMaxDataFrame creates a MAX_DATA frame.
func NewMaxDataFrame(maximum uint64) MaxDataFrame {
	return MaxDataFrame{FrameType: FrameTypeMaxData, Maximum: maximum}
}

// MaxStreamDataFrame is a MAX_STREAM_DATA frame.
type MaxStreamDataFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	StreamID  uint64        `json:"stream_id" cbor:"stream_id"`
	Maximum   uint64        `json:"maximum" cbor:"maximum"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (MaxStreamDataFrame) frameType() FrameType { return FrameTypeMaxStreamData }

// NewMaxStreamDataFrame creates a MAX_STREAM_DATA frame.
func NewMaxStreamDataFrame(streamID, maximum uint64) MaxStreamDataFrame {
	return MaxStreamDataFrame{FrameType: FrameTypeMaxStreamData, StreamID: streamID, Maximum: maximum}
}

// StreamDirection distinguishes unidirectional from bidirectional
// streams.
type StreamDirection string

const (
	StreamUnidirectional StreamDirection = "unidirectional"
	StreamBidirectional  StreamDirection = "bidirectional"
)

// MaxStreamsFrame is a MAX_STREAMS frame.
type MaxStreamsFrame struct {
	FrameType  FrameType       `json:"frame_type" cbor:"frame_type"`
	StreamType StreamDirection `json:"stream_type" cbor:"stream_type"`
	Maximum    uint64          `json:"maximum" cbor:"maximum"`
	Raw        *qlog.RawInfo   `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (MaxStreamsFrame) frameType() FrameType { return FrameTypeMaxStreams }

// NewMaxStreamsFrame creates a MAX_STREAMS frame.
func NewMaxStreamsFrame(streamType StreamDirection, maximum uint64) MaxStreamsFrame {
	return MaxStreamsFrame{FrameType: FrameTypeMaxStreams, StreamType: streamType, Maximum: maximum}
}

// DataBlockedFrame is a DATA_BLOCKED frame.
type DataBlockedFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Limit     uint64        `json:"limit" cbor:"limit"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (DataBlockedFrame) frameType() FrameType { return FrameTypeDataBlocked }

// NewDataBlockedFrame creates a DATA_BLOCKED frame.
func NewDataBlockedFrame(limit uint64) DataBlockedFrame {
	return DataBlockedFrame{FrameType: FrameTypeDataBlocked, Limit: limit}
}

// StreamDataBlockedFrame is a STREAM_DATA_BLOCKED frame.
type StreamDataBlockedFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	StreamID  uint64        `json:"stream_id" cbor:"stream_id"`
	Limit     uint64        `json:"limit" cbor:"limit"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (StreamDataBlockedFrame) frameType() FrameType { return FrameTypeStreamDataBlocked }

// NewStreamDataBlockedFrame creates a STREAM_DATA_BLOCKED frame.
func NewStreamDataBlockedFrame(streamID, limit uint64) StreamDataBlockedFrame {
	return StreamDataBlockedFrame{FrameType: FrameTypeStreamDataBlocked, StreamID: streamID, Limit: limit}
}

// StreamsBlockedFrame is a STREAMS_BLOCKED frame.
type StreamsBlockedFrame struct {
	FrameType  FrameType       `json:"frame_type" cbor:"frame_type"`
	StreamType StreamDirection `json:"stream_type" cbor:"stream_type"`
	Limit      uint64          `json:"limit" cbor:"limit"`
	Raw        *qlog.RawInfo   `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (StreamsBlockedFrame) frameType() FrameType { return FrameTypeStreamsBlocked }

// NewStreamsBlockedFrame creates a STREAMS_BLOCKED frame.
func NewStreamsBlockedFrame(streamType StreamDirection, limit uint64) StreamsBlockedFrame {
	return StreamsBlockedFrame{FrameType: FrameTypeStreamsBlocked, StreamType: streamType, Limit: limit}
}

// NewConnectionIDFrame is a NEW_CONNECTION_ID frame. ConnectionIDLength
// exists for cases where the full connection ID cannot be logged.
type NewConnectionIDFrame struct {
	FrameType           FrameType           `json:"frame_type" cbor:"frame_type"`
	SequenceNumber      uint32              `json:"sequence_number" cbor:"sequence_number"`
	RetirePriorTo       uint32              `json:"retire_prior_to" cbor:"retire_prior_to"`
	ConnectionIDLength  *uint8              `json:"connection_id_length,omitempty" cbor:"connection_id_length,omitempty"`
	ConnectionID        ConnectionID        `json:"connection_id" cbor:"connection_id"`
	StatelessResetToken StatelessResetToken `json:"stateless_reset_token,omitempty" cbor:"stateless_reset_token,omitempty"`
	Raw                 *qlog.RawInfo       `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (NewConnectionIDFrame) frameType() FrameType { return FrameTypeNewConnectionID }

// NewNewConnectionIDFrame creates a NEW_CONNECTION_ID frame.
func NewNewConnectionIDFrame(sequenceNumber, retirePriorTo uint32, connectionID ConnectionID) NewConnectionIDFrame {
	return NewConnectionIDFrame{
		FrameType:      FrameTypeNewConnectionID,
		SequenceNumber: sequenceNumber,
		RetirePriorTo:  retirePriorTo,
		ConnectionID:   connectionID,
	}
}

// RetireConnectionIDFrame is a RETIRE_CONNECTION_ID frame.
type RetireConnectionIDFrame struct {
	FrameType      FrameType     `json:"frame_type" cbor:"frame_type"`
	SequenceNumber uint32        `json:"sequence_number" cbor:"sequence_number"`
	Raw            *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (RetireConnectionIDFrame) frameType() FrameType { return FrameTypeRetireConnectionID }

// NewRetireConnectionIDFrame creates a RETIRE_CONNECTION_ID frame.
func NewRetireConnectionIDFrame(sequenceNumber uint32) RetireConnectionIDFrame {
	return RetireConnectionIDFrame{FrameType: FrameTypeRetireConnectionID, SequenceNumber: sequenceNumber}
}

// PathChallengeFrame is a PATH_CHALLENGE frame; Data is 64 bits of hex.
type PathChallengeFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Data      string        `json:"data,omitempty" cbor:"data,omitempty"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (PathChallengeFrame) frameType() FrameType { return FrameTypePathChallenge }

// NewPathChallengeFrame creates a PATH_CHALLENGE frame.
func NewPathChallengeFrame(data string) PathChallengeFrame {
	return PathChallengeFrame{FrameType: FrameTypePathChallenge, Data: data}
}

// PathResponseFrame is a PATH_RESPONSE frame; Data is 64 bits of hex.
type PathResponseFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Data      string        `json:"data,omitempty" cbor:"data,omitempty"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (PathResponseFrame) frameType() FrameType { return FrameTypePathResponse }

// NewPathResponseFrame creates a PATH_RESPONSE frame.
func NewPathResponseFrame(data string) PathResponseFrame {
	return PathResponseFrame{FrameType: FrameTypePathResponse, Data: data}
}

// ErrorSpace distinguishes transport-level from application-level error
// codes.
type ErrorSpace string

const (
	ErrorSpaceTransport   ErrorSpace = "transport"
	ErrorSpaceApplication ErrorSpace = "application"
)

// ConnectionCloseFrame is a CONNECTION_CLOSE frame.
type ConnectionCloseFrame struct {
	FrameType        FrameType     `json:"frame_type" cbor:"frame_type"`
	ErrorSpace       ErrorSpace    `json:"error_space,omitempty" cbor:"error_space,omitempty"`
	ErrorCode        string        `json:"error_code,omitempty" cbor:"error_code,omitempty"`
	ErrorCodeBytes   *uint64       `json:"error_code_bytes,omitempty" cbor:"error_code_bytes,omitempty"`
	Reason           string        `json:"reason,omitempty" cbor:"reason,omitempty"`
	ReasonBytes      string        `json:"reason_bytes,omitempty" cbor:"reason_bytes,omitempty"`
	TriggerFrameType string        `json:"trigger_frame_type,omitempty" cbor:"trigger_frame_type,omitempty"`
	Raw              *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (ConnectionCloseFrame) frameType() FrameType { return FrameTypeConnectionClose }

// NewConnectionCloseFrame creates a CONNECTION_CLOSE frame.
func NewConnectionCloseFrame(space ErrorSpace, errorCode string, reason string) ConnectionCloseFrame {
	return ConnectionCloseFrame{
		FrameType:  FrameTypeConnectionClose,
		ErrorSpace: space,
		ErrorCode:  errorCode,
		Reason:     reason,
	}
}

// HandshakeDoneFrame is a HANDSHAKE_DONE frame.
type HandshakeDoneFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (HandshakeDoneFrame) frameType() FrameType { return FrameTypeHandshakeDone }

// NewHandshakeDoneFrame creates a HANDSHAKE_DONE frame.
func NewHandshakeDoneFrame() HandshakeDoneFrame {
	return HandshakeDoneFrame{FrameType: FrameTypeHandshakeDone}
}

// UnknownFrame captures a frame whose type could not be decoded.
type UnknownFrame struct {
	FrameType      FrameType     `json:"frame_type" cbor:"frame_type"`
	FrameTypeBytes uint64        `json:"frame_type_bytes" cbor:"frame_type_bytes"`
	Raw            *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (UnknownFrame) frameType() FrameType { return FrameTypeUnknown }

// NewUnknownFrame creates a frame record for an undecodable frame.
func NewUnknownFrame(frameTypeBytes uint64, raw *qlog.RawInfo) UnknownFrame {
	return UnknownFrame{FrameType: FrameTypeUnknown, FrameTypeBytes: frameTypeBytes, Raw: raw}
}

// DatagramFrame is a DATAGRAM frame (RFC 9221).
type DatagramFrame struct {
	FrameType FrameType     `json:"frame_type" cbor:"frame_type"`
	Length    *uint64       `json:"length,omitempty" cbor:"length,omitempty"`
	Raw       *qlog.RawInfo `json:"raw,omitempty" cbor:"raw,omitempty"`
}

func (DatagramFrame) frameType() FrameType { return FrameTypeDatagram }

// NewDatagramFrame creates a DATAGRAM frame.
func NewDatagramFrame(length *uint64) DatagramFrame {
	return DatagramFrame{FrameType: FrameTypeDatagram, Length: length}
}

// TransportError is a QUIC transport error code name (RFC 9000 §20.1).
type TransportError string

const (
	TransportNoError                TransportError = "no_error"
	TransportInternalError          TransportError = "internal_error"
	TransportConnectionRefused      TransportError = "connection_refused"
	TransportFlowControlError       TransportError = "flow_control_error"
	TransportStreamLimitError       TransportError = "stream_limit_error"
	TransportStreamStateError       TransportError = "stream_state_error"
	TransportFinalSizeError         TransportError = "final_size_error"
	TransportFrameEncodingError     TransportError = "frame_encoding_error"
	TransportParameterError         TransportError = "transport_parameter_error"
	TransportConnectionIDLimitError TransportError = "connection_id_limit_error"
	TransportProtocolViolation      TransportError = "protocol_violation"
	TransportInvalidToken           TransportError = "invalid_token"
	TransportApplicationError       TransportError = "application_error"
	TransportCryptoBufferExceeded   TransportError = "crypto_buffer_exceeded"
	TransportKeyUpdateError         TransportError = "key_update_error"
	TransportAeadLimitReached       TransportError = "aead_limit_reached"
	TransportNoViablePath           TransportError = "no_viable_path"
	TransportUnknown                TransportError = "unknown"
)

// ConnectionState is a base or granular connection state.
type ConnectionState string

const (
	// Base states.
	ConnectionStateAttempted         ConnectionState = "attempted"
	ConnectionStateHandshakeStarted  ConnectionState = "handshake_started"
	ConnectionStateHandshakeComplete ConnectionState = "handshake_complete"
	ConnectionStateClosed            ConnectionState = "closed"

	// Granular states.
	ConnectionStatePeerValidated      ConnectionState = "peer_validated"
	ConnectionStateEarlyWrite         ConnectionState = "early_write"
	ConnectionStateHandshakeConfirmed ConnectionState = "handshake_confirmed"
	ConnectionStateClosing            ConnectionState = "closing"
	ConnectionStateDraining           ConnectionState = "draining"
)

// StreamState is a base or granular stream state.
type StreamState string

const (
	// Base states.
	StreamStateIdle   StreamState = "idle"
	StreamStateOpen   StreamState = "open"
	StreamStateClosed StreamState = "closed"

	// Granular states, RFC 9000 §3.
	StreamStateHalfClosedLocal  StreamState = "half_closed_local"
	StreamStateHalfClosedRemote StreamState = "half_closed_remote"
	StreamStateReady            StreamState = "ready"
	StreamStateSend             StreamState = "send"
	StreamStateDataSent         StreamState = "data_sent"
	StreamStateResetSent        StreamState = "reset_sent"
	StreamStateResetReceived    StreamState = "reset_received"
	StreamStateReceive          StreamState = "receive"
	StreamStateSizeKnown        StreamState = "size_known"
	StreamStateDataRead         StreamState = "data_read"
	StreamStateResetRead        StreamState = "reset_read"
	StreamStateDataReceived     StreamState = "data_received"
	StreamStateDestroyed        StreamState = "destroyed"
)

// StreamSide says which half of a stream a state change applies to.
type StreamSide string

const (
	StreamSideSending   StreamSide = "sending"
	StreamSideReceiving StreamSide = "receiving"
)

// AlpnIdentifier carries an ALPN value in byte and/or string form.
type AlpnIdentifier struct {
	ByteValue   string `json:"byte_value,omitempty" cbor:"byte_value,omitempty"`
	StringValue string `json:"string_value,omitempty" cbor:"string_value,omitempty"`
}

// PreferredAddress is the preferred_address transport parameter.
type PreferredAddress struct {
	IPv4                IPAddress           `json:"ip_v4,omitempty" cbor:"ip_v4,omitempty"`
	PortV4              *uint16             `json:"port_v4,omitempty" cbor:"port_v4,omitempty"`
	IPv6                IPAddress           `json:"ip_v6,omitempty" cbor:"ip_v6,omitempty"`
	PortV6              *uint16             `json:"port_v6,omitempty" cbor:"port_v6,omitempty"`
	ConnectionID        ConnectionID        `json:"connection_id" cbor:"connection_id"`
	StatelessResetToken StatelessResetToken `json:"stateless_reset_token" cbor:"stateless_reset_token"`
}

// UnknownParameter is a transport parameter this stack does not know.
type UnknownParameter struct {
	ID    uint64 `json:"id" cbor:"id"`
	Value string `json:"value,omitempty" cbor:"value,omitempty"`
}

// ConnectionCloseTrigger says why a connection closed.
type ConnectionCloseTrigger string

const (
	CloseTriggerIdleTimeout     ConnectionCloseTrigger = "idle_timeout"
	CloseTriggerApplication     ConnectionCloseTrigger = "application"
	CloseTriggerError           ConnectionCloseTrigger = "error"
	CloseTriggerVersionMismatch ConnectionCloseTrigger = "version_mismatch"
	CloseTriggerStatelessReset  ConnectionCloseTrigger = "stateless_reset"
	CloseTriggerAborted         ConnectionCloseTrigger = "aborted"
	CloseTriggerUnspecified     ConnectionCloseTrigger = "unspecified"
)

// PacketSentTrigger says why a packet was sent outside the normal flow.
type PacketSentTrigger string

const (
	SentTriggerRetransmitReordered PacketSentTrigger = "retransmit_reordered"
	SentTriggerRetransmitTimeout   PacketSentTrigger = "retransmit_timeout"
	SentTriggerPtoProbe            PacketSentTrigger = "pto_probe"
	SentTriggerRetransmitCrypto    PacketSentTrigger = "retransmit_crypto"
	SentTriggerCcBandwidthProbe    PacketSentTrigger = "cc_bandwidth_probe"
)

// PacketReceivedTrigger says why a packet became processable.
type PacketReceivedTrigger string

// ReceivedTriggerKeysAvailable: the packet was buffered until its keys
// became available.
const ReceivedTriggerKeysAvailable PacketReceivedTrigger = "keys_available"

// PacketDroppedTrigger says why a packet was dropped.
type PacketDroppedTrigger string

const (
	DropTriggerInternalError     PacketDroppedTrigger = "internal_error"
	DropTriggerRejected          PacketDroppedTrigger = "rejected"
	DropTriggerUnsupported       PacketDroppedTrigger = "unsupported"
	DropTriggerInvalid           PacketDroppedTrigger = "invalid"
	DropTriggerDuplicate         PacketDroppedTrigger = "duplicate"
	DropTriggerConnectionUnknown PacketDroppedTrigger = "connection_unknown"
	DropTriggerDecryptionFailure PacketDroppedTrigger = "decryption_failure"
	DropTriggerKeyUnavailable    PacketDroppedTrigger = "key_unavailable"
	DropTriggerGeneral           PacketDroppedTrigger = "general"
)

// PacketBufferedTrigger says why a packet was buffered.
type PacketBufferedTrigger string

const (
	BufferedTriggerBackpressure    PacketBufferedTrigger = "backpressure"
	BufferedTriggerKeysUnavailable PacketBufferedTrigger = "keys_unavailable"
)

// KeyTrigger says what prompted a key update or discard.
type KeyTrigger string

const (
	KeyTriggerTLS          KeyTrigger = "tls"
	KeyTriggerRemoteUpdate KeyTrigger = "remote_update"
	KeyTriggerLocalUpdate  KeyTrigger = "local_update"
)

// PacketLostTrigger says which loss-detection rule fired.
type PacketLostTrigger string

const (
	LostTriggerReorderingThreshold PacketLostTrigger = "reordering_threshold"
	LostTriggerTimeThreshold       PacketLostTrigger = "time_threshold"
	LostTriggerPtoExpired          PacketLostTrigger = "pto_expired"
)

// TimerType is the loss-recovery timer mode (RFC 9002 A.9).
type TimerType string

const (
	TimerTypeAck TimerType = "ack"
	TimerTypePto TimerType = "pto"
)

// TimerEventType is what happened to a loss-recovery timer.
type TimerEventType string

const (
	TimerEventSet       TimerEventType = "set"
	TimerEventExpired   TimerEventType = "expired"
	TimerEventCancelled TimerEventType = "cancelled"
)

// ECNState is a stage of the ECN validation state machine.
type ECNState string

const (
	// ECNStateTesting: ECN testing in progress.
	ECNStateTesting ECNState = "testing"
	// ECNStateUnknown: waiting for acknowledgments of testing packets.
	ECNStateUnknown ECNState = "unknown"
	// ECNStateFailed: ECN testing failed.
	ECNStateFailed ECNState = "failed"
	// ECNStateCapable: packets are now sent with ECT(0) marking.
	ECNStateCapable ECNState = "capable"
)
