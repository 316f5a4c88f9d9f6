package quic

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

func TestEventIdentity(t *testing.T) {
	tests := []struct {
		data qlog.EventData
		want string
	}{
		{ServerListening{}, "quic-10:server_listening"},
		{ConnectionStarted{}, "quic-10:connection_started"},
		{ConnectionClosed{}, "quic-10:connection_closed"},
		{ConnectionStateUpdated{New: ConnectionStateAttempted}, "quic-10:connection_state_updated"},
		{VersionInformation{}, "quic-10:version_information"},
		{ParametersSet{}, "quic-10:parameters_set"},
		{PacketSent{}, "quic-10:packet_sent"},
		{PacketReceived{}, "quic-10:packet_received"},
		{PacketDropped{}, "quic-10:packet_dropped"},
		{PacketsAcked{}, "quic-10:packets_acked"},
		{StreamStateUpdated{New: StreamStateOpen}, "quic-10:stream_state_updated"},
		{KeyUpdated{KeyType: KeyTypeClient1RTTSecret}, "quic-10:key_updated"},
		{RecoveryMetricsUpdated{}, "quic-10:recovery_metrics_updated"},
		{PacketLost{}, "quic-10:packet_lost"},
		{ECNStateUpdated{New: ECNStateCapable}, "quic-10:ecn_state_updated"},
	}
	for _, tt := range tests {
		ev := qlog.NewEvent(tt.data)
		assert.Equal(t, tt.want, ev.Name)
		assert.Equal(t, Schema, ev.Category())
	}
}

func TestFrameConstructorsSetDiscriminator(t *testing.T) {
	delay := float32(12.5)
	length := uint64(1200)
	tests := []struct {
		frame Frame
		want  FrameType
	}{
		{NewPaddingFrame(nil), FrameTypePadding},
		{NewPingFrame(nil), FrameTypePing},
		{NewAckFrame(&delay, []AckRange{{0, 5}, {7}}), FrameTypeAck},
		{NewResetStreamFrame(4, 1, 1000), FrameTypeResetStream},
		{NewStopSendingFrame(4, 1), FrameTypeStopSending},
		{NewCryptoFrame(0, 300), FrameTypeCrypto},
		{NewNewTokenFrame(Token{Type: TokenTypeResumption}), FrameTypeNewToken},
		{NewStreamFrame(4, 0, 100, true), FrameTypeStream},
		{NewMaxDataFrame(1 << 20), FrameTypeMaxData},
		{NewMaxStreamDataFrame(4, 1<<16), FrameTypeMaxStreamData},
		{NewMaxStreamsFrame(StreamBidirectional, 100), FrameTypeMaxStreams},
		{NewDataBlockedFrame(1 << 20), FrameTypeDataBlocked},
		{NewStreamDataBlockedFrame(4, 1<<16), FrameTypeStreamDataBlocked},
		{NewStreamsBlockedFrame(StreamUnidirectional, 10), FrameTypeStreamsBlocked},
		{NewNewConnectionIDFrame(2, 1, "AABB"), FrameTypeNewConnectionID},
		{NewRetireConnectionIDFrame(1), FrameTypeRetireConnectionID},
		{NewPathChallengeFrame("0011223344556677"), FrameTypePathChallenge},
		{NewPathResponseFrame("0011223344556677"), FrameTypePathResponse},
		{NewConnectionCloseFrame(ErrorSpaceTransport, string(TransportNoError), "bye"), FrameTypeConnectionClose},
		{NewHandshakeDoneFrame(), FrameTypeHandshakeDone},
		{NewUnknownFrame(0x1f, nil), FrameTypeUnknown},
		{NewDatagramFrame(&length), FrameTypeDatagram},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.frame.frameType())
	}
}

func TestPacketEventRoundTrip(t *testing.T) {
	sink := &bufferCloser{}
	w, err := qlog.New(qlog.Config{Sink: sink})
	require.NoError(t, err)

	details, err := qlog.NewFileDetails(qlog.SerializationJSONSEQ, "quic trace", "", []string{EventSchema})
	require.NoError(t, err)
	w.LogFileDetails(details, qlog.TraceSeq{
		VantagePoint: &qlog.VantagePoint{Type: qlog.VantagePointClient},
	})

	pn := uint64(0)
	w.LogEvent(qlog.NewEvent(PacketSent{
		Header: PacketHeader{
			PacketType:   PacketTypeInitial,
			PacketNumber: &pn,
			Version:      "00000001",
			SCID:         "C0FFEE",
			DCID:         "DECAFBAD",
		},
		Frames: []Frame{
			NewCryptoFrame(0, 289),
			NewPaddingFrame(&qlog.RawInfo{}),
		},
	}).WithGroupID("conn-1"))
	require.NoError(t, w.Close())

	r := qlog.NewStreamReader(bytes.NewReader(sink.Bytes()))
	header, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, header.Header)

	rec, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, rec.Event)
	assert.Equal(t, "quic-10:packet_sent", rec.Event.Name)
	assert.Equal(t, "conn-1", rec.Event.GroupID)

	hdr, ok := rec.Event.Data["header"].(map[string]any)
	require.True(t, ok, "header payload missing")
	assert.Equal(t, "initial", hdr["packet_type"])
	assert.Equal(t, "DECAFBAD", hdr["dcid"])

	frames, ok := rec.Event.Data["frames"].([]any)
	require.True(t, ok, "frames payload missing")
	require.Len(t, frames, 2)
	first := frames[0].(map[string]any)
	assert.Equal(t, "crypto", first["frame_type"])
	assert.Equal(t, float64(289), first["length"])

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestRecoveryMetricsOmitUnchanged(t *testing.T) {
	latest := float32(23.5)
	ev := qlog.NewEvent(RecoveryMetricsUpdated{LatestRTT: &latest})

	sink := &bufferCloser{}
	w, err := qlog.New(qlog.Config{Sink: sink})
	require.NoError(t, err)
	details, err := qlog.NewFileDetails(qlog.SerializationJSONSEQ, "", "", []string{EventSchema})
	require.NoError(t, err)
	w.LogFileDetails(details, qlog.TraceSeq{})
	w.LogEvent(ev)
	require.NoError(t, w.Close())

	r := qlog.NewStreamReader(bytes.NewReader(sink.Bytes()))
	_, err = r.Next() // header
	require.NoError(t, err)
	rec, err := r.Next()
	require.NoError(t, err)

	assert.Contains(t, rec.Event.Data, "latest_rtt")
	assert.NotContains(t, rec.Event.Data, "smoothed_rtt")
	assert.NotContains(t, rec.Event.Data, "congestion_window")
}

// bufferCloser is an in-memory WriteCloser.
type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error { return nil }
