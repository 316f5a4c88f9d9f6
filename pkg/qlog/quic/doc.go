// Package quic contributes the QUIC event catalog to the qlog event
// union: connectivity, transport, security and recovery events, with the
// packet header and frame shapes they reference.
//
// Event payloads are plain structs wrapped at the call site:
//
//	w.LogEvent(qlog.NewEvent(quic.PacketSent{
//	    Header: quic.PacketHeader{PacketType: quic.PacketTypeInitial},
//	    Frames: []quic.Frame{quic.NewPingFrame(nil)},
//	}))
//
// The set of payload variants is closed within this package.
package quic
