package qlog

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// JSON Text Sequence framing bytes (RFC 7464).
const (
	recordSeparator = 0x1E
	lineFeed        = 0x0A
)

// seqEncMode is the CBOR encoder mode for cbor-seq records.
// Deterministic encoding so identical records produce identical bytes.
var seqEncMode cbor.EncMode

// seqDecMode is the CBOR decoder mode for cbor-seq records.
var seqDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	seqEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create qlog CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		DefaultMapType:    reflect.TypeOf(map[string]any(nil)),
	}
	seqDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create qlog CBOR decoder mode: %v", err))
	}
}

// encodeRecord serializes one record (header or event) into its framed
// on-disk form. JSON-seq records are RS + JSON text + LF; CBOR-seq records
// are bare CBOR items, which self-delimit. Serialization failures are
// returned as-is for the caller to classify.
func encodeRecord(serialization Serialization, record any) ([]byte, error) {
	switch serialization {
	case SerializationCBORSEQ:
		return seqEncMode.Marshal(record)
	default:
		body, err := json.Marshal(record)
		if err != nil {
			return nil, err
		}
		framed := make([]byte, 0, len(body)+2)
		framed = append(framed, recordSeparator)
		framed = append(framed, body...)
		framed = append(framed, lineFeed)
		return framed, nil
	}
}
