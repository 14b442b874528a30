// Package rpc holds the fir.v1 wire messages and service descriptor. Messages are
// encoded by hand with protowire and are byte-compatible with api/fir/v1/fir.proto.
package rpc

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every request and response type.
type Message interface {
	MarshalWire() []byte
	UnmarshalWire(b []byte) error
}

// Codec is a grpc encoding.Codec for Message values.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("rpc: cannot marshal %T", v)
	}
	return m.MarshalWire(), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("rpc: cannot unmarshal into %T", v)
	}
	return m.UnmarshalWire(data)
}

// content-subtype stays "proto" so grpc-web clients built from the .proto file interoperate
func (Codec) Name() string { return "proto" }

type enc []byte

func (e *enc) str(num protowire.Number, v string) {
	if v == "" {
		return
	}
	*e = protowire.AppendTag(*e, num, protowire.BytesType)
	*e = protowire.AppendString(*e, v)
}

// strs writes every element, empty ones included, to keep repeated positions.
func (e *enc) strs(num protowire.Number, vs []string) {
	for _, v := range vs {
		*e = protowire.AppendTag(*e, num, protowire.BytesType)
		*e = protowire.AppendString(*e, v)
	}
}

func (e *enc) bytes(num protowire.Number, v []byte) {
	if len(v) == 0 {
		return
	}
	*e = protowire.AppendTag(*e, num, protowire.BytesType)
	*e = protowire.AppendBytes(*e, v)
}

func (e *enc) boolean(num protowire.Number, v bool) {
	if !v {
		return
	}
	*e = protowire.AppendTag(*e, num, protowire.VarintType)
	*e = protowire.AppendVarint(*e, protowire.EncodeBool(v))
}

func (e *enc) msg(num protowire.Number, m Message) {
	*e = protowire.AppendTag(*e, num, protowire.BytesType)
	*e = protowire.AppendBytes(*e, m.MarshalWire())
}

// google.protobuf.Timestamp: 1 seconds, 2 nanos
func (e *enc) time(num protowire.Number, t time.Time) {
	if t.IsZero() {
		return
	}
	var ts []byte
	ts = protowire.AppendTag(ts, 1, protowire.VarintType)
	ts = protowire.AppendVarint(ts, uint64(t.Unix()))
	if n := t.Nanosecond(); n != 0 {
		ts = protowire.AppendTag(ts, 2, protowire.VarintType)
		ts = protowire.AppendVarint(ts, uint64(n))
	}
	*e = protowire.AppendTag(*e, num, protowire.BytesType)
	*e = protowire.AppendBytes(*e, ts)
}

// field consumes one value of a known field and returns the bytes used;
// 0 marks the field as unknown, a negative value is a protowire error code.
type field func(num protowire.Number, typ protowire.Type, b []byte) int

func decode(b []byte, f field) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		m := f(num, typ, b)
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return protowire.ParseError(m)
		}
		b = b[m:]
	}
	return nil
}

func readString(typ protowire.Type, b []byte, dst *string) int {
	if typ != protowire.BytesType {
		return 0
	}
	v, n := protowire.ConsumeBytes(b)
	if n >= 0 {
		*dst = string(v)
	}
	return n
}

func appendString(typ protowire.Type, b []byte, dst *[]string) int {
	var s string
	n := readString(typ, b, &s)
	if n > 0 {
		*dst = append(*dst, s)
	}
	return n
}

func readBytes(typ protowire.Type, b []byte, dst *[]byte) int {
	if typ != protowire.BytesType {
		return 0
	}
	v, n := protowire.ConsumeBytes(b)
	if n >= 0 {
		*dst = append([]byte(nil), v...)
	}
	return n
}

func readBool(typ protowire.Type, b []byte, dst *bool) int {
	if typ != protowire.VarintType {
		return 0
	}
	v, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*dst = protowire.DecodeBool(v)
	}
	return n
}

func readMsg(typ protowire.Type, b []byte, m Message) int {
	if typ != protowire.BytesType {
		return 0
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n
	}
	if err := m.UnmarshalWire(v); err != nil {
		return -1
	}
	return n
}

func readTime(typ protowire.Type, b []byte, dst *time.Time) int {
	if typ != protowire.BytesType {
		return 0
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n
	}
	var sec, nsec int64
	err := decode(v, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if typ != protowire.VarintType {
			return 0
		}
		x, m := protowire.ConsumeVarint(b)
		switch num {
		case 1:
			sec = int64(x)
		case 2:
			nsec = int64(x)
		default:
			return 0
		}
		return m
	})
	if err != nil {
		return -1
	}
	*dst = time.Unix(sec, nsec).UTC()
	return n
}
