package server

import (
	"connectrpc.com/connect"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonCodec replaces connect's protojson codec so plain Go structs can be
// used as request and response messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// CodecOption is shared by handlers and clients.
func CodecOption() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
