package trainerrpc

import "encoding/json"

// Codec is the JSON message codec both ends of the trainer service agree on.
// It satisfies google.golang.org/grpc/encoding.Codec; the client forces it
// through grpc.ForceCodec and a test or backend server through
// grpc.ForceServerCodec.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string { return "json" }
