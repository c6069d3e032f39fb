package api

import "encoding/json"

// Error metadata keys attached to failed calls. They carry the ledger error
// kind and the identifier it concerns.
const (
	ErrorKindHeader = "Ledger-Error-Kind"
	ErrorIDHeader   = "Ledger-Error-Id"
)

// JSONCodec encodes messages with encoding/json. Register it on both the
// handler and the client with connect.WithCodec; it replaces Connect's default
// "json" codec, which only accepts protobuf messages.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal treats an empty body as an empty message.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
