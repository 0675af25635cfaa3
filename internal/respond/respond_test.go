package respond

import (
	"encoding/json"
	"testing"
)

func TestEncodeRecords_ProducesJSONStrings(t *testing.T) {
	type rec struct {
		GUID string `json:"guid"`
	}

	data, err := EncodeRecords([]rec{{GUID: "a"}, {GUID: "b"}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(data))
	}
	if data[0] != `{"guid":"a"}` {
		t.Fatalf("unexpected element %q", data[0])
	}

	// The envelope as a whole keeps data elements as strings on the wire.
	b, err := json.Marshal(Envelope{Success: SuccessTrue, Message: "ok", Data: data, StatusCode: 200})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	var round struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(b, &round); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if round.Data[1] != `{"guid":"b"}` {
		t.Fatalf("unexpected wire element %q", round.Data[1])
	}
}

func TestEncodeRecords_EmptyIsNotNil(t *testing.T) {
	data, err := EncodeRecords([]struct{}{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if data == nil || len(data) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", data)
	}
}
