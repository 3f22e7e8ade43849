package save

import (
	"errors"
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	entries := []string{"about", "history -1", "  Conway   play ", "diff a Kitten"}

	data, err := Encode(entries)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("round trip = %q, want %q", got, entries)
	}
}

func TestEncodeNil(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Encode(nil) = %s, want []", data)
	}
}

func TestDecodeNull(t *testing.T) {
	got, err := Decode([]byte("null"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Decode(null) = %#v, want empty slice", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", `["about", "sk`},
		{"object", `{"history": ["about"]}`},
		{"numbers", `[1, 2, 3]`},
		{"garbage", `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); err == nil {
				t.Errorf("expected error decoding %q", tt.data)
			}
		})
	}

	if _, err := Decode(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Decode(nil) error = %v, want ErrEmpty", err)
	}
}
