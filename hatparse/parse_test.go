package hatparse

import (
	"testing"

	"github.com/coregx/sigscan"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    sigscan.Signature
		wantErr bool
	}{
		{
			name:  "all concrete",
			input: "48 8B 05",
			want:  sigscan.Signature{sigscan.Byte(0x48), sigscan.Byte(0x8B), sigscan.Byte(0x05)},
		},
		{
			name:  "double-question wildcard",
			input: "48 ?? 05",
			want:  sigscan.Signature{sigscan.Byte(0x48), sigscan.Wildcard(), sigscan.Byte(0x05)},
		},
		{
			name:  "single-question wildcard shorthand",
			input: "48 ? 05",
			want:  sigscan.Signature{sigscan.Byte(0x48), sigscan.Wildcard(), sigscan.Byte(0x05)},
		},
		{
			name:  "extra whitespace is ignored",
			input: "  48   8B  ",
			want:  sigscan.Signature{sigscan.Byte(0x48), sigscan.Byte(0x8B)},
		},
		{
			name:  "lowercase hex",
			input: "de ad be ef",
			want:  sigscan.Signature{sigscan.Byte(0xDE), sigscan.Byte(0xAD), sigscan.Byte(0xBE), sigscan.Byte(0xEF)},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "odd nibble count",
			input:   "4",
			wantErr: true,
		},
		{
			name:    "non-hex token",
			input:   "ZZ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				var pe *ParseError
				if _, ok := err.(*ParseError); !ok {
					_ = pe
					t.Errorf("error type = %T, want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got.String(), tt.want.String())
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("ZZ")
	if err == nil {
		t.Fatalf("expected error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Token != "ZZ" {
		t.Errorf("pe.Token = %q, want %q", pe.Token, "ZZ")
	}
	if pe.Offset != 0 {
		t.Errorf("pe.Offset = %d, want 0", pe.Offset)
	}
}
