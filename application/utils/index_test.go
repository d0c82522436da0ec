package utils

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecodeBase64Image(t *testing.T) {
	raw := []byte("jpeg-bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{
			name:  "plain base64",
			input: encoded,
			want:  raw,
		},
		{
			name:  "data url prefix is stripped",
			input: "data:image/jpeg;base64," + encoded,
			want:  raw,
		},
		{
			name:    "empty payload",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not base64",
			input:   "!!not base64!!",
			wantErr: true,
		},
		{
			name:    "data url with empty body",
			input:   "data:image/jpeg;base64,",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64Image(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("DecodeBase64Image() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "email address",
			input: "user@example.com",
			want:  "user_example.com",
		},
		{
			name:  "path traversal attempt",
			input: "../../etc/passwd",
			want:  ".._.._etc_passwd",
		},
		{
			name:  "already safe",
			input: "open_frame-1.jpg",
			want:  "open_frame-1.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
