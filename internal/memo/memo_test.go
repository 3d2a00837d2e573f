package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "DEEPFAKERECEIPT:abc123", Format("abc123"))
	assert.Equal(t, "DEEPFAKERECEIPT:", Format(""))
}

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		memo    string
		want    string
		wantErr error
	}{
		{
			name: "receipt memo",
			memo: "DEEPFAKERECEIPT:abc123",
			want: "abc123",
		},
		{
			name: "takes text after last colon",
			memo: "a:b:c",
			want: "c",
		},
		{
			name: "empty hash",
			memo: "DEEPFAKERECEIPT:",
			want: "",
		},
		{
			name:    "no colon",
			memo:    "INVALID_FORMAT_NO_COLON",
			wantErr: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hash(tt.memo)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgramID(t *testing.T) {
	assert.Equal(t, "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr", ProgramID.String())
}
