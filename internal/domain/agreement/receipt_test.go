//go:build unit

package agreement_test

import (
	"testing"

	"toolrental-service/internal/domain/agreement"

	"github.com/stretchr/testify/assert"
)

func TestEncodeReceiptID(t *testing.T) {
	tests := []struct {
		name            string
		timestampMillis int64
		storeID         int
		terminalID      int
		want            string
	}{
		{
			name:            "reference encoding",
			timestampMillis: 1711154921145,
			storeID:         44027,
			terminalID:      371,
			want:            "LU3DGJAX-XYZAB",
		},
		{
			name:            "small ids are zero padded",
			timestampMillis: 1711154921145,
			storeID:         1,
			terminalID:      1,
			want:            "LU3DGJAX-00101",
		},
		{
			name:            "zero values",
			timestampMillis: 0,
			storeID:         0,
			terminalID:      0,
			want:            "0-00000",
		},
		{
			name:            "single base36 digit ids",
			timestampMillis: 35,
			storeID:         35,
			terminalID:      35,
			want:            "Z-00Z0Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agreement.EncodeReceiptID(tt.timestampMillis, tt.storeID, tt.terminalID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeReceiptID_Deterministic(t *testing.T) {
	first := agreement.EncodeReceiptID(1711154921145, 44027, 371)
	second := agreement.EncodeReceiptID(1711154921145, 44027, 371)
	assert.Equal(t, first, second)
}
