package parsers_test

import (
	"testing"

	"trace-analytics/internal/models"
	"trace-analytics/internal/parsers"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []models.Family
	}{
		{
			name: "block error",
			line: "RNTI 5 TBLER 0.10 SINR 10 DL size 300 should be 9 mcs 7 corrupted 0",
			want: []models.Family{models.FamilyBlockError},
		},
		{
			name: "byte count",
			line: "The number of DL received bytes for UE 3: 128",
			want: []models.Family{models.FamilyByteCount},
		},
		{
			name: "beam gain",
			line: "BF Gain TxId 1 RxId 2 TxBeam 0 RxBeam 3 g= 0.5",
			want: []models.Family{models.FamilyBeamGain},
		},
		{
			name: "two families on one line",
			line: "The number of DL received bytes for UE 3: 128 RNTI 3 TBLER 0.2 SINR 4 DL size 400 mcs 3",
			want: []models.Family{models.FamilyByteCount, models.FamilyBlockError},
		},
		{
			name: "unrelated line",
			line: "+0.000123s 1 LteEnbRrc:ConnectionRequestTimeout(): timeout",
			want: nil,
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parsers.Classify(tt.line))
		})
	}
}
