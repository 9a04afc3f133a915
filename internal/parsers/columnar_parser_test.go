package parsers_test

import (
	"strings"
	"testing"

	"trace-analytics/internal/models"
	"trace-analytics/internal/parsers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rxRow(cols ...string) string {
	return strings.Join(cols, "\t")
}

func TestRxTraceParser_Parse(t *testing.T) {
	t.Parallel()

	p := parsers.NewRxTraceParser()
	assert.Equal(t, 1, p.HeaderLines())

	line := rxRow("DL", "0.001", "12", "3", "1", "4", "0", "7", "1", "812", "16", "0", "17.4", "0", "0.013", "1", "0")
	records, err := p.Parse(line)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, &models.BlockErrorReport{
		Direction:      models.DirectionDL,
		UserID:         7,
		TBLER:          0.013,
		SINRdB:         17.4,
		CorruptedBytes: 0,
		AchievedMCS:    16,
		TransferSize:   812,
	}, records[0])
}

func TestRxTraceParser_CorruptedCount(t *testing.T) {
	t.Parallel()

	p := parsers.NewRxTraceParser()

	records, err := p.Parse(rxRow("UL", "0.001", "12", "3", "1", "4", "0", "7", "1", "5000000000", "16", "0", "4.2", "1", "0.4"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	report := records[0].(*models.BlockErrorReport)
	assert.Equal(t, int64(1), report.CorruptedBytes)
	assert.Equal(t, int64(5000000000), report.TransferSize)
	assert.False(t, report.IsMCSAnomaly(), "rows without a requested MCS never flag an anomaly")

	_, err = p.Parse(rxRow("UL", "0.001", "12", "3", "1", "4", "0", "7", "1", "500", "16", "0", "4.2", "0.5", "0.4"))
	var parseErr *parsers.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "corrupted", parseErr.Field)
	assert.Equal(t, "0.5", parseErr.Raw)
}

func TestParseRxTraceRow_Layer(t *testing.T) {
	t.Parallel()

	ul := rxRow("UL", "0.001", "12", "3", "10", "3", "0", "2", "1", "300", "5", "0", "3.1", "0", "0.2", "0", "1")
	row, err := parsers.ParseRxTraceRow(ul)
	require.NoError(t, err)
	assert.Equal(t, models.DirectionUL, row.Direction)
	assert.Equal(t, 12, row.Frame)
	assert.Equal(t, 3, row.Subframe)
	assert.Equal(t, 10, row.StartSymbol)
	assert.Equal(t, 3, row.NumSymbols)
	assert.Equal(t, 1, row.Layer)

	short := rxRow("DL", "0.001", "12", "3", "1", "4", "0", "7", "1", "812", "16", "0", "17.4", "0", "0.013")
	row, err = parsers.ParseRxTraceRow(short)
	require.NoError(t, err)
	assert.Equal(t, -1, row.Layer)
}

func TestRxTraceParser_Errors(t *testing.T) {
	t.Parallel()

	p := parsers.NewRxTraceParser()

	_, err := p.Parse(rxRow("XX", "0.001", "12", "3", "1", "4", "0", "7", "1", "812", "16", "0", "17.4", "0", "0.013"))
	assert.ErrorIs(t, err, parsers.ErrUnknownDirection)

	_, err = p.Parse(rxRow("DL", "0.001", "12", "3", "1", "4", "0", "7", "1", "812", "16", "0", "n/a", "0", "0.013"))
	var parseErr *parsers.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "sinr", parseErr.Field)

	_, err = p.Parse(rxRow("DL", "0.001", "12"))
	assert.ErrorIs(t, err, parsers.ErrMissingField)

	records, err := p.Parse("   ")
	assert.NoError(t, err)
	assert.Nil(t, records)
}

func TestPdcpParser_Parse(t *testing.T) {
	t.Parallel()

	p := parsers.NewPdcpParser()
	assert.Equal(t, 1, p.HeaderLines())

	records, err := p.Parse("Rx 0.25 1 7 3 1200 1500000")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, &models.PdcpReport{Mode: models.PdcpRx, Time: 0.25, DrbID: 3, Size: 1200, Delay: 1500000}, records[0])

	records, err = p.Parse("Xx 0.25 1 7 3 1200 1500000")
	assert.NoError(t, err)
	assert.Nil(t, records)

	_, err = p.Parse("Tx 0.25 1 7 three 1200 0")
	var parseErr *parsers.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "drb_id", parseErr.Field)
}

func TestNewParser(t *testing.T) {
	t.Parallel()

	for _, format := range []models.TraceFormat{
		models.FormatRxTrace, models.FormatBlerLog, models.FormatPacketLog, models.FormatBeamGainLog, models.FormatPdcp,
	} {
		p, err := parsers.NewParser(format)
		require.NoError(t, err)
		assert.Equal(t, format, p.Format())
	}

	_, err := parsers.NewParser("xml")
	assert.ErrorIs(t, err, parsers.ErrUnsupportedFormat)
}
