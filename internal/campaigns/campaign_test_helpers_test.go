package campaigns_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	rxHeader   = "mode\ttime\tframe\tsubF\t1stSym\tsymbol#\tcellId\trnti\tccId\ttbSize\tmcs\trv\tSINR(dB)\tcorrupt\tTBler"
	pdcpHeader = "mode time cellId rnti lcid size delay"
)

func writeRun(t *testing.T, root, run, params string, rxRows, ulRows, dlRows []string) {
	t.Helper()
	dir := filepath.Join(root, "data", run)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if params != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "params.json"), []byte(params), 0o644))
	}
	write := func(name, header string, rows []string) {
		if rows == nil {
			return
		}
		content := header + "\n" + strings.Join(rows, "\n") + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("RxPacketTrace.txt", rxHeader, rxRows)
	write("UlPdcpStats.txt", pdcpHeader, ulRows)
	write("DlPdcpStats.txt", pdcpHeader, dlRows)
}

// rx builds one RxPacketTrace row.
func rx(mode, size, sinr, tbler string) string {
	return strings.Join([]string{mode, "0.01", "1", "2", "0", "4", "1", "3", "0", size, "10", "0", sinr, "0", tbler}, "\t")
}
