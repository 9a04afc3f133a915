package models

// BlockErrorAggregate holds the running statistics of block-error reports for one key.
//
// SINR is averaged in the linear power domain and only converted back to dB when read,
// which is why AvgSINRdB is at least the plain mean of the dB samples.
type BlockErrorAggregate struct {
	BLER         RunningMean `json:"bler"`
	Corrupted    RunningMean `json:"corrupted"`
	SINRLinear   RunningMean `json:"sinrLinear"`
	SINRSamples  Samples     `json:"sinrSamples"`
	MCSSamples   []int       `json:"mcsSamples"`
	RequestedMCS []int       `json:"requestedMcsSamples,omitempty"`
	Undershoots  int64       `json:"undershoots"`
	MCSAnomalies int64       `json:"mcsAnomalies"`
}

func NewBlockErrorAggregate() *BlockErrorAggregate {
	return &BlockErrorAggregate{
		SINRSamples: Samples{},
		MCSSamples:  []int{},
	}
}

// Count is the number of accepted reports.
func (a *BlockErrorAggregate) Count() int64 {
	return a.BLER.Count
}

// AvgSINRdB returns the power-domain mean SINR expressed in dB.
func (a *BlockErrorAggregate) AvgSINRdB() float64 {
	return LinearToDB(a.SINRLinear.Value())
}

// ByteCountAggregate is the received byte counter of one key.
// Reports is above one only for malformed input where the counter was printed twice.
type ByteCountAggregate struct {
	Bytes   int64 `json:"bytes"`
	Reports int64 `json:"reports"`
}

// BeamGainAggregate holds the linear gains observed for one beam pair.
type BeamGainAggregate struct {
	Gain    RunningMean `json:"gain"`
	Samples Samples     `json:"samples"`
}

// PdcpAggregate summarizes one PDCP stats file.
type PdcpAggregate struct {
	TxBytes      int64       `json:"txBytes"`
	RxBytes      int64       `json:"rxBytes"`
	Delay        RunningMean `json:"delay"`
	DelaySamples Samples     `json:"delaySamples"`
}

// FileAggregates is the bundle of keyed aggregates produced by one pass over one file.
type FileAggregates struct {
	BlockError            map[AggregateKey]*BlockErrorAggregate `json:"blockError"`
	BlockErrorByDirection map[Direction]*BlockErrorAggregate    `json:"blockErrorByDirection"`
	ReceivedBytes         map[AggregateKey]*ByteCountAggregate  `json:"receivedBytes"`
	BeamGain              map[BeamKey]*BeamGainAggregate        `json:"beamGain"`
	Pdcp                  *PdcpAggregate                        `json:"pdcp"`
}

func NewFileAggregates() *FileAggregates {
	return &FileAggregates{
		BlockError:            make(map[AggregateKey]*BlockErrorAggregate),
		BlockErrorByDirection: make(map[Direction]*BlockErrorAggregate),
		ReceivedBytes:         make(map[AggregateKey]*ByteCountAggregate),
		BeamGain:              make(map[BeamKey]*BeamGainAggregate),
		Pdcp:                  &PdcpAggregate{DelaySamples: Samples{}},
	}
}
