package aggregators

import (
	"fmt"

	"trace-analytics/internal/models"
)

// Outcome tells the caller what Add did with a record.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	// OutcomeFiltered means the record was dropped by the size or bearer filter.
	OutcomeFiltered Outcome = "filtered"
	// OutcomeDuplicate means a byte counter for an already seen key; the bytes were summed.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeAnomaly means the record was accepted but is an MCS anomaly.
	OutcomeAnomaly Outcome = "anomaly"
)

const (
	DefaultMinTransferSize = 200
	DefaultMinDrbID        = 3
	// NoSizeFilter disables the block-error transfer size filter.
	NoSizeFilter = -1
)

type Options struct {
	// MinTransferSize drops block-error reports with TransferSize <= MinTransferSize. Negative disables it.
	MinTransferSize int64
	// MinDrbID drops PDCP records of lower data radio bearers (signalling bearers).
	MinDrbID int
}

func DefaultOptions() Options {
	return Options{MinTransferSize: DefaultMinTransferSize, MinDrbID: DefaultMinDrbID}
}

type TraceAggregator interface {
	// Add folds one record into the aggregates. Records must arrive in file order.
	Add(record models.TraceRecord) (Outcome, error)
	// Result returns the aggregates built so far. The aggregator keeps ownership.
	Result() *models.FileAggregates
}

type traceAggregator struct {
	opts       Options
	aggregates *models.FileAggregates
}

// NewTraceAggregator returns an empty aggregator. Use one per input file.
func NewTraceAggregator(opts Options) TraceAggregator {
	return &traceAggregator{opts: opts, aggregates: models.NewFileAggregates()}
}

func (a *traceAggregator) Result() *models.FileAggregates {
	return a.aggregates
}

func (a *traceAggregator) Add(record models.TraceRecord) (Outcome, error) {
	var outcome Outcome
	switch r := record.(type) {
	case *models.BlockErrorReport:
		outcome = a.addBlockError(r)
	case *models.ByteCountReport:
		outcome = a.addByteCount(r)
	case *models.BeamGainReport:
		outcome = a.addBeamGain(r)
	case *models.PdcpReport:
		outcome = a.addPdcp(r)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
	}
	metricRecordsTotal.WithLabelValues(string(record.Family()), string(outcome)).Inc()
	return outcome, nil
}

func (a *traceAggregator) addBlockError(r *models.BlockErrorReport) Outcome {
	if a.opts.MinTransferSize >= 0 && r.TransferSize <= a.opts.MinTransferSize {
		return OutcomeFiltered
	}

	byKey := a.aggregates.BlockError[r.Key()]
	if byKey == nil {
		byKey = models.NewBlockErrorAggregate()
		a.aggregates.BlockError[r.Key()] = byKey
	}
	byDirection := a.aggregates.BlockErrorByDirection[r.Direction]
	if byDirection == nil {
		byDirection = models.NewBlockErrorAggregate()
		a.aggregates.BlockErrorByDirection[r.Direction] = byDirection
	}

	anomaly := r.IsMCSAnomaly()
	for _, agg := range []*models.BlockErrorAggregate{byKey, byDirection} {
		agg.BLER.Add(r.TBLER)
		agg.Corrupted.Add(float64(r.CorruptedBytes))
		agg.SINRLinear.Add(models.DBToLinear(r.SINRdB))
		agg.SINRSamples = append(agg.SINRSamples, models.Float(r.SINRdB))
		agg.MCSSamples = append(agg.MCSSamples, r.AchievedMCS)
		if r.HasRequestedMCS {
			agg.RequestedMCS = append(agg.RequestedMCS, r.RequestedMCS)
		}
		if r.Undershoot {
			agg.Undershoots++
		}
		if anomaly {
			agg.MCSAnomalies++
		}
	}

	if anomaly {
		return OutcomeAnomaly
	}
	return OutcomeAccepted
}

func (a *traceAggregator) addByteCount(r *models.ByteCountReport) Outcome {
	agg, seen := a.aggregates.ReceivedBytes[r.Key()]
	if !seen {
		agg = &models.ByteCountAggregate{}
		a.aggregates.ReceivedBytes[r.Key()] = agg
	}
	agg.Bytes += r.Bytes
	agg.Reports++

	if seen {
		return OutcomeDuplicate
	}
	return OutcomeAccepted
}

func (a *traceAggregator) addBeamGain(r *models.BeamGainReport) Outcome {
	agg := a.aggregates.BeamGain[r.Key()]
	if agg == nil {
		agg = &models.BeamGainAggregate{Samples: models.Samples{}}
		a.aggregates.BeamGain[r.Key()] = agg
	}
	agg.Gain.Add(r.Gain)
	agg.Samples = append(agg.Samples, models.Float(r.Gain))
	return OutcomeAccepted
}

func (a *traceAggregator) addPdcp(r *models.PdcpReport) Outcome {
	if r.DrbID < a.opts.MinDrbID {
		return OutcomeFiltered
	}
	pdcp := a.aggregates.Pdcp
	switch r.Mode {
	case models.PdcpTx:
		pdcp.TxBytes += r.Size
	case models.PdcpRx:
		pdcp.RxBytes += r.Size
		pdcp.Delay.Add(r.Delay)
		pdcp.DelaySamples = append(pdcp.DelaySamples, models.Float(r.Delay))
	default:
		return OutcomeFiltered
	}
	return OutcomeAccepted
}
