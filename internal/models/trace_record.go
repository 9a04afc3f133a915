package models

// TraceRecord is one classified, decoded observation taken from a trace line.
// Records are immutable and consumed immediately by the aggregator.
type TraceRecord interface {
	Family() Family
}

// BlockErrorReport is a transport block reception report.
//
// Both the semi-structured log and the tab-separated RxPacketTrace produce this shape.
// The RxPacketTrace has no requested MCS column, so HasRequestedMCS is false for its rows.
type BlockErrorReport struct {
	Direction       Direction `json:"direction"`
	UserID          int       `json:"userId"`
	TBLER           float64   `json:"tbler"`
	SINRdB          float64   `json:"sinrDb"`
	CorruptedBytes  int64     `json:"corruptedBytes"`
	RequestedMCS    int       `json:"requestedMcs"`
	HasRequestedMCS bool      `json:"hasRequestedMcs"`
	AchievedMCS     int       `json:"achievedMcs"`
	TransferSize    int64     `json:"transferSize"`
	Undershoot      bool      `json:"undershoot"`
}

func (*BlockErrorReport) Family() Family { return FamilyBlockError }

// IsMCSAnomaly reports a corrupted transmission that was not sent below the requested MCS.
func (r *BlockErrorReport) IsMCSAnomaly() bool {
	return r.HasRequestedMCS && !r.Undershoot && r.CorruptedBytes > 0
}

// Key returns the per-user aggregate key of the report.
func (r *BlockErrorReport) Key() AggregateKey {
	return AggregateKey{Direction: r.Direction, UserID: r.UserID}
}

// ByteCountReport is an end-of-run received byte counter for one user.
type ByteCountReport struct {
	Direction Direction `json:"direction"`
	UserID    int       `json:"userId"`
	Bytes     int64     `json:"bytes"`
}

func (*ByteCountReport) Family() Family { return FamilyByteCount }

func (r *ByteCountReport) Key() AggregateKey {
	return AggregateKey{Direction: r.Direction, UserID: r.UserID}
}

// BeamGainReport is a linear beamforming gain for one transmit/receive beam pair.
type BeamGainReport struct {
	TxNode int     `json:"txNode"`
	RxNode int     `json:"rxNode"`
	TxBeam int     `json:"txBeam"`
	RxBeam int     `json:"rxBeam"`
	Gain   float64 `json:"gain"`
}

func (*BeamGainReport) Family() Family { return FamilyBeamGain }

func (r *BeamGainReport) Key() BeamKey {
	return BeamKey{TxNode: r.TxNode, RxNode: r.RxNode, TxBeam: r.TxBeam, RxBeam: r.RxBeam}
}

// PdcpMode is the PDCP event type.
type PdcpMode string

const (
	PdcpTx PdcpMode = "Tx"
	PdcpRx PdcpMode = "Rx"
)

// PdcpReport is one row of a PDCP stats file.
type PdcpReport struct {
	Mode  PdcpMode `json:"mode"`
	Time  float64  `json:"time"`
	DrbID int      `json:"drbId"`
	Size  int64    `json:"size"`
	Delay float64  `json:"delay"`
}

func (*PdcpReport) Family() Family { return FamilyPdcp }
