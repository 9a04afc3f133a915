package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AggregateKey identifies one per-user running aggregate.
// Its text form ("DL-5") is used as a JSON object key.
type AggregateKey struct {
	Direction Direction
	UserID    int
}

func (k AggregateKey) String() string {
	return fmt.Sprintf("%s-%d", k.Direction, k.UserID)
}

func (k AggregateKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AggregateKey) UnmarshalText(text []byte) error {
	dir, user, ok := strings.Cut(string(text), "-")
	if !ok {
		return fmt.Errorf("invalid aggregate key: %q", text)
	}
	direction, err := ParseDirection(dir)
	if err != nil {
		return fmt.Errorf("invalid aggregate key %q: %w", text, err)
	}
	userID, err := strconv.Atoi(user)
	if err != nil {
		return fmt.Errorf("invalid aggregate key %q: %w", text, err)
	}
	k.Direction = direction
	k.UserID = userID
	return nil
}

// BeamKey identifies one beamforming gain aggregate: transmit/receive node and beam indices.
type BeamKey struct {
	TxNode int
	RxNode int
	TxBeam int
	RxBeam int
}

func (k BeamKey) String() string {
	return fmt.Sprintf("%d-%d-%d-%d", k.TxNode, k.RxNode, k.TxBeam, k.RxBeam)
}

func (k BeamKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *BeamKey) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), "-")
	if len(parts) != 4 {
		return fmt.Errorf("invalid beam key: %q", text)
	}
	values := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid beam key %q: %w", text, err)
		}
		values[i] = v
	}
	k.TxNode, k.RxNode, k.TxBeam, k.RxBeam = values[0], values[1], values[2], values[3]
	return nil
}
