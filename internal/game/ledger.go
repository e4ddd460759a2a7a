package game

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Ledger holds the run's scalar bookkeeping.
type Ledger struct {
	Score         int
	Health        int
	Level         int
	HighScore     int
	Credits       int
	Kills         int
	AttackStacks  int
	DefenseStacks int
}

// LedgerRecord is the portable subset of the ledger: enough to put a fresh
// game back on the same score, health, level and high score.
type LedgerRecord struct {
	Score     int `msgpack:"score"`
	Health    int `msgpack:"health"`
	Level     int `msgpack:"level"`
	HighScore int `msgpack:"high_score"`
}

// Record extracts the portable subset.
func (l Ledger) Record() LedgerRecord {
	return LedgerRecord{
		Score:     l.Score,
		Health:    l.Health,
		Level:     l.Level,
		HighScore: l.HighScore,
	}
}

// EncodeRecord serializes a record with msgpack.
func EncodeRecord(rec LedgerRecord) ([]byte, error) {
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode ledger record: %w", err)
	}
	return data, nil
}

// DecodeRecord parses a record produced by EncodeRecord.
func DecodeRecord(data []byte) (LedgerRecord, error) {
	var rec LedgerRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return LedgerRecord{}, fmt.Errorf("decode ledger record: %w", err)
	}
	return rec, nil
}

// attackFactor is the outgoing damage multiplier from attack stacks.
func (l Ledger) attackFactor() float64 {
	return 1 + StackEffect*float64(l.AttackStacks)
}

// mitigate applies defense stacks to an incoming hit.
func (l Ledger) mitigate(damage float64) int {
	return roundHalfUp(damage * (1 - StackEffect*float64(l.DefenseStacks)))
}

func addStack(stacks *int) {
	if *stacks < MaxStacks {
		*stacks++
	}
}
