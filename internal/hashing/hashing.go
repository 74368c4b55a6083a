// Package hashing provides Zobrist position hashing and duplicate detection
// for positions read in batch.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chessctrl-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x63686573735f6374

// pieceKeys is indexed by square index, colour and kind.
var pieceKeys [chess.BoardSize * chess.BoardSize][2][chess.King + 1]uint64

var blackToMoveKey uint64

func init() {
	rng := rand.New(rand.NewPCG(zobristSeed, zobristSeed>>1))
	for sq := range pieceKeys {
		for colour := range pieceKeys[sq] {
			for kind := range pieceKeys[sq][colour] {
				pieceKeys[sq][colour][kind] = rng.Uint64()
			}
		}
	}
	blackToMoveKey = rng.Uint64()
}

func squareIndex(sq chess.Square) int {
	return int(sq.Rank-chess.MinRank)*chess.BoardSize + int(sq.File-chess.MinFile)
}

// GenerateZobristHash hashes the piece placement and the side to move.
func GenerateZobristHash(board *chess.Board, turn chess.Colour) uint64 {
	var hash uint64
	for _, sq := range chess.AllSquares() {
		piece, ok := board.Get(sq)
		if !ok {
			continue
		}
		hash ^= pieceKeys[squareIndex(sq)][piece.Colour][piece.Kind]
	}
	if turn == chess.Black {
		hash ^= blackToMoveKey
	}
	return hash
}

// WeakHash is a cheap secondary hash: material per colour and side to move.
func WeakHash(board *chess.Board, turn chess.Colour) uint64 {
	return uint64(board.Material(chess.White))<<32 | uint64(board.Material(chess.Black))<<1 | uint64(turn)
}

// PositionSignature identifies a position for duplicate detection.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
	// Pieces is the number of pieces on the board
	Pieces int
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// maxCapacity bounds the number of stored positions (0 = unlimited)
	maxCapacity    int
	stored         int
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity; once full, new positions are
// no longer remembered but are still checked.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if the position was seen before and remembers it.
// Returns true if the position is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, turn chess.Colour) bool {
	if board == nil {
		return false
	}

	sig := PositionSignature{
		Hash:     GenerateZobristHash(board, turn),
		WeakHash: WeakHash(board, turn),
		Pieces:   board.Len(),
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.stored++
	}
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of remembered positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}
