package game

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const movesSeparator = ","

// EncodeMoves joins a move sequence into its canonical string form, e.g. "R,P,S".
func EncodeMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = string(m)
	}
	return strings.Join(parts, movesSeparator)
}

// DecodeMoves parses the canonical string form back into a move sequence.
func DecodeMoves(encoded string) ([]Move, error) {
	if encoded == "" {
		return nil, ErrEmptyMoves
	}
	return ParseMoves(strings.Split(encoded, movesSeparator))
}

// HashCommit derives the commitment digest for a move sequence and salt.
// The preimage is "<moves joined by ,>|<salt>" hashed with SHA-256.
// The digest hides the moves only as long as the salt stays unpredictable;
// the move space itself is tiny (3^rounds).
func HashCommit(moves []Move, salt string) string {
	preimage := EncodeMoves(moves) + "|" + salt
	sum := sha256.Sum256([]byte(preimage))
	return hex.EncodeToString(sum[:])
}

// VerifyCommit recomputes the digest from the claimed moves and salt and
// compares it with the stored commitment. Returns false on any mismatch.
func VerifyCommit(storedCommit string, moves []Move, salt string) bool {
	return storedCommit == HashCommit(moves, salt)
}

// GenerateSalt returns n random bytes as a hex string, suitable as a
// commitment salt.
func GenerateSalt(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("salt length must be positive, got %d", n)
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
