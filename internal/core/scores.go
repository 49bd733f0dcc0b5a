package core

// HighScoreStore persists the best score of each game between runs.
// Implementations live in the storage package; games only see this interface.
type HighScoreStore interface {
	// LoadHighScore returns the stored best score for gameID.
	// A missing record is not an error and yields 0.
	LoadHighScore(gameID string) (int, error)

	// SaveHighScore records score as the new best for gameID.
	SaveHighScore(gameID string, score int) error
}
