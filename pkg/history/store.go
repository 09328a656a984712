package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cardroom/engine/pkg/poker"
)

// Store persists hand histories in a sqlite database
type Store struct {
	*sql.DB
}

// NewStore opens (or creates) the database at dbPath
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Create tables if they don't exist
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

// createTables creates the necessary database tables
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS hands (
			hand_id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			outcome TEXT NOT NULL,
			pot_total INTEGER NOT NULL,
			history TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// SaveHand stores a completed hand's history, replacing any previous
// record with the same hand id.
func (s *Store) SaveHand(hist poker.HandHistory) error {
	blob, err := json.Marshal(hist)
	if err != nil {
		return fmt.Errorf("failed to marshal hand history: %v", err)
	}
	_, err = s.Exec(
		"INSERT OR REPLACE INTO hands (hand_id, variant, outcome, pot_total, history) VALUES (?, ?, ?, ?, ?)",
		hist.HandID, hist.Variant, hist.Outcome, hist.PotTotal, string(blob),
	)
	if err != nil {
		return fmt.Errorf("failed to save hand %s: %v", hist.HandID, err)
	}
	return nil
}

// GetHand fetches one hand history by id
func (s *Store) GetHand(handID string) (poker.HandHistory, error) {
	var blob string
	err := s.QueryRow("SELECT history FROM hands WHERE hand_id = ?", handID).Scan(&blob)
	if err == sql.ErrNoRows {
		return poker.HandHistory{}, fmt.Errorf("hand %s not found", handID)
	}
	if err != nil {
		return poker.HandHistory{}, fmt.Errorf("failed to get hand %s: %v", handID, err)
	}
	var hist poker.HandHistory
	if err := json.Unmarshal([]byte(blob), &hist); err != nil {
		return poker.HandHistory{}, fmt.Errorf("failed to unmarshal hand %s: %v", handID, err)
	}
	return hist, nil
}

// ListHands returns the ids of the most recent hands, newest first.
func (s *Store) ListHands(limit int) ([]string, error) {
	rows, err := s.Query(
		"SELECT hand_id FROM hands ORDER BY created_at DESC, hand_id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list hands: %v", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
