package storage

import (
	"database/sql"
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

type querier interface {
	execer
	Query(query string, args ...any) (*sql.Rows, error)
}

// LoadRanking returns the stored top three for mode. On error the returned
// ranking is empty but usable.
func (s *Store) LoadRanking(mode string) (engine.Ranking, error) {
	return loadRanking(s.db, mode)
}

func loadRanking(db querier, mode string) (engine.Ranking, error) {
	var ranking engine.Ranking

	rows, err := db.Query(
		`SELECT slot, player, score, lines FROM rankings WHERE mode = ? ORDER BY slot`,
		mode,
	)
	if err != nil {
		return engine.Ranking{}, fmt.Errorf("storage: cannot query ranking: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot int
		var r engine.Result
		if err := rows.Scan(&slot, &r.Name, &r.Score, &r.Lines); err != nil {
			return engine.Ranking{}, fmt.Errorf("storage: cannot scan ranking row: %w", err)
		}
		if slot < 0 || slot >= engine.RankingSlots {
			continue
		}
		ranking[slot] = engine.RankEntry{Result: r, Filled: true}
	}

	if err := rows.Err(); err != nil {
		return engine.Ranking{}, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ranking, nil
}

// SaveRanking replaces the stored ranking for mode.
func (s *Store) SaveRanking(mode string, ranking engine.Ranking) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := saveRanking(tx, mode, ranking); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ranking: %w", err)
	}
	return nil
}

func saveRanking(db execer, mode string, ranking engine.Ranking) error {
	if _, err := db.Exec("DELETE FROM rankings WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear ranking: %w", err)
	}
	for slot, e := range ranking {
		if !e.Filled {
			continue
		}
		_, err := db.Exec(
			"INSERT INTO rankings (mode, slot, player, score, lines) VALUES (?, ?, ?, ?, ?)",
			mode, slot, e.Name, e.Score, e.Lines,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save ranking slot %d: %w", slot, err)
		}
	}
	return nil
}

// ResetRanking empties the ranking for mode.
func (s *Store) ResetRanking(mode string) error {
	_, err := s.db.Exec("DELETE FROM rankings WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot reset ranking: %w", err)
	}
	return nil
}

// RecordResult appends r to the history and, if it qualifies, inserts it
// into the ranking of mode. Both happen in one transaction. rank is the
// 1-based podium place, or 0 when r did not qualify.
func (s *Store) RecordResult(mode string, r engine.Result) (rank int, qualified bool, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := saveResult(tx, mode, r); err != nil {
		return 0, false, err
	}

	ranking, err := loadRanking(tx, mode)
	if err != nil {
		return 0, false, err
	}

	slot, ok := ranking.Insert(r)
	if ok {
		if err := saveRanking(tx, mode, ranking); err != nil {
			return 0, false, err
		}
		rank = slot + 1
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("storage: cannot commit result: %w", err)
	}
	return rank, ok, nil
}
