package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
)

// EvaluatorKind selects which position evaluator the engine runs.
type EvaluatorKind int

const (
	EvalTapered EvaluatorKind = iota
	EvalOpening
	EvalMiddlegame
	EvalEndgame
)

func (k EvaluatorKind) String() string {
	switch k {
	case EvalOpening:
		return "opening"
	case EvalMiddlegame:
		return "middlegame"
	case EvalEndgame:
		return "endgame"
	default:
		return "tapered"
	}
}

// ParseEvaluatorKind resolves an evaluator name, as used by the UCI
// option layer.
func ParseEvaluatorKind(s string) (EvaluatorKind, error) {
	switch s {
	case "tapered":
		return EvalTapered, nil
	case "opening":
		return EvalOpening, nil
	case "middlegame":
		return EvalMiddlegame, nil
	case "endgame":
		return EvalEndgame, nil
	}
	return EvalTapered, fmt.Errorf("storage: unknown evaluator %q", s)
}

// EnginePreferences stores the settings the engine starts up with.
type EnginePreferences struct {
	SearchDepth int           `json:"search_depth"`
	Evaluator   EvaluatorKind `json:"evaluator"`
	TableSizeMB int           `json:"table_size_mb"`
	LogProgress bool          `json:"log_progress"`
	LastUsed    time.Time     `json:"last_used"`
}

// DefaultPreferences returns the out-of-the-box engine settings.
func DefaultPreferences() *EnginePreferences {
	return &EnginePreferences{
		SearchDepth: 4,
		Evaluator:   EvalTapered,
		TableSizeMB: 64,
		LogProgress: false,
		LastUsed:    time.Now(),
	}
}

// SearchStats accumulates totals across every search the engine has run.
type SearchStats struct {
	Searches      int           `json:"searches"`
	TotalNodes    uint64        `json:"total_nodes"`
	TotalTime     time.Duration `json:"total_time"`
	DeepestSearch int           `json:"deepest_search"`
	MatesFound    int           `json:"mates_found"`
	PoolHits      uint64        `json:"pool_hits"`
	PoolMisses    uint64        `json:"pool_misses"`
}

// NewSearchStats returns empty statistics.
func NewSearchStats() *SearchStats {
	return &SearchStats{}
}

// NodesPerSecond returns the lifetime average search speed.
func (s *SearchStats) NodesPerSecond() float64 {
	if s.TotalTime <= 0 {
		return 0
	}
	return float64(s.TotalNodes) / s.TotalTime.Seconds()
}

// PoolHitRate returns the fraction of move allocations served from
// pools, as a percentage (0-100).
func (s *SearchStats) PoolHitRate() float64 {
	total := s.PoolHits + s.PoolMisses
	if total == 0 {
		return 0
	}
	return float64(s.PoolHits) / float64(total) * 100
}

// SearchRecord describes one completed search for the statistics.
type SearchRecord struct {
	Depth      int
	Nodes      uint64
	Duration   time.Duration
	PoolHits   uint64
	PoolMisses uint64
	Mate       bool
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return NewStorageAt(dbDir)
}

// NewStorageAt opens the database in the given directory.
func NewStorageAt(dbDir string) (*Storage, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	var firstLaunch bool = true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves the engine preferences
func (s *Storage) SavePreferences(prefs *EnginePreferences) error {
	prefs.LastUsed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads the engine preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*EnginePreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves the search statistics
func (s *Storage) SaveStats(stats *SearchStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads the search statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*SearchStats, error) {
	stats := NewSearchStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordSearch folds one completed search into the statistics.
func (s *Storage) RecordSearch(rec SearchRecord) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Searches++
	stats.TotalNodes += rec.Nodes
	stats.TotalTime += rec.Duration
	stats.PoolHits += rec.PoolHits
	stats.PoolMisses += rec.PoolMisses
	if rec.Depth > stats.DeepestSearch {
		stats.DeepestSearch = rec.Depth
	}
	if rec.Mate {
		stats.MatesFound++
	}

	return s.SaveStats(stats)
}
