package index

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

const (
	currentGenKey = "index/current"
	genKeyPrefix  = "index/gen/"
)

// collection is the durable copy of the index, one BadgerDB key space per
// generation. Flipping the current-generation pointer is a single write,
// so a crash mid-rebuild leaves the previous generation intact; stale
// prefixes are pruned after the next successful swap.
type collection struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// openCollection opens the index database at path, creating the
// directory if needed. An empty path opens an in-memory database.
func openCollection(path string, logger *slog.Logger) (*collection, error) {
	var opts badger.Options

	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
			if err := os.MkdirAll(path, 0755); err != nil {
				return nil, err
			}
			info, err = os.Stat(path)
			if err != nil {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", path)
		}
		opts = badger.DefaultOptions(path)
	}

	opts.Logger = &badgerLoggerAdapter{logger: logger}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &collection{db: db, logger: logger}, nil
}

func (c *collection) close() error {
	return c.db.Close()
}

func genPrefix(gen uint64) []byte {
	prefix := make([]byte, 0, len(genKeyPrefix)+8)
	prefix = append(prefix, genKeyPrefix...)
	prefix = binary.BigEndian.AppendUint64(prefix, gen)
	return append(prefix, '/')
}

func entryKey(gen uint64, i int) []byte {
	return binary.BigEndian.AppendUint64(genPrefix(gen), uint64(i))
}

// loadCurrent reads the persisted generation number and its entries.
// A fresh database yields generation zero with no entries.
func (c *collection) loadCurrent() (uint64, []*Entry, error) {
	var gen uint64
	var entries []*Entry

	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(currentGenKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("malformed current-generation value (%d bytes)", len(val))
			}
			gen = binary.BigEndian.Uint64(val)
			return nil
		}); err != nil {
			return err
		}
		if gen == 0 {
			return nil
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = genPrefix(gen)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entry Entry
			if err := iter.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				return err
			}
			e := entry
			entries = append(entries, &e)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return gen, entries, nil
}

// writeGeneration persists a new generation and flips the current
// pointer to it. The entry writes may span several transactions; only
// the pointer flip makes them visible.
func (c *collection) writeGeneration(gen uint64, entries []*Entry) error {
	batch := c.db.NewWriteBatch()
	defer batch.Cancel()

	for i, entry := range entries {
		encoded, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encode index entry %d: %w", entry.ArticleID, err)
		}
		if err := batch.Set(entryKey(gen, i), encoded); err != nil {
			return err
		}
	}
	if err := batch.Flush(); err != nil {
		return err
	}

	return c.db.Update(func(tx *badger.Txn) error {
		return tx.Set([]byte(currentGenKey), binary.BigEndian.AppendUint64(nil, gen))
	})
}

// pruneStale drops every generation prefix except the current one.
// Failures only cost disk space, so they are logged and swallowed.
func (c *collection) pruneStale(current uint64) {
	var stale []uint64

	err := c.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(genKeyPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		seen := map[uint64]bool{}
		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(genKeyPrefix)+8 {
				continue
			}
			gen := binary.BigEndian.Uint64(key[len(genKeyPrefix) : len(genKeyPrefix)+8])
			if gen != current && !seen[gen] {
				seen[gen] = true
				stale = append(stale, gen)
			}
		}
		return nil
	})
	if err != nil {
		c.logger.Warn("failed to scan stale index generations", "error", err)
		return
	}

	for _, gen := range stale {
		if err := c.db.DropPrefix(genPrefix(gen)); err != nil {
			c.logger.Warn("failed to drop stale index generation", "generation", gen, "error", err)
		}
	}
}
