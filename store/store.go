package store

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	_ "modernc.org/sqlite"

	"github.com/neurograph/assemblytopo/connmat"
)

var (
	// ErrBadGroup indicates a missing or structurally incomplete saved group.
	ErrBadGroup = errors.New("store: group missing or malformed")

	// ErrBadBlob indicates a stored blob whose length is not a whole number
	// of elements.
	ErrBadBlob = errors.New("store: blob length not a multiple of element size")
)

// Component names within a saved group. One blob row per component.
const (
	compData    = "data"
	compIndices = "indices"
	compIndptr  = "indptr"
	compGIDs    = "gids"
)

const schema = `
CREATE TABLE IF NOT EXISTS matrices (
	prefix    TEXT NOT NULL,
	grp       TEXT NOT NULL,
	component TEXT NOT NULL,
	rows      INTEGER NOT NULL,
	payload   BLOB NOT NULL,
	PRIMARY KEY (prefix, grp, component)
);`

// DefaultPrefix is the matrix family used when none is configured.
const DefaultPrefix = "connectivity"

const panicPrefixEmpty = "store: WithPrefix: prefix must not be empty"

// Option mutates the internal options. Applied in order, last writer wins.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix selects the matrix family to read and write.
func WithPrefix(prefix string) Option {
	if prefix == "" {
		panic(panicPrefixEmpty)
	}

	return func(o *options) { o.prefix = prefix }
}

func gatherOptions(opts ...Option) options {
	o := options{prefix: DefaultPrefix}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// Store reads and writes connectivity matrices in one SQLite file.
type Store struct {
	db     *sql.DB
	prefix string
}

// Open opens (and if needed creates) the SQLite file at path.
func Open(path string, opts ...Option) (*Store, error) {
	o := gatherOptions(opts...)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("store: init schema: %w", err)
	}

	return &Store{db: db, prefix: o.prefix}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save writes the matrix under the given group name, replacing any previous
// matrix saved there.
func (s *Store) Save(group string, cm *connmat.ConnMat) error {
	indptr, indices, data := cm.Matrix().Layout()
	rows := int64(cm.N())

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: save %s: %w", group, err)
	}
	defer tx.Rollback()

	put := func(component string, payload []byte) error {
		_, err := tx.Exec(
			`INSERT OR REPLACE INTO matrices (prefix, grp, component, rows, payload)
			 VALUES (?, ?, ?, ?, ?)`,
			s.prefix, group, component, rows, payload)

		return err
	}
	if err := put(compData, encodeFloat64s(data)); err != nil {
		return fmt.Errorf("store: save %s/%s: %w", group, compData, err)
	}
	if err := put(compIndices, encodeInt64s(indices)); err != nil {
		return fmt.Errorf("store: save %s/%s: %w", group, compIndices, err)
	}
	if err := put(compIndptr, encodeInt64s(indptr)); err != nil {
		return fmt.Errorf("store: save %s/%s: %w", group, compIndptr, err)
	}
	if err := put(compGIDs, encodeInt64s(cm.GIDs())); err != nil {
		return fmt.Errorf("store: save %s/%s: %w", group, compGIDs, err)
	}

	return tx.Commit()
}

// Load reads the matrix saved under the given group name. A group with
// missing components fails with ErrBadGroup; inconsistent dimensions
// surface as connmat errors.
func (s *Store) Load(group string) (*connmat.ConnMat, error) {
	blobs := make(map[string][]byte, 4)
	var rows int64

	res, err := s.db.Query(
		`SELECT component, rows, payload FROM matrices WHERE prefix = ? AND grp = ?`,
		s.prefix, group)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", group, err)
	}
	defer res.Close()
	for res.Next() {
		var component string
		var payload []byte
		if err := res.Scan(&component, &rows, &payload); err != nil {
			return nil, fmt.Errorf("store: load %s: %w", group, err)
		}
		blobs[component] = payload
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("store: load %s: %w", group, err)
	}

	for _, component := range []string{compData, compIndices, compIndptr, compGIDs} {
		if _, ok := blobs[component]; !ok {
			return nil, fmt.Errorf("group %q missing %s: %w", group, component, ErrBadGroup)
		}
	}

	data, err := decodeFloat64s(blobs[compData])
	if err != nil {
		return nil, fmt.Errorf("group %q %s: %w", group, compData, err)
	}
	indices, err := decodeInt64s(blobs[compIndices])
	if err != nil {
		return nil, fmt.Errorf("group %q %s: %w", group, compIndices, err)
	}
	indptr, err := decodeInt64s(blobs[compIndptr])
	if err != nil {
		return nil, fmt.Errorf("group %q %s: %w", group, compIndptr, err)
	}
	gids, err := decodeInt64s(blobs[compGIDs])
	if err != nil {
		return nil, fmt.Errorf("group %q %s: %w", group, compGIDs, err)
	}
	if len(indptr) == 0 {
		return nil, fmt.Errorf("group %q has an empty indptr: %w", group, ErrBadGroup)
	}

	m, err := connmat.NewCSC(int(rows), len(indptr)-1, indptr, indices, data)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", group, err)
	}

	return connmat.New(m, gids)
}

func encodeInt64s(vals []int64) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(v))
	}

	return buf
}

func decodeInt64s(buf []byte) ([]int64, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(buf), ErrBadBlob)
	}
	out := make([]int64, len(buf)/8)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(buf[8*i:]))
	}

	return out, nil
}

func encodeFloat64s(vals []float64) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}

	return buf
}

func decodeFloat64s(buf []byte) ([]float64, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(buf), ErrBadBlob)
	}
	out := make([]float64, len(buf)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}

	return out, nil
}
