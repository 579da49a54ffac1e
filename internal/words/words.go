// apps/solver/internal/words/words.go
//
// Provides dictionary management for the solver.
//
// Responsibilities:
//   - Load the word list from a SQLite database, a plain-text file, or the
//     embedded default list (in that order of precedence).
//   - Normalize words to uppercase, keep only 5-letter A–Z entries, drop duplicates.
//   - Supply lookups (Contains), a random pick, and a content fingerprint.
//
// Sources:
//   - WORDS_DB=/path/to/words.db   table `words(word TEXT PRIMARY KEY)`
//   - WORDS_FILE=/path/to/words.txt one word per line, '#' comments allowed
//   - neither set                  assets/words.txt (embedded)

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is an immutable, deduplicated list of uppercase five-letter words.
type Dictionary struct {
	list []string            // insertion order
	set  map[string]struct{} // membership
}

// Source selects where Load reads words from. Empty fields are skipped.
type Source struct {
	DB   string // SQLite DSN
	File string // plain-text path
}

// New builds a Dictionary from raw words.
func New(raw []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(raw))}
	for _, w := range raw {
		w = normalize(w)
		if !solver.IsWord(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	return d
}

// Load reads a dictionary from src, falling back to the embedded list.
func Load(ctx context.Context, src Source) (*Dictionary, error) {
	var (
		d      *Dictionary
		err    error
		origin string
	)
	switch {
	case src.DB != "":
		origin = src.DB
		d, err = loadFromDB(ctx, src.DB)
	case src.File != "":
		origin = src.File
		d, err = LoadFile(src.File)
	default:
		origin = "embedded"
		var list []string
		list, err = assets.WordList()
		if err == nil {
			d = New(list)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", origin, err)
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("load %s: %w", origin, ErrEmpty)
	}
	log.Debug().Str("source", origin).Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

func loadFromDB(ctx context.Context, dsn string) (*Dictionary, error) {
	db, err := OpenDB(dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return LoadDB(ctx, db)
}

// LoadFile reads one word per line from path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses one word per line from r. Blank lines and lines starting
// with '#' are skipped; invalid words are dropped silently.
func Read(r io.Reader) (*Dictionary, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(out), nil
}

// Words returns the words in insertion order. Callers must not modify it.
func (d *Dictionary) Words() []string { return d.list }

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.list) }

// Contains reports whether w is in the dictionary (case-insensitive).
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[normalize(w)]
	return ok
}

// Random returns a cryptographically random word, or "" if empty.
func (d *Dictionary) Random() string {
	if len(d.list) == 0 {
		return ""
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(d.list))))
	return d.list[n.Int64()]
}

// Fingerprint identifies the dictionary content independent of order:
// the blake2b-256 hex digest of the sorted words joined by newlines.
func (d *Dictionary) Fingerprint() string {
	sorted := append([]string(nil), d.list...)
	sort.Strings(sorted)
	sum := blake2b.Sum256([]byte(strings.Join(sorted, "\n")))
	return hex.EncodeToString(sum[:])
}

func normalize(w string) string { return strings.ToUpper(strings.TrimSpace(w)) }

