package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultField is the column holding the word shown in quiz prompts.
const DefaultField = "lemma"

// maxLineBytes bounds a single line of the word list.
const maxLineBytes = 1 << 20

// ErrNoHeader is returned when the input ends before the header line.
var ErrNoHeader = errors.New("word list has no header line")

// Options configures parsing of a word list.
type Options struct {
	// HeaderLine is the zero-based line number of the header. Lines before
	// it are preamble and are ignored.
	HeaderLine int
}

// Record maps a header field name to the raw value of one row.
type Record map[string]string

// Get returns the value of field and whether the row has it.
func (r Record) Get(field string) (string, bool) {
	v, ok := r[field]
	return v, ok
}

// List is an ordered, load-once word list.
type List struct {
	Header  []string
	Records []Record
}

// Len returns the number of records.
func (l *List) Len() int {
	return len(l.Records)
}

// Field returns the value of name in record i, or "" if absent.
func (l *List) Field(i int, name string) string {
	return l.Records[i][name]
}

// Load reads the tab-separated word list at path.
// A missing file yields an error wrapping fs.ErrNotExist.
func Load(path string, opts Options) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	l, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return l, nil
}

// Parse reads a tab-separated word list from r.
//
// Each data row is zipped against the header: columns beyond the header are
// dropped and short rows lack the trailing keys.
func Parse(r io.Reader, opts Options) (*List, error) {
	if opts.HeaderLine < 0 {
		return nil, fmt.Errorf("header line must be >= 0, got %d", opts.HeaderLine)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	l := &List{}
	haveHeader := false
	for lineNo := 0; scanner.Scan(); lineNo++ {
		line := scanner.Text()

		switch {
		case lineNo < opts.HeaderLine:
			continue
		case lineNo == opts.HeaderLine:
			l.Header = strings.Split(line, "\t")
			haveHeader = true
		default:
			if line == "" {
				continue
			}
			l.Records = append(l.Records, zip(l.Header, strings.Split(line, "\t")))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line: %w", err)
	}

	if !haveHeader {
		return nil, fmt.Errorf("%w (want line %d)", ErrNoHeader, opts.HeaderLine)
	}
	return l, nil
}

func zip(keys, values []string) Record {
	n := min(len(keys), len(values))
	rec := make(Record, n)
	for i := range n {
		rec[keys[i]] = values[i]
	}
	return rec
}
