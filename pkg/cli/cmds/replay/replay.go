package replay

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/robotalks/atcmd.go/pkg/grammar"
	"github.com/robotalks/atcmd.go/pkg/parser"
)

// MaxLineLength limits the length of a line in a capture.
const MaxLineLength = 4096

// Splitter is a bufio.SplitFunc splitting a capture into lines terminated
// by CR, LF or CRLF. Terminators are not included in the tokens.
func Splitter(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i, b := range data {
		if b != '\r' && b != '\n' {
			continue
		}
		if b == '\r' {
			if i+1 == len(data) && !atEOF {
				// A LF may follow in next read.
				return 0, nil, nil
			}
			if i+1 < len(data) && data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
		}
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Summary counts outcomes of a replay.
type Summary struct {
	Lines   int
	Matched map[string]int
	Failed  map[parser.ErrorKind]int
}

// MatchedCount returns the number of lines matched.
func (s *Summary) MatchedCount() (n int) {
	for _, c := range s.Matched {
		n += c
	}
	return
}

// FailedCount returns the number of lines rejected.
func (s *Summary) FailedCount() (n int) {
	for _, c := range s.Failed {
		n += c
	}
	return
}

// String implements fmt.Stringer.
func (s *Summary) String() string {
	lines := []string{fmt.Sprintf("lines: %d, matched: %d, failed: %d", s.Lines, s.MatchedCount(), s.FailedCount())}
	names := make([]string, 0, len(s.Matched))
	for name := range s.Matched {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %s: %d", name, s.Matched[name]))
	}
	for _, kind := range parser.Kinds() {
		if n := s.Failed[kind]; n > 0 {
			lines = append(lines, fmt.Sprintf("  %s: %d", kind.Error(), n))
		}
	}
	return strings.Join(lines, "\n")
}

// LineFunc is called for each parsed line. line is only valid during the call.
type LineFunc func(num int, line []byte, res *grammar.Result, err error)

// Run parses every non-empty line in r.
func Run(g *grammar.Grammar, r io.Reader, fn LineFunc) (*Summary, error) {
	s := &Summary{
		Matched: make(map[string]int),
		Failed:  make(map[parser.ErrorKind]int),
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), MaxLineLength)
	scanner.Split(Splitter)
	for num := 1; scanner.Scan(); num++ {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		s.Lines++
		res, err := g.Match(line)
		if err != nil {
			s.Failed[parser.KindOf(err)]++
		} else {
			s.Matched[res.Command.Name]++
		}
		if fn != nil {
			fn(num, line, res, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return s, fmt.Errorf("read capture: %w", err)
	}
	return s, nil
}
