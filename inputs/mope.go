package inputs

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// MOPE is one parsed {"edges": [...]} line, deduplicated, with edges in
// first-occurrence order (not sorted).
type MOPE struct {
	Edges []int
}

type mopeLine struct {
	Edges []int `json:"edges"`
}

// ReadMOPEs parses a JSON-Lines MOPE file against a graph of e edges.
// Empty lines are skipped and duplicate edge indices within a line are
// deduplicated; both conditions are reported back as warnings rather
// than errors, per the semantic-warning error class. An edge index
// outside [0, e) is a fatal schema error.
func ReadMOPEs(r io.Reader, e int) (mopes []MOPE, warnings []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isBlank(line) {
			warnings = append(warnings, fmt.Sprintf("inputs: line %d: empty MOPE line skipped", lineNo))

			continue
		}

		var parsed mopeLine
		if jerr := json.Unmarshal([]byte(line), &parsed); jerr != nil {
			return nil, warnings, fmt.Errorf("inputs: line %d: %w: %v", lineNo, ErrMalformedMOPE, jerr)
		}
		if len(parsed.Edges) == 0 {
			warnings = append(warnings, fmt.Sprintf("inputs: line %d: MOPE with no edges skipped", lineNo))

			continue
		}

		seen := make(map[int]bool, len(parsed.Edges))
		var dedup []int
		dupFound := false
		for _, i := range parsed.Edges {
			if i < 0 || i >= e {
				return nil, warnings, fmt.Errorf("inputs: line %d: edge %d: %w", lineNo, i, ErrEdgeOutOfRange)
			}
			if seen[i] {
				dupFound = true

				continue
			}
			seen[i] = true
			dedup = append(dedup, i)
		}
		if dupFound {
			warnings = append(warnings, fmt.Sprintf("inputs: line %d: duplicate edges within MOPE ignored", lineNo))
		}

		mopes = append(mopes, MOPE{Edges: dedup})
	}
	if serr := scanner.Err(); serr != nil {
		return nil, warnings, fmt.Errorf("inputs: reading MOPE file: %w", serr)
	}

	return mopes, warnings, nil
}

func isBlank(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}

	return true
}
