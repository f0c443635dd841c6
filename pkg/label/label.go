package label

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is a single parsed label line: a class id plus the box geometry
// as center/size values. The unit (normalized or pixel) is unknown until
// the whole set has been classified.
type Record struct {
	Class int
	CX    float64
	CY    float64
	W     float64
	H     float64
}

// Set is the ordered list of records from one label file. Order is
// preserved so later boxes draw over earlier ones.
type Set []Record

// Warning describes a label line that was skipped during parsing.
type Warning struct {
	Line   int
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// Parse reads YOLO label text, one record per line:
//
//	<class_id> <cx> <cy> <w> <h> [ignored...]
//
// Blank lines and lines starting with '#' are skipped silently. Malformed
// lines are skipped and reported as warnings; parsing never fails.
func Parse(text string) (Set, []Warning) {
	var set Set
	var warnings []Warning

	for i, line := range strings.Split(text, "\n") {
		lineNum := i + 1
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) < 5 {
			warnings = append(warnings, Warning{
				Line:   lineNum,
				Reason: fmt.Sprintf("expected at least 5 values, got %d", len(tokens)),
			})
			continue
		}

		class, err := strconv.Atoi(tokens[0])
		if err != nil || class < 0 {
			warnings = append(warnings, Warning{
				Line:   lineNum,
				Reason: fmt.Sprintf("invalid class id %q", tokens[0]),
			})
			continue
		}

		rec := Record{Class: class}
		fields := []*float64{&rec.CX, &rec.CY, &rec.W, &rec.H}
		ok := true
		for j, dst := range fields {
			v, err := strconv.ParseFloat(tokens[j+1], 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				warnings = append(warnings, Warning{
					Line:   lineNum,
					Reason: fmt.Sprintf("invalid geometry value %q", tokens[j+1]),
				})
				ok = false
				break
			}
			*dst = v
		}
		if !ok {
			continue
		}

		// Only the first 5 tokens are used; trailing tokens are ignored.
		set = append(set, rec)
	}

	return set, warnings
}
