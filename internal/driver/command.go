package driver

import (
	"strconv"
	"strings"

	"github.com/KilimcininKorOglu/ostat/internal/btree"
)

// absent is the rendering of every empty result: out-of-range select,
// missing rank key, and empty range enumerations.
const absent = "-1"

// Command names accepted in the commands file.
const (
	cmdSelect        = "select"
	cmdRank          = "rank"
	cmdKeysInRange   = "keysInRange"
	cmdPrimesInRange = "primesInRange"
)

// ExecuteLine runs a single command line and returns its rendered
// result. Malformed lines render as "-1" and are logged at warn level;
// a bad line never aborts the batch.
func (r *Runner) ExecuteLine(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return r.malformed(line)
	}

	switch fields[0] {
	case cmdSelect:
		if len(fields) < 2 {
			return r.malformed(line)
		}
		k, err := strconv.Atoi(fields[1])
		if err != nil {
			return r.malformed(line)
		}
		key, ok := r.tree.Select(k)
		if !ok {
			return absent
		}
		return strconv.FormatUint(key, 10)

	case cmdRank:
		if len(fields) < 2 {
			return r.malformed(line)
		}
		key, ok := parseBound(fields[1])
		if !ok {
			return r.malformed(line)
		}
		rank, found := r.tree.Rank(key)
		if !found {
			return absent
		}
		return strconv.Itoa(rank)

	case cmdKeysInRange:
		lo, hi, ok := r.parseRange(fields)
		if !ok {
			return r.malformed(line)
		}
		return formatKeys(r.tree.RangeKeys(lo, hi))

	case cmdPrimesInRange:
		lo, hi, ok := r.parseRange(fields)
		if !ok {
			return r.malformed(line)
		}
		return formatKeys(r.tree.RangePrimes(lo, hi))

	default:
		return r.malformed(line)
	}
}

func (r *Runner) malformed(line string) string {
	r.log.Warn().Str("line", line).Msg("malformed command line")
	return absent
}

// parseRange extracts the two bounds of a range command.
func (r *Runner) parseRange(fields []string) (lo, hi btree.Key, ok bool) {
	if len(fields) < 3 {
		return 0, 0, false
	}
	lo, ok = parseBound(fields[1])
	if !ok {
		return 0, 0, false
	}
	hi, ok = parseBound(fields[2])
	return lo, hi, ok
}

// parseBound parses a query bound. Stored keys are positive, so a
// negative bound clamps to zero rather than failing: "rank -5" is an
// absent key and "keysInRange -5 10" means [0, 10].
func parseBound(s string) (btree.Key, bool) {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v, true
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil && v < 0 {
		return 0, true
	}
	return 0, false
}

// formatKeys renders keys space-separated, or "-1" when there are none.
func formatKeys(keys []btree.Key) string {
	if len(keys) == 0 {
		return absent
	}
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(k, 10))
	}
	return b.String()
}
