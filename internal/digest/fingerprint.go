package digest

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/slices"

	"modthree/internal/domain"
)

// fingerprintBytes is the number of digest bytes kept (20 hex chars).
const fingerprintBytes = 10

// Fingerprint returns a short hex fingerprint of def's 5-tuple.
//
// It hashes a canonical encoding with BLAKE2b-256 and truncates to 10 bytes.
func Fingerprint(def domain.Definition) domain.Fingerprint {
	sum := blake2b.Sum256(canonical(def))
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintBytes]))
}

// Verify reports whether def carries the fingerprint of its own content.
func Verify(def domain.Definition) bool {
	return def.Fingerprint != "" && def.Fingerprint == Fingerprint(def)
}

// canonical lays the tuple out as NUL-separated sorted fields, one section per
// line, so that no two distinct tuples share an encoding.
func canonical(def domain.Definition) []byte {
	var b strings.Builder
	section := func(label string, items []string) {
		sorted := slices.Clone(items)
		slices.Sort(sorted)
		sorted = slices.Compact(sorted)
		b.WriteString(label)
		for _, it := range sorted {
			b.WriteByte(0)
			b.WriteString(it)
		}
		b.WriteByte('\n')
	}

	rows := make([]string, len(def.Transitions))
	for i, t := range def.Transitions {
		rows[i] = t.From + "\x01" + t.On + "\x01" + t.To
	}

	section("states", def.States)
	section("alphabet", def.Alphabet)
	section("initial", []string{def.Initial})
	section("accepting", def.Accepting)
	section("transitions", rows)
	return []byte(b.String())
}
