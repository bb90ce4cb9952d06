package interngo_test

import (
	"testing"

	"github.com/hupe1980/interngo"
)

// FuzzInternRoundTrip checks that both backends satisfy lookup(intern(s)) == s
// and idempotent re-interning for arbitrary byte sequences.
func FuzzInternRoundTrip(f *testing.F) {
	f.Add("")
	f.Add("foo")
	f.Add("a\x00b")
	f.Add("\xff\xfe\xfd")
	f.Add("überstraße")

	f.Fuzz(func(t *testing.T, s string) {
		for _, be := range backends {
			in := interngo.New(be.opt, interngo.WithCapacity(8))

			id := in.Intern(s)
			got, err := in.Lookup(id)
			if err != nil {
				t.Fatalf("%s: lookup of fresh id %d failed: %v", be.name, id, err)
			}
			if got != s {
				t.Fatalf("%s: lookup(intern(%q)) = %q", be.name, s, got)
			}
			if again := in.Intern(s); again != id {
				t.Fatalf("%s: re-intern of %q: got id %d, want %d", be.name, s, again, id)
			}
			if in.Len() != 1 {
				t.Fatalf("%s: expected 1 distinct entry, have %d", be.name, in.Len())
			}
		}
	})
}
