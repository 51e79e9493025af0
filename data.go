package listparty

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// Data is the transform-data record that parameterizes a pipeline,
// e.g. a search term or filter thresholds. A nil Data means no data
// has ever been set.
type Data map[string]any

// Merge shallow-merges partial into base: existing keys are
// overwritten, new keys added, everything else preserved. Neither
// input is mutated.
func Merge(base, partial Data) Data {
	if base == nil && partial == nil {
		return nil
	}
	out := make(Data, len(base)+len(partial))
	maps.Copy(out, base)
	maps.Copy(out, partial)
	return out
}

// Fingerprint hashes a record in canonical key order. Two records with
// equal keys and (formatted) values fingerprint identically, so
// replacing data with an equal-valued record is not a change.
func Fingerprint(d Data) uint64 {
	if d == nil {
		return 0
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	h := xxhash.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%s\x00%v\x00", k, d[k])
	}
	return h.Sum64()
}

// ChangedKeys reports the keys whose presence or value differs between
// two records. Stages can diff Prev against Data with this to skip
// work when the keys they care about did not move.
func ChangedKeys(prev, cur Data) mapset.Set[string] {
	changed := mapset.NewSet[string]()
	for k, v := range cur {
		pv, ok := prev[k]
		if !ok || !reflect.DeepEqual(pv, v) {
			changed.Add(k)
		}
	}
	for k := range prev {
		if _, ok := cur[k]; !ok {
			changed.Add(k)
		}
	}
	return changed
}

func cloneData(d Data) Data {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}
