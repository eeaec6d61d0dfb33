package audit

import (
	"reflect"
	"strings"
)

// ComputeDiff produces the field-level difference between two snapshots.
//
// Tracked top-level fields are compared by deep structural equality; nested
// paths ("metadata.lat") are read off both snapshots' nested object,
// tolerating either side being absent, and emitted under their dotted key.
// Only fields whose values actually differ appear in the result.
//
// When one side is absent entirely the per-field comparison is bypassed:
// the whole present snapshot is emitted under AllFieldsKey, paired with
// null on the missing side.
func ComputeDiff(oldSnap, newSnap Snapshot, tracked, nested []string) Diff {
	diff := Diff{}

	if oldSnap == nil && newSnap == nil {
		return diff
	}
	if oldSnap == nil {
		diff[AllFieldsKey] = Change{Old: nil, New: cloneSnapshot(newSnap)}
		return diff
	}
	if newSnap == nil {
		diff[AllFieldsKey] = Change{Old: cloneSnapshot(oldSnap), New: nil}
		return diff
	}

	for _, field := range tracked {
		oldVal, newVal := oldSnap[field], newSnap[field]
		if !reflect.DeepEqual(oldVal, newVal) {
			diff[field] = Change{Old: oldVal, New: newVal}
		}
	}

	for _, path := range nested {
		oldVal := nestedValue(oldSnap, path)
		newVal := nestedValue(newSnap, path)
		if !reflect.DeepEqual(oldVal, newVal) {
			diff[path] = Change{Old: oldVal, New: newVal}
		}
	}

	return diff
}

// nestedValue reads a dotted path ("metadata.lat") off a snapshot. A
// missing parent, a parent that is not an object, or a missing sub-field
// all read as nil.
func nestedValue(snap Snapshot, path string) interface{} {
	parent, sub, found := strings.Cut(path, ".")
	if !found {
		return snap[path]
	}

	inner, ok := snap[parent].(map[string]interface{})
	if !ok {
		if typed, isSnap := snap[parent].(Snapshot); isSnap {
			return typed[sub]
		}
		return nil
	}
	return inner[sub]
}

func cloneSnapshot(snap Snapshot) Snapshot {
	clone := make(Snapshot, len(snap))
	for k, v := range snap {
		clone[k] = v
	}
	return clone
}
