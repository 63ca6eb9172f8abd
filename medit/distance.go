// Package medit computes weighted minimum edit distances between
// strings: insertions and deletions cost 1, substitutions cost 2, a
// match is free. On top of the scalar distance it offers the full cost
// table, order-preserving batch computation, and a dictionary-backed
// suggester, plus HTTP handlers exposing all of it.
package medit

// Distance returns the minimum edit distance between source and
// target under the default cost model, comparing Unicode code points.
//
// Both arguments may be empty; the distance to the empty string is
// the length of the other side.
func Distance(source, target string) int {
	return DefaultCosts.Distance(source, target)
}

// DistanceBytes is like Distance but compares raw bytes, which is
// cheaper and agrees with Distance on pure-ASCII input.
func DistanceBytes(source, target string) int {
	return DefaultCosts.DistanceBytes(source, target)
}
