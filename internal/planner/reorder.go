// Package planner holds the pure reordering algorithms behind drag-and-drop.
// All functions return fresh slices and never mutate their inputs.
package planner

import "github.com/dayekim/tripmate/internal/domain"

// Reorder moves the element at from to position to within a single day's
// list using extract-then-insert semantics: to is evaluated against the list
// after the removal, matching drop-target behavior. Equal or out-of-range
// indexes are a no-op and return the input unchanged.
func Reorder(places []domain.Place, from, to int) []domain.Place {
	if from == to || from < 0 || from >= len(places) || to < 0 || to >= len(places) {
		return places
	}
	moved := places[from]
	rest := removeAt(places, from)
	return insertAt(rest, to, moved)
}

// Move transfers the element at fromIdx of src into dst at toIdx as one
// atomic operation, re-stamping the moved place's date to dstDate before
// insertion. toIdx is clamped to the destination bounds. ok reports whether
// a move happened; on ok == false both returned slices are the inputs.
func Move(src, dst []domain.Place, fromIdx, toIdx int, dstDate string) (newSrc, newDst []domain.Place, ok bool) {
	if fromIdx < 0 || fromIdx >= len(src) {
		return src, dst, false
	}
	moved := src[fromIdx]
	moved.Date = dstDate

	if toIdx < 0 {
		toIdx = 0
	}
	if toIdx > len(dst) {
		toIdx = len(dst)
	}
	return removeAt(src, fromIdx), insertAt(dst, toIdx, moved), true
}

func removeAt(places []domain.Place, i int) []domain.Place {
	out := make([]domain.Place, 0, len(places)-1)
	out = append(out, places[:i]...)
	return append(out, places[i+1:]...)
}

func insertAt(places []domain.Place, i int, p domain.Place) []domain.Place {
	out := make([]domain.Place, 0, len(places)+1)
	out = append(out, places[:i]...)
	out = append(out, p)
	return append(out, places[i:]...)
}
