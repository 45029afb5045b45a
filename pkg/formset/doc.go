// Package formset manages dynamic formset rows over an owned element tree.
//
// Rows are structurally identical sub-forms whose field identifiers embed the
// row position using the "<prefix>-<N>-<field>" convention. A Manager appends
// rows by cloning the last one, keeps indices contiguous after every mutation
// and never drops below its minimum row count. None of the row operations
// return errors: missing attributes are skipped and refused removals are
// reported through the boolean result.
package formset
