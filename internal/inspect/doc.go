// Package inspect summarizes a directory before anything is organized.
//
// The report answers the questions a user has before trusting an organize
// run: which categories would fill up, which extensions the table does not
// claim yet (with a suggested category name for each), and what the files
// without extensions actually contain, detected from their magic numbers.
package inspect
