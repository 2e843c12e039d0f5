package journal

import "time"

// Operation is one recorded move. Source is where the file came from;
// Destination is where the executor actually put it, suffix and all.
type Operation struct {
	ID          int64
	Seq         int
	Source      string
	Destination string
	Size        int64
	MovedAt     time.Time
}

// Batch is the unit of undo: every move one organize run recorded against a
// directory, in execution order.
type Batch struct {
	ID         int64
	BatchID    string
	Directory  string
	CreatedAt  time.Time
	Operations []Operation
}

// TotalBytes sums the recorded sizes of the batch's operations.
func (b *Batch) TotalBytes() int64 {
	var total int64
	for _, op := range b.Operations {
		total += op.Size
	}
	return total
}

// Summary describes one directory's undoable batch without its operations.
type Summary struct {
	Directory  string
	BatchID    string
	CreatedAt  time.Time
	Operations int
	Bytes      int64
}
