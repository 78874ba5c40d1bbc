package treelock

import "sync"

// Monitor mediates reader/writer access to a single folder.
//
// Admission follows two rules:
//
//   - A reader may proceed immediately iff no writer is active and none is
//     waiting. A writer may proceed immediately iff nothing at all — reader
//     or writer, active or waiting — is ahead of it.
//   - On exit, whoever empties the monitor hands off explicitly to the next
//     holder(s) rather than waking everyone to re-check admission. A reader
//     that empties the monitor favors a waiting writer (so a continuous
//     stream of readers can't starve a writer); a writer that exits favors
//     every waiting reader (so a continuous stream of writers can't starve
//     readers).
//
// All fields are guarded by mu.
type Monitor struct {
	mu sync.Mutex

	readersActive  int
	writersActive  int
	readersWaiting int
	writersWaiting int

	cvRead  sync.Cond
	cvWrite sync.Cond

	readerPass int  // count of readers currently handed off passage
	writerPass bool // a single writer handed off passage
}

// New returns a Monitor ready for use.
func New() *Monitor {
	m := &Monitor{}
	m.cvRead.L = &m.mu
	m.cvWrite.L = &m.mu
	return m
}

// ReaderEnter blocks until the caller may proceed as a reader.
func (m *Monitor) ReaderEnter() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writersActive == 0 && m.writersWaiting == 0 {
		m.readersActive++
		return
	}

	m.readersWaiting++
	for m.readerPass == 0 {
		m.cvRead.Wait()
	}
	m.readerPass--
	m.readersWaiting--
	m.readersActive++
}

// ReaderExit releases reader rights. If this was the last active reader,
// a waiting writer (if any) is handed off ahead of waiting readers.
func (m *Monitor) ReaderExit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readersActive <= 0 {
		panic("treelock: ReaderExit with no active reader")
	}
	m.readersActive--
	if m.readersActive != 0 || m.writersActive != 0 {
		return
	}
	if m.writersWaiting > 0 {
		m.writerPass = true
		m.cvWrite.Signal()
	} else if m.readersWaiting > 0 {
		m.readerPass = m.readersWaiting
		m.cvRead.Broadcast()
	}
}

// WriterEnter blocks until the caller may proceed as the sole writer.
func (m *Monitor) WriterEnter() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readersActive == 0 && m.writersActive == 0 &&
		m.readersWaiting == 0 && m.writersWaiting == 0 {
		m.writersActive = 1
		return
	}

	m.writersWaiting++
	for !m.writerPass {
		m.cvWrite.Wait()
	}
	m.writerPass = false
	m.writersWaiting--
	m.writersActive = 1
}

// WriterExit releases writer rights. Waiting readers are drained ahead of
// any single waiting writer, so writers can never starve readers.
func (m *Monitor) WriterExit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writersActive != 1 {
		panic("treelock: WriterExit with no active writer")
	}
	m.writersActive = 0
	if m.readersWaiting > 0 {
		m.readerPass = m.readersWaiting
		m.cvRead.Broadcast()
	} else if m.writersWaiting > 0 {
		m.writerPass = true
		m.cvWrite.Signal()
	}
}
