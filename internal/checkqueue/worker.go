package checkqueue

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/writingtool-org/checkengine/internal/ruleengine"
)

// MaxCheckPerThread bounds how many entries one runBatch call processes
// before returning to Run's outer loop, which re-checks ctx and starts a
// fresh count (§4.6, MAX_CHECK_PER_THREAD).
const MaxCheckPerThread = 50

// HeapCheckInterval is how often, in processed entries, the worker asks
// its HeapMonitor whether to shed load (§4.6, HEAP_CHECK_INTERVAL).
const HeapCheckInterval = 50

// idleWait is how long the worker sleeps when there is nothing to do:
// no queued entry and no hole to fill.
const idleWait = 20 * time.Millisecond

// Document is the per-document collaborator the worker dispatches entries
// to; the orchestrator (§4.7) implements it over its six result caches.
type Document interface {
	ID() string
	LocaleFor(e Entry) (language.Tag, bool)
	RunEntry(ctx context.Context, e Entry, engine ruleengine.Engine) error
	Reset()
	Dispose()
}

// DocumentRegistry resolves entries' doc ids to live documents and finds
// hole-filling work when the queue runs dry.
type DocumentRegistry interface {
	Document(docID string) (Document, bool)
	// NextHole returns one entry covering an unchecked range in any open
	// document, or false if every document is fully checked.
	NextHole() (Entry, bool)
}

// EngineRegistry resolves a language to a rule engine, falling back to
// ruleengine.Null when the language has none configured.
type EngineRegistry interface {
	EngineFor(tag language.Tag) ruleengine.Engine
}

// HeapMonitor reports whether the process should shed queued work to
// relieve memory pressure.
type HeapMonitor interface {
	UnderPressure() bool
}

// Worker drains a Queue against a DocumentRegistry. It is built to run as
// a single long-lived goroutine (§5: "a single background worker").
type Worker struct {
	queue   *Queue
	docs    DocumentRegistry
	engines EngineRegistry
	heap    HeapMonitor
	logger  logrus.FieldLogger
}

// NewWorker builds a Worker. logger may be nil, in which case
// logrus.StandardLogger() is used.
func NewWorker(queue *Queue, docs DocumentRegistry, engines EngineRegistry, heap HeapMonitor, logger logrus.FieldLogger) *Worker {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Worker{queue: queue, docs: docs, engines: engines, heap: heap, logger: logger}
}

// Run drains the queue until ctx is cancelled, self-restarting its inner
// loop every MaxCheckPerThread entries processed.
func (w *Worker) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		w.runBatch(ctx)
	}
}

// runBatch processes at most MaxCheckPerThread entries (or sleeps once and
// returns if there was nothing to do), so Run's outer loop periodically
// re-checks ctx and restarts with a fresh processed count.
func (w *Worker) runBatch(ctx context.Context) {
	for processed := 0; processed < MaxCheckPerThread; {
		if ctx.Err() != nil {
			return
		}

		entry, ok := w.queue.Pop()
		if !ok {
			entry, ok = w.docs.NextHole()
		}
		if !ok {
			select {
			case <-ctx.Done():
			case <-time.After(idleWait):
			}
			return
		}

		w.dispatch(ctx, entry)
		processed++

		if processed%HeapCheckInterval == 0 && w.heap != nil && w.heap.UnderPressure() {
			w.logger.Warn("checkqueue: under heap pressure, dropping queued entries")
			w.queue.mu.Lock()
			w.queue.entries = nil
			w.queue.mu.Unlock()
		}
	}
}

// InterruptCheck drops docID's pending entries and, if wait is requested
// by the caller, the caller is responsible for joining the worker's
// current dispatch before reusing the document (the worker itself has no
// notion of "current" beyond the single entry in flight).
func (w *Worker) InterruptCheck(docID string) {
	w.queue.InterruptCheck(docID)
}

func (w *Worker) dispatch(ctx context.Context, e Entry) {
	doc, ok := w.docs.Document(e.DocID)
	if !ok {
		return
	}

	switch e.Kind {
	case EntryStop:
		w.queue.InterruptCheck(e.DocID)
		return
	case EntryReset:
		doc.Reset()
		return
	case EntryDispose:
		w.queue.InterruptCheck(e.DocID)
		doc.Dispose()
		return
	}

	tag, ok := doc.LocaleFor(e)
	var engine ruleengine.Engine = ruleengine.Null{}
	if ok && w.engines != nil {
		if resolved := w.engines.EngineFor(tag); resolved != nil {
			engine = resolved
		}
	}

	if err := doc.RunEntry(ctx, e, engine); err != nil {
		w.logger.WithFields(logrus.Fields{
			"doc_id": e.DocID,
			"error":  err,
		}).Warn("checkqueue: entry failed")
	}
}
