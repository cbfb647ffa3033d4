// Package service is the façade the HTTP handlers call into: it owns
// opening and closing documents, wires each one into the orchestrator and
// the background checkqueue worker, and exposes the check/ignore/AI
// operations as plain Go methods with no HTTP concern in them, mirroring
// the teacher's PackagingService split between transport and logic.
package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/writingtool-org/checkengine/internal/aiadapter"
	"github.com/writingtool-org/checkengine/internal/analyzer"
	"github.com/writingtool-org/checkengine/internal/checkqueue"
	"github.com/writingtool-org/checkengine/internal/doccache"
	"github.com/writingtool-org/checkengine/internal/doclocale"
	"github.com/writingtool-org/checkengine/internal/hostadapter"
	"github.com/writingtool-org/checkengine/internal/orchestrator"
	"github.com/writingtool-org/checkengine/internal/ruleengine"
	"github.com/writingtool-org/checkengine/internal/thesaurus"
)

// DocumentInfo is what the open endpoint reports back about a newly
// registered document.
type DocumentInfo struct {
	ID             string `json:"id"`
	ParagraphCount int    `json:"paragraph_count"`
	Title          string `json:"title,omitempty"`
	HasFootnotes   bool   `json:"has_footnotes"`
	HasEndnotes    bool   `json:"has_endnotes"`
}

// CheckRequest is the JSON body of a check call.
type CheckRequest struct {
	Text            string `json:"text"`
	Locale          string `json:"locale"`
	NodeID          int64  `json:"node_id,omitempty"`
	HasNodeID       bool   `json:"has_node_id,omitempty"`
	AugmentSynonyms bool   `json:"augment_synonyms,omitempty"`
	OverlapDrop     bool   `json:"overlap_drop,omitempty"`
}

// nullEngineRegistry hands out the no-op engine for every language: the
// real grammar/style rule engine is an external collaborator the host
// supplies (§6 item 5), not something this service implements itself.
type nullEngineRegistry struct{}

func (nullEngineRegistry) EngineFor(language.Tag) ruleengine.Engine { return ruleengine.Null{} }

// noHeapPressure reports no pressure; a real deployment wires this to
// runtime.MemStats or a cgroup limit (§4.6 HEAP_CHECK_INTERVAL).
type noHeapPressure struct{}

func (noHeapPressure) UnderPressure() bool { return false }

// CheckService is the operations the HTTP layer drives.
type CheckService struct {
	manager *orchestrator.Manager
	queue   *checkqueue.Queue
	worker  *checkqueue.Worker
	lookup  thesaurus.Lookup
	logger  *slog.Logger
}

// New builds a CheckService with its own background text-level queue and
// worker. Callers must call Run(ctx) once to start the worker loop. The
// worker logs through logrus (as the rest of the checkqueue package does)
// independently of the HTTP layer's slog logger.
func New(lookup thesaurus.Lookup, logger *slog.Logger) *CheckService {
	if logger == nil {
		logger = slog.Default()
	}
	manager := orchestrator.NewManager()
	queue := checkqueue.New()
	worker := checkqueue.NewWorker(queue, manager, nullEngineRegistry{}, noHeapPressure{}, logrus.StandardLogger())
	return &CheckService{manager: manager, queue: queue, worker: worker, lookup: lookup, logger: logger}
}

// Run drives the background worker until ctx is cancelled.
func (s *CheckService) Run(ctx context.Context) {
	s.worker.Run(ctx)
}

// OpenDocument parses a .docx upload, builds its Document, and registers it
// with the manager so the background worker starts filling its text-level
// holes.
func (s *CheckService) OpenDocument(ctx context.Context, data []byte) (*DocumentInfo, error) {
	host, err := hostadapter.OpenBytes(data)
	if err != nil {
		return nil, fmt.Errorf("service: open document: %w", err)
	}

	cache := doccache.New()
	cache.SetHost(host)
	if err := cache.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("service: refresh cache: %w", err)
	}

	an := analyzer.New(cache, host, s.logger)
	docID := uuid.NewString()
	doc := orchestrator.New(docID, cache, an, ruleengine.Null{}, s.aiAdapter(), s.lookup, s.queue, s.queue)
	s.manager.Add(doc)

	return &DocumentInfo{
		ID:             docID,
		ParagraphCount: cache.Len(),
		Title:          host.Title(),
		HasFootnotes:   host.HasFootnotes(),
		HasEndnotes:    host.HasEndnotes(),
	}, nil
}

// aiAdapter returns nil until a remote AI backend is configured; Check
// still works without one (§4.8 is an optional collaborator).
func (s *CheckService) aiAdapter() *aiadapter.Adapter { return nil }

// Check runs get_check_results for an open document.
func (s *CheckService) Check(ctx context.Context, docID string, req CheckRequest) (orchestrator.Result, error) {
	doc, ok := s.manager.Get(docID)
	if !ok {
		return orchestrator.Result{}, fmt.Errorf("service: unknown document %q", docID)
	}
	return doc.GetCheckResults(ctx, orchestrator.Request{
		Request: analyzer.Request{
			Text:            req.Text,
			Locale:          doclocale.Parse(req.Locale),
			HasSortedTextID: req.HasNodeID,
			SortedTextID:    req.NodeID,
		},
		AugmentSynonyms: req.AugmentSynonyms,
		OverlapDrop:     req.OverlapDrop,
	})
}

// Ignore records a permanent ignore for ruleID at charOffset in the
// document's flat paragraph flatIndex.
func (s *CheckService) Ignore(docID string, flatIndex int, ruleID string, charOffset int) error {
	doc, ok := s.manager.Get(docID)
	if !ok {
		return fmt.Errorf("service: unknown document %q", docID)
	}
	doc.Ignores().Insert(flatIndex, ruleID, charOffset)
	return nil
}

// RoundTrip opens a .docx and immediately re-saves it, the packaging
// integrity smoke test the teacher's own packaging service ran: if the
// output is a valid .docx, the OPC layer handled every part correctly.
func (s *CheckService) RoundTrip(data []byte) ([]byte, error) {
	pkg, err := hostadapter.OpenPackageBytes(data)
	if err != nil {
		return nil, fmt.Errorf("service: open package: %w", err)
	}
	var buf bytes.Buffer
	if err := pkg.SaveWriter(&buf); err != nil {
		return nil, fmt.Errorf("service: save package: %w", err)
	}
	return buf.Bytes(), nil
}

// Close disposes a document and drops it from the manager.
func (s *CheckService) Close(docID string) error {
	doc, ok := s.manager.Get(docID)
	if !ok {
		return fmt.Errorf("service: unknown document %q", docID)
	}
	s.worker.InterruptCheck(docID)
	doc.Dispose()
	s.manager.Remove(docID)
	return nil
}
