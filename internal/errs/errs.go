// Package errs models the error kinds of §7 as a small typed hierarchy
// instead of ad-hoc strings, so callers can branch on errors.As instead of
// string-matching a message.
package errs

import "fmt"

// Kind identifies which §7 disposition applies to an Error.
type Kind int

const (
	// KindTransientHostCall: a host cursor/paragraph call returned null or
	// threw. The caller logs and skips the request without mutating cache.
	KindTransientHostCall Kind = iota
	// KindCacheDesync: heuristic mapping could not align per-kind counts
	// even after the repair pass. The cache is marked dirty.
	KindCacheDesync
	// KindFootnoteOutOfRange: is_equal_text received an impossible offset.
	KindFootnoteOutOfRange
	// KindRemoteTimeout: the AI backend did not respond in time.
	KindRemoteTimeout
	// KindRemoteBadResponse: the AI backend responded but the response was
	// unusable (empty, malformed).
	KindRemoteBadResponse
	// KindRuleEngineFailure: the grammar rule engine panicked or returned an
	// error mid-run.
	KindRuleEngineFailure
	// KindDiskIO: a cache-file read failed at the I/O layer.
	KindDiskIO
	// KindConfigFingerprintMismatch: a saved blob's fingerprint disagrees
	// with the current configuration.
	KindConfigFingerprintMismatch
)

func (k Kind) String() string {
	switch k {
	case KindTransientHostCall:
		return "transient_host_call"
	case KindCacheDesync:
		return "cache_desync"
	case KindFootnoteOutOfRange:
		return "footnote_out_of_range"
	case KindRemoteTimeout:
		return "remote_timeout"
	case KindRemoteBadResponse:
		return "remote_bad_response"
	case KindRuleEngineFailure:
		return "rule_engine_failure"
	case KindDiskIO:
		return "disk_io"
	case KindConfigFingerprintMismatch:
		return "config_fingerprint_mismatch"
	default:
		return "unknown"
	}
}

// Error is the base error type for all checkengine errors. It carries a Kind
// so handlers can decide the §7 disposition without parsing messages, and it
// implements Unwrap so errors.Is/errors.As traverse the chain.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.cause }

// New builds an Error of the given kind. cause may be nil.
func New(kind Kind, cause error, msg string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(msg, args...), cause: cause}
}

// Is reports whether err is a checkengine error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if ce, ok := err.(*Error); ok {
		e = ce
	} else {
		return false
	}
	return e.Kind == kind
}
