// Package extract derives structured meeting intelligence directly from
// transcript text using pattern matching, with no model call.
//
// The extractor applies ordered regex and keyword tables per concern:
// speaker signatures for participants, assignment phrasing with a
// timeline sub-pass for action items, decision verbs, risk markers, the
// "as a X, I want Y, so that Z" story grammar, and frequency-weighted
// key-phrase clustering for topics. Absence of matches yields empty
// results, never errors.
//
// Extraction is deterministic and idempotent: identical input text yields
// byte-identical output. There is no randomness and no external state, so
// the extractor doubles as the guaranteed fallback of last resort for the
// provider chain.
package extract
