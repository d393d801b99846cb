// Package bridge exposes a dom document engine to a host runtime through
// opaque integer handles.
//
// Every engine object a host can hold (documents and snapshots of nodes,
// elements, and attributes) is owned by a handle.Table and addressed by a
// handle.Handle. Creation entry points transfer ownership of a new handle
// to the host; the matching Drop entry point consumes it exactly once.
// Using a handle after it was dropped reports a null handle error.
//
// # Entry points
//
// Lifecycle:
//
//	DocumentEmpty, DocumentParse, DocumentDrop,
//	NodeDrop, ElementDrop, AttributeDrop
//
// Queries read a document or a snapshot:
//
//	DocumentRoot, DocumentGetNode, DocumentGetNodeLeafText,
//	DocumentChildren, DocumentParent, DocumentString, DocumentNodeString,
//	DocumentQuery, NodeType, NodeLeafText, NodeElement,
//	ElementNamespace, ElementTag, ElementAttributes,
//	AttributeName, AttributeNamespace, AttributeValue
//
// Mutation diffs the document against new content and applies the patches
// in an editing session, calling a ChangeHandler once per structural
// change in patch order:
//
//	DocumentMerge, DocumentMergeFragmentJSON
//
// # Errors
//
// Entry points return *Error values carrying one of the Code constants.
// Parse failures of DocumentParse are returned as data in ParseResult.
// A panic inside an entry point is recovered and returned as an
// internal_fault error; the entry point then returns its zero value. A
// configured Reporter sees every returned error on the calling goroutine
// before the entry point returns.
//
// # Merge faults
//
// When a patch fails to apply or the ChangeHandler fails, the remaining
// patches are skipped and the editing session is closed. Patches already
// applied, and already reported to the handler, are kept.
//
// # Concurrency
//
// Entry points run synchronously on the calling goroutine. Handle
// bookkeeping is safe for concurrent use, so distinct documents may be
// used from different goroutines. Calls on one document must be
// serialised by the host.
package bridge
