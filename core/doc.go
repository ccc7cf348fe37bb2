// Package core implements the lexical and object-syntax core of the
// PDF object model (ISO 32000 §7): a Tokenizer turning a byte stream
// into typed Token values, and an ObjectParser assembling those tokens
// into a tree of PdfObject values. It does not locate cross-reference
// tables, resolve indirect references, or materialize stream bodies —
// those remain the responsibility of an outer PDF file reader.
package core
