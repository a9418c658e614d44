// Package header provides typed HTTP header fields: parsing of raw field values
// into structured items and injection-safe formatting of those items back to the wire.
//
// # Raw values
//
// A field may occur several times in a message. [Raw] keeps one entry per physical
// occurrence, in order, and is the only input accepted by header parsers.
//
// # Shapes
//
// Concrete headers are not written by hand. They are aliases of a small set of
// generic shapes, parameterized by a zero-size [Field] descriptor and an item type:
//
//   - [List]: zero or more comma separated items, e.g. [Allow];
//   - [NonEmptyList]: one or more comma separated items, e.g. [AcceptLanguage];
//   - [Scalar]: exactly one item, e.g. [ContentType];
//   - [Text]: exactly one free-form text value stored as [Cow], e.g. [UserAgent];
//   - [Unchecked]: a scalar written without the line break scan, e.g. [ContentLength];
//   - [AnyOrList]: the literal "*" or a list of items, e.g. [IfMatch].
//
// Custom headers follow the same pattern:
//
//	type xRequestIDField struct{}
//
//	func (xRequestIDField) Name() header.Name { return "x-request-id" }
//
//	type XRequestID = header.Text[xRequestIDField]
//
//	func init() { header.RegisterType[XRequestID]() }
//
// # Parsing
//
// Use [Parse] with a concrete type, or [ParseNamed] to dispatch on the field name:
//
//	langs, err := header.Parse[header.AcceptLanguage](header.RawOf("en, fr", "de"))
//	hdr, err := header.ParseNamed("Accept-Language", raw)
//
// List shapes merge all lines into one list and skip empty elements.
// Single value shapes require exactly one line.
// Errors wrap one of the sentinels [ErrWrongLineCount], [ErrEmpty], [ErrEmptyItem]
// and [ErrItemParse]; the item error stays reachable through [errors.Is] and [errors.As].
// Fields without a registered parser are returned as [*Extension].
//
// # Formatting
//
// [Formatter] writes "name: value\r\n" lines. Values written with [Formatter.FmtLine]
// have every CR and LF replaced with a space, so no value can inject a header line.
// Only [Unchecked] headers use [Formatter.DangerFmtLine], which skips the scan.
//
// # JSON
//
// All header types serialize to {"name":"<name>","value":"<value>"}, see [ToJSON] and [FromJSON].
package header
