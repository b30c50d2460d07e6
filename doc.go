// Package structext converts between indentation structured block text
// and JSON.
//
// [JSONToStructuredText] and [StructuredTextToJSON] are the two
// directions of the converter.  [Convert] converts between any of the
// formats in [format.AllFormats].  [CheckRoundTrip] and
// [CheckJSONRoundTrip] report whether a document survives a round
// trip through the converter unchanged.
//
// All parse failures are [*ir.FormatError] values whose message is fit
// to be shown to a user as is.
package structext
