// Package errs defines the sentinel error values returned by the yxdb codecs.
//
// Every exported error below corresponds to one of the error kinds in the
// file format contract (header, schema, block, record, index, text and I/O
// failures) or to misuse of a writer or stream. Callers should use errors.Is against these sentinels; stages
// wrap them with fmt.Errorf("%w: ...") to attach stage-specific context such
// as a byte offset.
package errs

import "errors"

var (
	// Header errors.
	ErrInvalidMagic     = errors.New("invalid file magic number")
	ErrTruncatedHeader  = errors.New("truncated header")
	ErrInvalidHeaderLen = errors.New("header is not exactly 512 bytes")

	// Schema errors.
	ErrMalformedSchema     = errors.New("malformed schema XML")
	ErrUnknownFieldType    = errors.New("unknown field type")
	ErrMissingFieldSize    = errors.New("field type requires a size")
	ErrUnexpectedFieldSize = errors.New("field type does not accept a size")
	ErrMissingFieldScale   = errors.New("fixed decimal field requires a scale")
	ErrUnexpectedScale     = errors.New("only fixed decimal fields accept a scale")
	ErrInvalidFieldName    = errors.New("field name contains invalid characters")
	ErrNoRecordInfo        = errors.New("schema contains no RecordInfo element")
	ErrMultipleRecordInfo  = errors.New("schema contains more than one RecordInfo element")
	ErrEmptyRecordInfo     = errors.New("RecordInfo must declare at least one field")

	// Block errors.
	ErrTruncatedBlock      = errors.New("truncated block")
	ErrBlockLengthOverflow = errors.New("block length prefix exceeds remaining range")
	ErrDecompressFailed    = errors.New("block decompression failed")
	ErrDecompressTooLarge  = errors.New("decompressed block exceeds buffer size")
	ErrCompressFailed      = errors.New("block compression failed")

	// Record errors.
	ErrFieldCountMismatch = errors.New("record field count does not match schema")
	ErrFieldDecode        = errors.New("failed to decode field value")
	ErrFieldEncode        = errors.New("failed to encode field value")
	ErrTruncatedCursor    = errors.New("truncated record cursor")
	ErrInvalidCodeUnits   = errors.New("invalid UTF-16 code units")

	// Index errors.
	ErrNonMonotoneIndex    = errors.New("block index offsets are not strictly increasing")
	ErrIndexCountMismatch  = errors.New("block index count does not match trailer length")
	ErrIndexTruncated      = errors.New("truncated block index")

	// Text (CSV) errors.
	ErrMalformedCSVHeader = errors.New("malformed CSV schema header")
	ErrMalformedCSVType   = errors.New("malformed CSV field type")
	ErrCSVFieldParse      = errors.New("failed to parse CSV field value")

	// I/O errors.
	ErrIO = errors.New("underlying file system failure")

	// Writer/stream errors.
	ErrWriterClosed     = errors.New("writer already finalized")
	ErrNotSeekable      = errors.New("underlying writer does not support seeking")
	ErrNoRecordsWritten = errors.New("no records were written")
)
