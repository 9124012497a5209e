package rsidloci

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"io"
	"strings"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZlib
	DataTypeBZip2
	DataTypeLZW
)

// ErrUnixCompress is returned for files made by the Unix compress tool
// (.Z), whose LZW variant the standard library cannot read.
var ErrUnixCompress = errors.New("unix compress (.Z) files are not supported; recompress with gzip")

var byteCodeSigs = []struct {
	dt  DataType
	sig []byte
}{
	{DataTypeGzip, []byte{0x1f, 0x8b, 0x08}},
	{DataTypeZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{DataTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{DataTypeBZip2, []byte{0x42, 0x5a, 0x68}},
	{DataTypeLZW, []byte{0x1f, 0x9d}},

	// zlib: deflate with a 32K window, at each of the four compression
	// levels
	{DataTypeZlib, []byte{0x78, 0x01}},
	{DataTypeZlib, []byte{0x78, 0x5e}},
	{DataTypeZlib, []byte{0x78, 0x9c}},
	{DataTypeZlib, []byte{0x78, 0xda}},
}

var compressionSuffixes = []string{".gz", ".bgz", ".zip", ".xz", ".zz", ".z", ".bz2"}

// DetectDataType attempts to detect the data type of a stream by checking
// against a set of known data types.  Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	n, err := io.ReadFull(r, buff)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		// Too short to carry any of the signatures in full
		err = nil
	}
	if err != nil {
		return DataTypeInvalid, err
	}
	buff = buff[:n]

	// Match known signatures
	for _, v := range byteCodeSigs {
		if bytes.HasPrefix(buff, v.sig) {
			return v.dt, nil
		}
	}

	return DataTypeNoCompression, nil
}

// MaybeDecompressReadCloser sniffs the first bytes of f and, if they match
// a known compression format, returns a reader that decompresses. f is
// rewound before the decompressor is attached.
func MaybeDecompressReadCloser(f ReadSeekCloser) (io.ReadCloser, error) {
	dt, err := DetectDataType(f)
	if err != nil {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	switch dt {
	case DataTypeGzip:
		return gzip.NewReader(f)
	case DataTypeZip:
		return &readCloserFaker{zipstream.NewReader(f)}, nil
	case DataTypeBZip2:
		return &readCloserFaker{bzip2.NewReader(f)}, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return &readCloserFaker{reader}, nil
	case DataTypeZlib:
		return zlib.NewReader(f)
	case DataTypeLZW:
		return nil, ErrUnixCompress
	}

	// No data type detected. For now, we assume this is uncompressed.
	return f, nil
}

// TrimCompressionSuffix removes a trailing compression extension, so that
// "snps.bim.gz" can be recognized as a .bim file.
func TrimCompressionSuffix(path string) string {
	lower := strings.ToLower(path)
	for _, suffix := range compressionSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return path[:len(path)-len(suffix)]
		}
	}

	return path
}

// readCloserFaker "upgrades" readers that don't need to be closed
type readCloserFaker struct {
	io.Reader
}

func (c *readCloserFaker) Close() error {
	return nil
}
