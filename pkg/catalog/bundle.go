package catalog

import (
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/mentora-labs/campus-map/pkg"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/vmihailenco/msgpack/v5"
)

// Bundle is the precomputed map payload written by cmd/mapbundle:
// boundary ring plus fully-derived request projections, so the server
// can start without touching the raw export.
type Bundle struct {
	CampusName string
	Ring       []geo.Point
	Requests   []HelpRequest
	BuiltAt    time.Time
}

func EncodeBundle(b *Bundle) ([]byte, error) {
	raw, err := msgpack.Marshal(b)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "encoding map bundle")
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "creating zstd writer")
	}
	defer enc.Close()

	return enc.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

func DecodeBundle(data []byte) (*Bundle, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "creating zstd reader")
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "decompressing map bundle")
	}

	var b Bundle
	if err := msgpack.Unmarshal(raw, &b); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "decoding map bundle")
	}
	return &b, nil
}

func WriteBundleFile(path string, b *Bundle) error {
	data, err := EncodeBundle(b)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "writing map bundle %s", path)
	}
	return nil
}

func ReadBundleFile(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "reading map bundle %s", path)
	}
	return DecodeBundle(data)
}
