// Package locate resolves a rough position from the client address
// when the browser cannot supply one.
package locate

import (
	"net"

	"github.com/mentora-labs/campus-map/pkg"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"
)

// Resolver looks client addresses up in a GeoIP city database. With
// no database configured every lookup reports nothing and the browse
// view falls back to its status message.
type Resolver struct {
	db  *geoip2.Reader
	log *zap.Logger
}

func NewResolver(log *zap.Logger, dbPath string) (*Resolver, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dbPath == "" {
		log.Warn("geoip database not configured, ip fallback disabled")
		return &Resolver{log: log}, nil
	}

	db, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "opening geoip database %s", dbPath)
	}
	return &Resolver{
		db:  db,
		log: log,
	}, nil
}

func (r *Resolver) Enabled() bool {
	return r.db != nil
}

// Resolve returns an approximate position for the address, or nil
// when the lookup cannot help.
func (r *Resolver) Resolve(addr string) *geo.Point {
	if r.db == nil {
		return nil
	}

	ip := net.ParseIP(addr)
	if ip == nil {
		return nil
	}

	rec, err := r.db.City(ip)
	if err != nil {
		r.log.Debug("geoip lookup failed", zap.String("addr", addr), zap.Error(err))
		return nil
	}
	if rec.Location.Latitude == 0 && rec.Location.Longitude == 0 {
		return nil
	}

	p := geo.NewPoint(rec.Location.Latitude, rec.Location.Longitude)
	return &p
}

func (r *Resolver) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
