// Package geoip resolves IP addresses to coarse geographic locations using a
// MaxMind city database.
package geoip

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/oschwald/geoip2-golang"
)

// Result is the location information returned for a routable address.
type Result struct {
	City        string
	Continent   string
	Coordinates [2]float64 // latitude, longitude
	Country     string
	PostalCode  string
	TimeZone    string
}

// Resolver looks up the location of a single address. A lookup that finds no
// record returns nil without error.
type Resolver interface {
	Lookup(addr netip.Addr) (*Result, error)
}

// MaxMind resolves addresses against a GeoLite2 or GeoIP2 city database file.
type MaxMind struct {
	reader *geoip2.Reader
}

// OpenMaxMind opens a city database file.
func OpenMaxMind(path string) (*MaxMind, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip database: %w", err)
	}
	return &MaxMind{reader: reader}, nil
}

func (m *MaxMind) Lookup(addr netip.Addr) (*Result, error) {
	record, err := m.reader.City(net.IP(addr.AsSlice()))
	if err != nil {
		return nil, err
	}
	if record.Country.IsoCode == "" && record.City.GeoNameID == 0 {
		return nil, nil
	}
	return &Result{
		City:        record.City.Names["en"],
		Continent:   record.Continent.Names["en"],
		Coordinates: [2]float64{record.Location.Latitude, record.Location.Longitude},
		Country:     record.Country.Names["en"],
		PostalCode:  record.Postal.Code,
		TimeZone:    record.Location.TimeZone,
	}, nil
}

func (m *MaxMind) Close() error {
	return m.reader.Close()
}

// FromIPAddress resolves the textual address through the resolver.
// Non-routable addresses (loopback, private, link-local) and addresses with no
// database record resolve to nil. A syntactically invalid address is an error.
func FromIPAddress(resolver Resolver, raw string) (*Result, error) {
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid IP address: %s", raw)
	}
	if !isRoutable(addr) {
		return nil, nil
	}
	if resolver == nil {
		return nil, nil
	}
	return resolver.Lookup(addr)
}

func isRoutable(addr netip.Addr) bool {
	return !(addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() || addr.IsUnspecified())
}
