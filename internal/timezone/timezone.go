package timezone

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/billing/internal/clock"
)

var (
	// ErrUnsupportedCode is returned for ISO codes outside the resolver's mapping.
	ErrUnsupportedCode = errors.New("unsupported iso code")
	// ErrZoneNotFound is returned when a mapped zone cannot be loaded from the tz database.
	ErrZoneNotFound = errors.New("zone not found")
)

const (
	layout24h = "15:04"
	layout12h = "03:04 PM"
)

// DefaultZones maps ISO country codes to their IANA timezone.
var DefaultZones = map[string]string{
	"CO": "America/Bogota",
	"MX": "America/Mexico_City",
	"AR": "America/Argentina/Buenos_Aires",
	"BR": "America/Sao_Paulo",
	"PE": "America/Lima",
}

// Result is the current time in a country's zone.
type Result struct {
	Time     string
	ISOCode  string
	Timezone string
}

// LoadFunc loads a location by IANA name.
type LoadFunc func(name string) (*time.Location, error)

type Resolver struct {
	zones map[string]string
	clock clock.Clock
	load  LoadFunc
}

type Option func(*Resolver)

// WithZones replaces the default code to zone mapping.
func WithZones(zones map[string]string) Option {
	return func(r *Resolver) { r.zones = maps.Clone(zones) }
}

// WithLoader replaces time.LoadLocation.
func WithLoader(load LoadFunc) Option {
	return func(r *Resolver) { r.load = load }
}

func NewResolver(c clock.Clock, opts ...Option) *Resolver {
	r := &Resolver{
		zones: maps.Clone(DefaultZones),
		clock: c,
		load:  time.LoadLocation,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve formats the current time in the zone mapped to isoCode.
// The code is matched case-insensitively.
func (r *Resolver) Resolve(isoCode string, use12Hour bool) (Result, error) {
	// Casers are stateful and must not be shared between goroutines.
	code := cases.Upper(language.Und).String(isoCode)

	name, ok := r.zones[code]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedCode, isoCode)
	}

	loc, err := r.load(name)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrZoneNotFound, name, err)
	}

	layout := layout24h
	if use12Hour {
		layout = layout12h
	}

	return Result{
		Time:     r.clock.Now().In(loc).Format(layout),
		ISOCode:  code,
		Timezone: name,
	}, nil
}

// Codes returns the supported ISO codes in alphabetical order.
func (r *Resolver) Codes() []string {
	return slices.Sorted(maps.Keys(r.zones))
}
