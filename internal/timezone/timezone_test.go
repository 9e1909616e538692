package timezone_test

import (
	"errors"
	"regexp"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/billing/internal/clock"
	"github.com/MrJamesThe3rd/billing/internal/timezone"
)

var (
	re24h = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	re12h = regexp.MustCompile(`^(0[1-9]|1[0-2]):[0-5]\d (AM|PM)$`)
)

func TestResolver_Resolve_Mapping(t *testing.T) {
	r := timezone.NewResolver(clock.System{})

	type testCase struct {
		code     string
		wantCode string
		wantZone string
	}

	tests := []testCase{
		{code: "CO", wantCode: "CO", wantZone: "America/Bogota"},
		{code: "mx", wantCode: "MX", wantZone: "America/Mexico_City"},
		{code: "Ar", wantCode: "AR", wantZone: "America/Argentina/Buenos_Aires"},
		{code: "br", wantCode: "BR", wantZone: "America/Sao_Paulo"},
		{code: "pE", wantCode: "PE", wantZone: "America/Lima"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := r.Resolve(tt.code, false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantZone, got.Timezone)
			assert.Equal(t, tt.wantCode, got.ISOCode)
		})
	}
}

func TestResolver_Resolve_Unsupported(t *testing.T) {
	r := timezone.NewResolver(clock.System{})

	for _, code := range []string{"ZZ", "", "COL", "us"} {
		_, err := r.Resolve(code, false)
		assert.ErrorIs(t, err, timezone.ErrUnsupportedCode, "code %q", code)
	}
}

func TestResolver_Resolve_Formats(t *testing.T) {
	r := timezone.NewResolver(clock.System{})

	got, err := r.Resolve("CO", false)
	require.NoError(t, err)
	assert.Regexp(t, re24h, got.Time)

	got, err = r.Resolve("CO", true)
	require.NoError(t, err)
	assert.Regexp(t, re12h, got.Time)
}

func TestResolver_Resolve_UsesClock(t *testing.T) {
	// 2024-03-10 18:05 UTC is 13:05 in Bogota (UTC-5, no DST).
	fixed := clock.Fixed(time.Date(2024, 3, 10, 18, 5, 0, 0, time.UTC))
	r := timezone.NewResolver(fixed)

	got, err := r.Resolve("co", false)
	require.NoError(t, err)
	assert.Equal(t, timezone.Result{Time: "13:05", ISOCode: "CO", Timezone: "America/Bogota"}, got)

	got, err = r.Resolve("CO", true)
	require.NoError(t, err)
	assert.Equal(t, "01:05 PM", got.Time)
}

func TestResolver_Resolve_ZoneNotFound(t *testing.T) {
	r := timezone.NewResolver(clock.System{},
		timezone.WithZones(map[string]string{"XX": "Nowhere/Atlantis"}),
	)

	_, err := r.Resolve("xx", false)
	assert.ErrorIs(t, err, timezone.ErrZoneNotFound)
	assert.NotErrorIs(t, err, timezone.ErrUnsupportedCode)
}

func TestResolver_Resolve_LoaderError(t *testing.T) {
	r := timezone.NewResolver(clock.System{},
		timezone.WithLoader(func(string) (*time.Location, error) {
			return nil, errors.New("tzdata missing")
		}),
	)

	_, err := r.Resolve("PE", false)
	assert.ErrorIs(t, err, timezone.ErrZoneNotFound)
}

func TestResolver_Codes(t *testing.T) {
	r := timezone.NewResolver(clock.System{})
	assert.Equal(t, []string{"AR", "BR", "CO", "MX", "PE"}, r.Codes())
}
