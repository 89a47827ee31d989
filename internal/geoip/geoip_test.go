package geoip

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	results map[string]*Result
	queried []string
}

func (f *fakeResolver) Lookup(addr netip.Addr) (*Result, error) {
	f.queried = append(f.queried, addr.String())
	return f.results[addr.String()], nil
}

func TestFromIPAddress(t *testing.T) {
	resolver := &fakeResolver{results: map[string]*Result{
		"8.8.8.8": {City: "Mountain View", Country: "United States"},
	}}

	result, err := FromIPAddress(resolver, "8.8.8.8")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Mountain View", result.City)
}

func TestFromIPAddressInvalid(t *testing.T) {
	resolver := &fakeResolver{}

	_, err := FromIPAddress(resolver, "not-an-address")
	require.Error(t, err)
	assert.EqualError(t, err, "invalid IP address: not-an-address")
	assert.Empty(t, resolver.queried, "invalid addresses must not reach the resolver")
}

func TestFromIPAddressNonRoutable(t *testing.T) {
	resolver := &fakeResolver{}

	tests := []string{
		"127.0.0.1",
		"10.1.2.3",
		"192.168.0.10",
		"172.16.0.1",
		"169.254.1.1",
		"0.0.0.0",
		"::1",
		"fe80::1",
	}

	for _, raw := range tests {
		result, err := FromIPAddress(resolver, raw)
		require.NoError(t, err, "address %s", raw)
		assert.Nil(t, result, "address %s", raw)
	}
	assert.Empty(t, resolver.queried, "non-routable addresses must not reach the resolver")
}

func TestFromIPAddressNotFound(t *testing.T) {
	resolver := &fakeResolver{}

	result, err := FromIPAddress(resolver, "203.0.113.7")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []string{"203.0.113.7"}, resolver.queried)
}

func TestFromIPAddressNilResolver(t *testing.T) {
	result, err := FromIPAddress(nil, "8.8.8.8")
	require.NoError(t, err)
	assert.Nil(t, result)
}
