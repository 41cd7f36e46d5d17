package records

import (
	"encoding/json"
	"time"
)

const cloudProviderAttribute = "Cloud_Provider"

// ExtendedAttribute is the value wrapper WAPI uses for extensible
// attributes.
type ExtendedAttribute struct {
	Value string `json:"value"`
}

// Record is one address record as returned by the WAPI field projection.
// LastQueried is epoch seconds; nil means the grid has never seen a query
// for this record.
type Record struct {
	Name               string                       `json:"name"`
	IPv4Addr           string                       `json:"ipv4addr,omitempty"`
	IPv6Addr           string                       `json:"ipv6addr,omitempty"`
	LastQueried        *int64                       `json:"last_queried,omitempty"`
	ExtendedAttributes map[string]ExtendedAttribute `json:"extattrs"`
}

func (r *Record) UnmarshalJSON(data []byte) error {
	type alias Record
	var a alias

	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	// extattrs may be empty but is never absent
	if a.ExtendedAttributes == nil {
		a.ExtendedAttributes = map[string]ExtendedAttribute{}
	}

	*r = Record(a)

	return nil
}

// Address returns whichever address the record carries; record:a rows
// populate ipv4addr, record:aaaa rows populate ipv6addr.
func (r Record) Address() string {
	if r.IPv4Addr != "" {
		return r.IPv4Addr
	}
	return r.IPv6Addr
}

// CloudProvider returns the Cloud_Provider extensible attribute value, or
// empty for on-premises records.
func (r Record) CloudProvider() string {
	return r.ExtendedAttributes[cloudProviderAttribute].Value
}

func (r Record) IsCloud() bool {
	return r.CloudProvider() != ""
}

// Source names where the record lives, for operator-facing output.
func (r Record) Source() string {
	if provider := r.CloudProvider(); provider != "" {
		return provider
	}
	return "On-Prem"
}

func (r Record) LastQueriedTime() (time.Time, bool) {
	if r.LastQueried == nil {
		return time.Time{}, false
	}
	return time.Unix(*r.LastQueried, 0), true
}
