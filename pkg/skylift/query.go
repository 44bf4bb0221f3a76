package skylift

import (
	"net/url"
	"strconv"
)

// ListParams are the pagination controls shared by every list operation. The
// zero value requests the provider's defaults.
type ListParams struct {
	// Page selects the result page, starting at 1.
	Page int
	// PerPage sets the page size; the provider caps it at 50.
	PerPage int
}

// ToValues encodes the pagination controls as query parameters.
func (p ListParams) ToValues() url.Values {
	vals := url.Values{}
	addIntParam(vals, "page", p.Page)
	addIntParam(vals, "per_page", p.PerPage)

	return vals
}

// addStringParam includes key only when the value is present.
func addStringParam(vals url.Values, key, value string) {
	if value != "" {
		vals.Set(key, value)
	}
}

// addIntParam includes key only when the value is positive.
func addIntParam(vals url.Values, key string, value int) {
	if value > 0 {
		vals.Set(key, strconv.Itoa(value))
	}
}

// addInt64Param includes key only when the value is positive.
func addInt64Param(vals url.Values, key string, value int64) {
	if value > 0 {
		vals.Set(key, strconv.FormatInt(value, 10))
	}
}

// addBoolParam includes key only when the flag is set.
func addBoolParam(vals url.Values, key string, value bool) {
	if value {
		vals.Set(key, strconv.FormatBool(value))
	}
}

// addRepeatedParam adds one key instance per value, preserving caller order.
// The provider expects multi-value filters as repeated keys, never as a
// comma-joined string.
func addRepeatedParam[S ~string](vals url.Values, key string, values []S) {
	for _, value := range values {
		vals.Add(key, string(value))
	}
}

// addRepeatedInt64Param adds one key instance per id, preserving caller order.
func addRepeatedInt64Param(vals url.Values, key string, values []int64) {
	for _, value := range values {
		vals.Add(key, strconv.FormatInt(value, 10))
	}
}
