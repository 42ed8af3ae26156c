package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/paygateio/paypalsdk/models"
	"github.com/paygateio/paypalsdk/validation"
)

// SortOrder is the list ordering vocabulary.
type SortOrder string

// Sort orders accepted by list endpoints.
const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

var sortOrders = map[SortOrder]bool{SortAscending: true, SortDescending: true}

// AllSortOrders returns both sort orders.
func AllSortOrders() []SortOrder {
	return []SortOrder{SortAscending, SortDescending}
}

// Valid reports whether the order is recognised.
func (o SortOrder) Valid() bool { return sortOrders[o] }

// UnmarshalJSON rejects unrecognised order strings.
func (o *SortOrder) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return validation.NewDecodeError("sort order", "expected a JSON string: %v", err)
	}
	decoded := SortOrder(s)
	if !decoded.Valid() {
		return validation.NewDecodeError("sort order", "unrecognised value %q", s)
	}
	*o = decoded
	return nil
}

// ListParams are the flat query options recognised by list endpoints. Zero
// values are left out of the rendered query entirely.
type ListParams struct {
	Count              int
	StartTime          time.Time
	EndTime            time.Time
	Page               int
	PageSize           int
	TotalCountRequired bool
	SortBy             string
	SortOrder          SortOrder
	// NextPageToken is the resource ID the next page starts from, rendered
	// as next_page_token.
	NextPageToken string
	StartIndex    int
	// Custom pairs are appended verbatim after the recognised options.
	Custom []models.KeyValuePair
}

// Encode renders the parameters as key=value pairs joined with "&", with
// times rendered as ISO-8601.
func (p ListParams) Encode() string {
	var parts []string
	add := func(key, value string) {
		parts = append(parts, key+"="+value)
	}

	if p.Count > 0 {
		add("count", strconv.Itoa(p.Count))
	}
	if !p.StartTime.IsZero() {
		add("start_time", p.StartTime.Format(time.RFC3339))
	}
	if !p.EndTime.IsZero() {
		add("end_time", p.EndTime.Format(time.RFC3339))
	}
	if p.Page > 0 {
		add("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		add("page_size", strconv.Itoa(p.PageSize))
	}
	if p.TotalCountRequired {
		add("total_count_required", "true")
	}
	if p.SortBy != "" {
		add("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		add("sort_order", string(p.SortOrder))
	}
	if p.NextPageToken != "" {
		add("next_page_token", p.NextPageToken)
	}
	if p.StartIndex > 0 {
		add("start_index", strconv.Itoa(p.StartIndex))
	}
	for _, pair := range p.Custom {
		add(pair.Key, pair.Value)
	}
	return strings.Join(parts, "&")
}

// Values renders the parameters as url.Values-compatible pairs for the
// executor. Order of custom pairs is preserved within the encoded string
// form; use Encode when the exact ordering matters.
func (p ListParams) Values() (map[string][]string, error) {
	values := map[string][]string{}
	encoded := p.Encode()
	if encoded == "" {
		return values, nil
	}
	for _, part := range strings.Split(encoded, "&") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("malformed query fragment [%s]", part)
		}
		values[kv[0]] = append(values[kv[0]], kv[1])
	}
	return values, nil
}
