package adapter

import (
	"encoding/json"
	"net/url"
)

// Query is one element of the queries[] list accepted by the document
// listing endpoint.
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// QueryEqual matches documents whose attribute equals one of values.
func QueryEqual(attribute string, values ...any) Query {
	return Query{Method: "equal", Attribute: attribute, Values: values}
}

// QueryLessThan matches documents whose attribute is lower than value.
func QueryLessThan(attribute string, value any) Query {
	return Query{Method: "lessThan", Attribute: attribute, Values: []any{value}}
}

// QueryLimit caps the number of returned documents.
func QueryLimit(limit int) Query {
	return Query{Method: "limit", Values: []any{limit}}
}

// QueryOffset skips the first offset documents.
func QueryOffset(offset int) Query {
	return Query{Method: "offset", Values: []any{offset}}
}

// QueryOrderDesc sorts by attribute, newest first.
func QueryOrderDesc(attribute string) Query {
	return Query{Method: "orderDesc", Attribute: attribute}
}

// String returns the JSON encoding sent on the wire.
func (q Query) String() string {
	b, err := json.Marshal(q)
	if err != nil {
		return ""
	}
	return string(b)
}

func encodeQueries(queries []Query) url.Values {
	values := url.Values{}
	for _, q := range queries {
		values.Add("queries[]", q.String())
	}
	return values
}

// DocumentList is one page of a document listing.
type DocumentList struct {
	Total     int               `json:"total"`
	Documents []json.RawMessage `json:"documents"`
}

// File describes an uploaded file.
type File struct {
	ID           string `json:"$id"`
	BucketID     string `json:"bucketId"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	SizeOriginal int64  `json:"sizeOriginal"`
}
