package apiclient

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// EncodeQuery turns a filter value into query parameters. It accepts url.Values,
// map[string]string, or a struct (or pointer to one) described by url tags.
func EncodeQuery(v any) (url.Values, error) {
	switch q := v.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		out := make(url.Values, len(q))
		for k, vs := range q {
			out[k] = append([]string(nil), vs...)
		}
		return out, nil
	case map[string]string:
		out := make(url.Values, len(q))
		for k, s := range q {
			out.Set(k, s)
		}
		return out, nil
	}

	values, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	return values, nil
}
