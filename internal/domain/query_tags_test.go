package domain

import (
	"reflect"
	"testing"
)

// Filters are decoded from console requests by their query tag and sent upstream by their
// url tag; both must name the same parameter.
func TestQueryTagsMatchURLTags(t *testing.T) {
	queries := []any{
		CarInfoQuery{}, PortalCarQuery{}, CarBrandQuery{}, CarTypeQuery{}, CityQuery{},
		RentalOrderQuery{}, PortalOrderQuery{}, NewsQuery{}, PortalNewsQuery{},
		CommunityQuery{}, SystemUserQuery{}, RoleQuery{}, PageQuery{},
	}
	for _, q := range queries {
		rt := reflect.TypeOf(q)
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if f.Anonymous {
				continue
			}
			name := f.Tag.Get("query")
			if name == "" {
				t.Fatalf("%s.%s has no query tag", rt.Name(), f.Name)
			}
			if got := f.Tag.Get("url"); got != name+",omitempty" {
				t.Fatalf("%s.%s url tag = %q, want %q", rt.Name(), f.Name, got, name+",omitempty")
			}
		}
	}
}
