package apiclient

import (
	"context"
	"encoding/json"

	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

// Do sends req and decodes the unwrapped payload into T. An absent payload yields the zero
// value of T without error.
func Do[T any](ctx context.Context, r Requester, req Request) (T, error) {
	var out T
	res, err := r.Send(ctx, req)
	if err != nil {
		return out, err
	}
	if len(res.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(res.Data, &out); err != nil {
		var zero T
		return zero, apperrors.NewInvalidResponse(err)
	}
	return out, nil
}

// Exec sends req to an endpoint whose payload is ignored.
func Exec(ctx context.Context, r Requester, req Request) error {
	_, err := r.Send(ctx, req)
	return err
}
