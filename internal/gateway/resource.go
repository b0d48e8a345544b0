// Package gateway holds one thin function per backend endpoint. Gateways never touch the
// session or transport directly; everything goes through an apiclient.Requester.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/domain"
)

// Upload is a file handed to an upload endpoint.
type Upload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// resource is the page/get/create/update/delete set shared by the admin families.
type resource[T, Q, C, U any] struct {
	r    apiclient.Requester
	base string
}

func newResource[T, Q, C, U any](r apiclient.Requester, base string) resource[T, Q, C, U] {
	return resource[T, Q, C, U]{r: r, base: base}
}

func (s resource[T, Q, C, U]) page(ctx context.Context, q Q) (*domain.PageResult[T], error) {
	return apiclient.Do[*domain.PageResult[T]](ctx, s.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   s.base,
		Query:  q,
	})
}

func (s resource[T, Q, C, U]) get(ctx context.Context, id int64) (*T, error) {
	return apiclient.Do[*T](ctx, s.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   s.item(id),
	})
}

func (s resource[T, Q, C, U]) create(ctx context.Context, payload C) (*T, error) {
	return apiclient.Do[*T](ctx, s.r, apiclient.Request{
		Method: http.MethodPost,
		Path:   s.base,
		Body:   payload,
	})
}

func (s resource[T, Q, C, U]) update(ctx context.Context, id int64, payload U) (*T, error) {
	return apiclient.Do[*T](ctx, s.r, apiclient.Request{
		Method: http.MethodPut,
		Path:   s.item(id),
		Body:   payload,
	})
}

func (s resource[T, Q, C, U]) delete(ctx context.Context, id int64) error {
	return apiclient.Exec(ctx, s.r, apiclient.Request{
		Method: http.MethodDelete,
		Path:   s.item(id),
	})
}

func (s resource[T, Q, C, U]) item(id int64) string {
	return fmt.Sprintf("%s/%d", s.base, id)
}

func upload(ctx context.Context, r apiclient.Requester, path string, file Upload) (*domain.StorageFileVO, error) {
	return apiclient.Do[*domain.StorageFileVO](ctx, r, apiclient.Request{
		Method: http.MethodPost,
		Path:   path,
		File: &apiclient.FilePart{
			FieldName:   "file",
			FileName:    file.FileName,
			ContentType: file.ContentType,
			Reader:      file.Reader,
		},
	})
}
