package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/domain"
)

// recorder answers every call with data and keeps the requests it saw.
type recorder struct {
	data     string
	requests []apiclient.Request
}

func (r *recorder) Send(_ context.Context, req apiclient.Request) (*apiclient.Result, error) {
	r.requests = append(r.requests, req)
	res := &apiclient.Result{Status: http.StatusOK}
	if r.data != "" {
		res.Data = json.RawMessage(r.data)
	}
	return res, nil
}

func (r *recorder) last(t *testing.T) apiclient.Request {
	t.Helper()
	if len(r.requests) == 0 {
		t.Fatalf("no request sent")
	}
	return r.requests[len(r.requests)-1]
}

func bodyJSON(t *testing.T, req apiclient.Request) string {
	t.Helper()
	b, err := json.Marshal(req.Body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return string(b)
}

func TestGatewayEndpoints(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		call   func(r apiclient.Requester) error
		method string
		path   string
		body   string
	}{
		{
			name: "login",
			call: func(r apiclient.Requester) error {
				_, err := NewAuthGateway(r).Login(ctx, domain.LoginRequest{UserAccount: "ada", UserPassword: "pw"})
				return err
			},
			method: http.MethodPost, path: "/user/login", body: `{"userAccount":"ada","userPassword":"pw"}`,
		},
		{
			name: "logout",
			call: func(r apiclient.Requester) error {
				return NewAuthGateway(r).Logout(ctx)
			},
			method: http.MethodPost, path: "/user/logout", body: "null",
		},
		{
			name: "current user",
			call: func(r apiclient.Requester) error {
				_, err := NewAuthGateway(r).Current(ctx)
				return err
			},
			method: http.MethodGet, path: "/user/current", body: "null",
		},
		{
			name: "car audit",
			call: func(r apiclient.Requester) error {
				_, err := NewCarGateway(r).Audit(ctx, 7, domain.CarInfoAuditRequest{AuditStatus: 1})
				return err
			},
			method: http.MethodPut, path: "/resource/cars/7/audit", body: `{"auditStatus":1}`,
		},
		{
			name: "car delete",
			call: func(r apiclient.Requester) error {
				return NewCarGateway(r).Delete(ctx, 7)
			},
			method: http.MethodDelete, path: "/resource/cars/7", body: "null",
		},
		{
			name: "brand get",
			call: func(r apiclient.Requester) error {
				_, err := NewBrandGateway(r).Get(ctx, 3)
				return err
			},
			method: http.MethodGet, path: "/resource/brands/3", body: "null",
		},
		{
			name: "city page",
			call: func(r apiclient.Requester) error {
				_, err := NewCityGateway(r).Page(ctx, domain.CityQuery{})
				return err
			},
			method: http.MethodGet, path: "/resource/cities", body: "null",
		},
		{
			name: "type delete",
			call: func(r apiclient.Requester) error {
				return NewTypeGateway(r).Delete(ctx, 2)
			},
			method: http.MethodDelete, path: "/resource/types/2", body: "null",
		},
		{
			name: "order audit",
			call: func(r apiclient.Requester) error {
				_, err := NewRentalOrderGateway(r).Audit(ctx, 9, domain.RentalOrderAuditRequest{})
				return err
			},
			method: http.MethodPut, path: "/rental/orders/9/audit",
		},
		{
			name: "news batch delete",
			call: func(r apiclient.Requester) error {
				return NewNewsGateway(r).BatchDelete(ctx, []int64{1, 2})
			},
			method: http.MethodPost, path: "/content/news/batch-delete", body: `{"newsIds":[1,2]}`,
		},
		{
			name: "dashboard",
			call: func(r apiclient.Requester) error {
				_, err := NewDashboardGateway(r).Overview(ctx)
				return err
			},
			method: http.MethodGet, path: "/system/dashboard/overview", body: "null",
		},
		{
			name: "portal cancel",
			call: func(r apiclient.Requester) error {
				_, err := NewPortalGateway(r).CancelOrder(ctx, 5, domain.RentalOrderCancelRequest{CancelReason: "plans changed"})
				return err
			},
			method: http.MethodPost, path: "/portal/orders/5/cancel", body: `{"cancelReason":"plans changed"}`,
		},
		{
			name: "portal pay",
			call: func(r apiclient.Requester) error {
				_, err := NewPortalGateway(r).PayOrder(ctx, 5, domain.RentalOrderPayRequest{PaymentChannel: "alipay"})
				return err
			},
			method: http.MethodPost, path: "/portal/orders/5/pay", body: `{"paymentChannel":"alipay"}`,
		},
		{
			name: "answers",
			call: func(r apiclient.Requester) error {
				_, err := NewCommunityGateway(r).ListAnswers(ctx, 4)
				return err
			},
			method: http.MethodGet, path: "/community/questions/4/answers", body: "null",
		},
		{
			name: "delete answer",
			call: func(r apiclient.Requester) error {
				return NewCommunityGateway(r).DeleteAnswer(ctx, 11)
			},
			method: http.MethodDelete, path: "/community/answers/11", body: "null",
		},
		{
			name: "user status",
			call: func(r apiclient.Requester) error {
				return NewSystemGateway(r).UpdateUserStatus(ctx, 8, 0)
			},
			method: http.MethodPut, path: "/system/users/8/status", body: `{"status":0}`,
		},
		{
			name: "assign no roles",
			call: func(r apiclient.Requester) error {
				return NewSystemGateway(r).AssignUserRoles(ctx, 8, nil)
			},
			method: http.MethodPut, path: "/system/users/8/roles", body: `{"roleIds":[]}`,
		},
		{
			name: "assign permissions",
			call: func(r apiclient.Requester) error {
				return NewSystemGateway(r).AssignRolePermissions(ctx, 2, []int64{10})
			},
			method: http.MethodPut, path: "/system/roles/2/permissions", body: `{"permissionIds":[10]}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			if err := tc.call(rec); err != nil {
				t.Fatalf("call: %v", err)
			}
			req := rec.last(t)
			if req.Method != tc.method || req.Path != tc.path {
				t.Fatalf("sent %s %s, want %s %s", req.Method, req.Path, tc.method, tc.path)
			}
			if tc.body != "" {
				if got := bodyJSON(t, req); got != tc.body {
					t.Fatalf("body = %s, want %s", got, tc.body)
				}
			}
		})
	}
}

func TestGatewayDecodesPayload(t *testing.T) {
	ctx := context.Background()

	rec := &recorder{data: `"42"`}
	id, err := NewAuthGateway(rec).Register(ctx, domain.RegisterRequest{UserAccount: "ada"})
	if err != nil || id != 42 {
		t.Fatalf("register id = %d err=%v", id, err)
	}

	rec = &recorder{data: `{"total":"3","current":1,"pageSize":10,"records":[{"id":1,"title":"a"}]}`}
	page, err := NewNewsGateway(rec).Page(ctx, domain.NewsQuery{})
	if err != nil {
		t.Fatalf("news page: %v", err)
	}
	if page.Total != 3 || page.PageSize != 10 || len(page.Records) != 1 || page.Records[0].Title != "a" {
		t.Fatalf("unexpected page %+v", page)
	}

	rec = &recorder{}
	car, err := NewCarGateway(rec).Get(ctx, 1)
	if err != nil || car != nil {
		t.Fatalf("absent payload should decode to nil, got %+v err=%v", car, err)
	}
}

func TestUploadSendsFilePart(t *testing.T) {
	rec := &recorder{data: `{"bucket":"brands","objectKey":"b/1.png","url":"/files/b/1.png"}`}
	file, err := NewBrandGateway(rec).UploadLogo(context.Background(), Upload{
		FileName:    "logo.png",
		ContentType: "image/png",
		Reader:      strings.NewReader("png"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	req := rec.last(t)
	if req.Path != "/resource/brands/logo/upload" || req.File == nil || req.File.FieldName != "file" || req.File.FileName != "logo.png" {
		t.Fatalf("unexpected upload request %+v", req)
	}
	if file.ObjectKey != "b/1.png" {
		t.Fatalf("unexpected file %+v", file)
	}
}
