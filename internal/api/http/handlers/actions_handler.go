package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-console/internal/api/dto"
	"github.com/spec-kit/rental-console/internal/domain"
	"github.com/spec-kit/rental-console/internal/gateway"
	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

// ActionsHandler runs the operations pages offer. Permission checks happen in the router.
type ActionsHandler struct {
	gw       Gateways
	fileBase string
}

// NewActionsHandler constructs handler.
func NewActionsHandler(gw Gateways, fileBase string) *ActionsHandler {
	return &ActionsHandler{gw: gw, fileBase: fileBase}
}

// AuditOrder handles POST /actions/admin/orders/:id/audit.
func (h *ActionsHandler) AuditOrder(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req domain.RentalOrderAuditRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	order, err := h.gw.Orders.Audit(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": order})
}

// UpdateOrder handles PUT /actions/admin/orders/:id.
func (h *ActionsHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req domain.RentalOrderUpdateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	order, err := h.gw.Orders.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": order})
}

// AuditCar handles POST /actions/admin/cars/:id/audit.
func (h *ActionsHandler) AuditCar(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req domain.CarInfoAuditRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	car, err := h.gw.Cars.Audit(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": car})
}

// DeleteCar handles DELETE /actions/admin/cars/:id.
func (h *ActionsHandler) DeleteCar(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.gw.Cars.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UploadCarCover handles POST /actions/admin/cars/cover, a multipart form with a "file" field.
func (h *ActionsHandler) UploadCarCover(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file is required", nil)
	}
	f, err := header.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer f.Close()

	stored, err := h.gw.Cars.UploadCover(c.UserContext(), gateway.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      f,
	})
	if err != nil {
		return err
	}
	if stored == nil {
		stored = &domain.StorageFileVO{}
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.UploadResponse{
		Bucket:    stored.Bucket,
		ObjectKey: stored.ObjectKey,
		URL:       gateway.ResolveFileURL(stored.URL, h.fileBase),
	}})
}

// DeleteNews handles DELETE /actions/admin/news/:id.
func (h *ActionsHandler) DeleteNews(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.gw.News.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// BatchDeleteNews handles POST /actions/admin/news/batch-delete.
func (h *ActionsHandler) BatchDeleteNews(c *fiber.Ctx) error {
	var req dto.BatchDeleteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if len(req.IDs) == 0 {
		return apperrors.NewValidationError("ids are required", nil)
	}
	if err := h.gw.News.BatchDelete(c.UserContext(), req.IDs); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreatePortalOrder handles POST /actions/portal/orders.
func (h *ActionsHandler) CreatePortalOrder(c *fiber.Ctx) error {
	var req domain.RentalOrderCreateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	order, err := h.gw.Portal.CreateOrder(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": order})
}

// CancelPortalOrder handles POST /actions/portal/orders/:id/cancel.
func (h *ActionsHandler) CancelPortalOrder(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req domain.RentalOrderCancelRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &req); err != nil {
			return err
		}
	}
	order, err := h.gw.Portal.CancelOrder(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": order})
}

// PayPortalOrder handles POST /actions/portal/orders/:id/pay.
func (h *ActionsHandler) PayPortalOrder(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req domain.RentalOrderPayRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &req); err != nil {
			return err
		}
	}
	order, err := h.gw.Portal.PayOrder(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": order})
}
