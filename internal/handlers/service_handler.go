package handlers

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// ImageUploader stores a service picture and removes replaced ones.
type ImageUploader interface {
	Upload(ctx context.Context, ownerID string, r io.Reader) (key, url string, err error)
	Remove(ctx context.Context, key string) error
}

type ServiceHandler struct {
	services shop.ServiceRepository
	images   ImageUploader
	audit    *audit.Dispatcher
}

// NewServiceHandler accepts a nil uploader when image storage is not
// configured; uploads then answer 503.
func NewServiceHandler(
	services shop.ServiceRepository,
	images ImageUploader,
	audit *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{services: services, images: images, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name   string  `json:"name" binding:"required"`
	Kind   string  `json:"kind"`
	Price  float64 `json:"price" binding:"gte=0"`
	Status string  `json:"status"`
}

type UpdateServiceRequest struct {
	Name   *string  `json:"name,omitempty"`
	Kind   *string  `json:"kind,omitempty"`
	Price  *float64 `json:"price,omitempty"`
	Status *string  `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)

	filter, err := shop.NewServiceFilter(c.Query("kind"), c.Query("status"), c.Query("query"))
	if err != nil {
		writeError(c, "list_services", err)
		return
	}

	services, err := h.services.List(c.Request.Context(), barbershopID, filter)
	if err != nil {
		writeError(c, "list_services", err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		BarbershopID: barbershopID,
		Name:         strings.TrimSpace(req.Name),
		Kind:         normalizeKind(req.Kind),
		Price:        req.Price,
		Status:       normalizeStatus(req.Status),
	}

	if err := h.services.Create(c.Request.Context(), &svc); err != nil {
		writeError(c, "create_service", err)
		return
	}

	h.record(c, "service_created", svc.ID, nil)
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)

	svc, err := h.services.Get(c.Request.Context(), barbershopID, c.Param("id"))
	if err != nil {
		writeError(c, "get_service", err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Kind != nil {
		svc.Kind = normalizeKind(*req.Kind)
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Status != nil {
		svc.Status = normalizeStatus(*req.Status)
	}

	if err := h.services.Update(c.Request.Context(), svc); err != nil {
		writeError(c, "update_service", err)
		return
	}

	h.record(c, "service_updated", svc.ID, nil)
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)
	id := c.Param("id")

	var imageKey string
	svc, err := h.services.Get(c.Request.Context(), barbershopID, id)
	switch {
	case err == nil:
		imageKey = svc.ImageKey
	case httperr.IsBusiness(err, "service_not_found"):
		// already gone
	default:
		writeError(c, "get_service", err)
		return
	}

	if err := h.services.Delete(c.Request.Context(), barbershopID, id); err != nil {
		writeError(c, "delete_service", err)
		return
	}

	h.dropImage(c.Request.Context(), imageKey)
	h.record(c, "service_deleted", id, nil)
	c.Status(http.StatusNoContent)
}

// UploadImage takes a multipart "image" field, stores it as WebP and points
// the service at the new object.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		httperr.Unavailable(c, "images_disabled", "Image storage is not configured.")
		return
	}

	barbershopID := c.GetString(middleware.ContextBarbershopID)

	svc, err := h.services.Get(c.Request.Context(), barbershopID, c.Param("id"))
	if err != nil {
		writeError(c, "get_service", err)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Send the picture in the \"image\" field.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Could not read the uploaded file.")
		return
	}
	defer f.Close()

	key, url, err := h.images.Upload(c.Request.Context(), barbershopID, f)
	if err != nil {
		if httperr.Code(err) != "" {
			writeError(c, "upload_image", err)
			return
		}
		log.Println("upload_image:", err)
		httperr.Unavailable(c, "image_store_unavailable", "Could not store the image, try again.")
		return
	}

	oldKey := svc.ImageKey
	svc.ImageKey = key
	svc.ImageURL = url

	if err := h.services.Update(c.Request.Context(), svc); err != nil {
		h.dropImage(c.Request.Context(), key)
		writeError(c, "update_service", err)
		return
	}

	h.dropImage(c.Request.Context(), oldKey)
	h.record(c, "service_image_uploaded", svc.ID, nil)
	c.JSON(http.StatusOK, svc)
}

// --------- Helpers ---------

func (h *ServiceHandler) dropImage(ctx context.Context, key string) {
	if h.images == nil || key == "" {
		return
	}
	if err := h.images.Remove(ctx, key); err != nil {
		log.Println("image cleanup:", err)
	}
}

func (h *ServiceHandler) record(c *gin.Context, action, id string, meta any) {
	h.audit.Dispatch(audit.Event{
		BarbershopID: c.GetString(middleware.ContextBarbershopID),
		UserID:       audit.Ptr(c.GetString(middleware.ContextUserID)),
		Action:       action,
		Entity:       "service",
		EntityID:     audit.Ptr(id),
		Metadata:     meta,
	})
}

// normalizeKind defaults to a plain service. Unknown values pass through and
// are rejected by record validation.
func normalizeKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return models.ServiceKindService
	}
	return kind
}

func normalizeStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "available":
		return models.ServiceAvailable
	case "unavailable":
		return models.ServiceUnavailable
	}
	return status
}
