package controller

import (
	"contract-editor-be/internal/dto"
	"contract-editor-be/internal/pkg/serverutils"
	"contract-editor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPreviewController interface {
	RegisterRoutes(r fiber.Router)
	Variables(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type previewController struct {
	previewService service.IPreviewService
	exportService  service.IExportService
}

func NewPreviewController(previewService service.IPreviewService, exportService service.IExportService) IPreviewController {
	return &previewController{
		previewService: previewService,
		exportService:  exportService,
	}
}

func (c *previewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preview/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":versionId/variables", c.Variables)
	h.Post(":versionId", c.Preview)
	h.Post(":versionId/export", c.Export)
}

func (c *previewController) Variables(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	versionId, _ := uuid.Parse(ctx.Params("versionId"))

	res, err := c.previewService.Variables(ctx.Context(), userId, versionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get variables", res))
}

func (c *previewController) Preview(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	versionId, _ := uuid.Parse(ctx.Params("versionId"))

	var req dto.PreviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.VersionId = versionId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.previewService.Preview(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate preview", res))
}

func (c *previewController) Export(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	versionId, _ := uuid.Parse(ctx.Params("versionId"))

	var req dto.ExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.VersionId = versionId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.exportService.HTML(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success export document", res))
}
