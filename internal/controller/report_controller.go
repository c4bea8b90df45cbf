package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jubyaid123/hemovita/internal/dto"
	"github.com/jubyaid123/hemovita/internal/pkg/serverutils"
	"github.com/jubyaid123/hemovita/internal/service"
	"github.com/jubyaid123/hemovita/pkg/graph"
)

type IReportController interface {
	RegisterRoutes(api fiber.Router)
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(api fiber.Router) {
	report := api.Group("/report/v1")
	report.Post("/", c.Generate)
}

// Generate classifies a lab panel and returns the full recommendation set:
// status labels, supplement plan, follow-up schedule, food suggestions and
// the narrative report text.
func (c *reportController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	resp, err := c.reportService.Generate(ctx.Context(), &req)
	if err != nil {
		return mapNetworkError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Report generated", resp))
}

// mapNetworkError gives the two relationship-table failure modes distinct
// 503 messages so operators can tell a deploy problem (file missing) from a
// data problem (file present but empty).
func mapNetworkError(err error) error {
	switch {
	case errors.Is(err, graph.ErrSourceMissing):
		return fiber.NewError(fiber.StatusServiceUnavailable, "interaction network unavailable: relationship table not found")
	case errors.Is(err, graph.ErrSourceEmpty):
		return fiber.NewError(fiber.StatusServiceUnavailable, "interaction network unavailable: relationship table has no data rows")
	default:
		return err
	}
}
