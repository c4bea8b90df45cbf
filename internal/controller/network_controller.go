package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jubyaid123/hemovita/internal/dto"
	"github.com/jubyaid123/hemovita/internal/pkg/serverutils"
	"github.com/jubyaid123/hemovita/internal/service"
)

type INetworkController interface {
	RegisterRoutes(api fiber.Router)
}

type networkController struct {
	graphService service.IGraphService
}

func NewNetworkController(graphService service.IGraphService) INetworkController {
	return &networkController{
		graphService: graphService,
	}
}

func (c *networkController) RegisterRoutes(api fiber.Router) {
	network := api.Group("/network/v1")
	network.Get("/graph", c.GetGraph)
	network.Post("/highlight", c.Highlight)
	network.Get("/snapshot", c.GetSnapshot)
	network.Post("/snapshot", c.SaveSnapshot)
}

// GetGraph returns the full classified interaction graph.
func (c *networkController) GetGraph(ctx *fiber.Ctx) error {
	resp, err := c.graphService.GetGraph(ctx.Context())
	if err != nil {
		return mapNetworkError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Graph retrieved", resp))
}

// Highlight resolves nutrient names to graph node ids. An empty request body
// falls back to the latest stored snapshot.
func (c *networkController) Highlight(ctx *fiber.Ctx) error {
	var req dto.HighlightRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := c.graphService.Highlight(ctx.Context(), &req)
	if err != nil {
		return mapNetworkError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Highlight resolved", resp))
}

func (c *networkController) GetSnapshot(ctx *fiber.Ctx) error {
	resp, err := c.graphService.LatestSnapshot(ctx.Context())
	if err != nil {
		return err
	}
	if resp == nil {
		return fiber.NewError(fiber.StatusNotFound, "no snapshot stored")
	}
	return ctx.JSON(serverutils.SuccessResponse("Snapshot retrieved", resp))
}

func (c *networkController) SaveSnapshot(ctx *fiber.Ctx) error {
	var req dto.SaveSnapshotRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	resp, err := c.graphService.SaveSnapshot(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Snapshot stored", resp))
}
