package routesV1Garment

import (
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/middleware"
	"github.com/cristiannav/swapstyle-backend/internal/routes/respond"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/garment"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func CreateHandler(c echo.Context, garmentCase garment.IGarmentUseCase) error {
	user, _ := middleware.CurrentUser(c)

	reqBody, err := http_util.Decode[entity.CreateGarmentRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return respond.ValidationFailed(c, problems)
	}

	created, err := garmentCase.Create(c.Request().Context(), user.ID, &reqBody)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Created(c, "Garment created", created)
}

func GetHandler(c echo.Context, garmentCase garment.IGarmentUseCase) error {
	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	found, err := garmentCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Garment fetched", found)
}

func UpdateHandler(c echo.Context, garmentCase garment.IGarmentUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	reqBody, err := http_util.Decode[entity.UpdateGarmentRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	updated, err := garmentCase.Update(c.Request().Context(), user.ID, id, &reqBody)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Garment updated", updated)
}

func DeleteHandler(c echo.Context, garmentCase garment.IGarmentUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	if err := garmentCase.Delete(c.Request().Context(), user.ID, id); err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Garment deleted", struct{}{})
}

func SearchHandler(c echo.Context, garmentCase garment.IGarmentUseCase) error {
	filters := entity.GarmentFilters{
		Category:  c.QueryParam("category"),
		Size:      c.QueryParam("size"),
		Color:     c.QueryParam("color"),
		Condition: c.QueryParam("condition"),
		Brand:     c.QueryParam("brand"),
		Status:    entity.GarmentStatus(c.QueryParam("status")),
	}
	page, limit := respond.PageParams(c, 20)

	result, err := garmentCase.Search(c.Request().Context(), filters, page, limit)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Garments fetched", result)
}

func FeedHandler(c echo.Context, garmentCase garment.IGarmentUseCase) error {
	user, _ := middleware.CurrentUser(c)

	garments, err := garmentCase.Feed(c.Request().Context(), user.ID)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Feed fetched", garments)
}
