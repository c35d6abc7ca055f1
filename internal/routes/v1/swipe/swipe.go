package routesV1Swipe

import (
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/middleware"
	"github.com/cristiannav/swapstyle-backend/internal/routes/respond"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/swipe"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func SwipeHandler(c echo.Context, swipeCase swipe.ISwipeUseCase) error {
	user, _ := middleware.CurrentUser(c)

	reqBody, err := http_util.Decode[entity.SwipeRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return respond.ValidationFailed(c, problems)
	}

	result, err := swipeCase.Swipe(c.Request().Context(), user.ID, reqBody.GarmentID, entity.SwipeDirection(reqBody.Direction))
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Created(c, "Swipe recorded", result)
}

func UndoHandler(c echo.Context, swipeCase swipe.ISwipeUseCase) error {
	user, _ := middleware.CurrentUser(c)

	if err := swipeCase.UndoLast(c.Request().Context(), user.ID); err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Swipe undone", entity.UndoSwipeResponse{Undone: true})
}

func HistoryHandler(c echo.Context, swipeCase swipe.ISwipeUseCase) error {
	user, _ := middleware.CurrentUser(c)

	var direction *entity.SwipeDirection
	if raw := c.QueryParam("direction"); raw != "" {
		d := entity.SwipeDirection(raw)
		if !d.Valid() {
			return http_util.BadRequest(c, "Direction must be LEFT or RIGHT")
		}
		direction = &d
	}

	swipes, err := swipeCase.History(c.Request().Context(), user.ID, direction)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "History fetched", swipes)
}
