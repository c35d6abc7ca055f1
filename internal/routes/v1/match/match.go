package routesV1Match

import (
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/middleware"
	"github.com/cristiannav/swapstyle-backend/internal/routes/respond"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/chat"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/match"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func ListHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, _ := middleware.CurrentUser(c)
	page, limit := respond.PageParams(c, 20)

	result, err := matchCase.List(c.Request().Context(), user.ID, page, limit)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Matches fetched", result)
}

func StatsHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, _ := middleware.CurrentUser(c)

	stats, err := matchCase.Stats(c.Request().Context(), user.ID)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Match stats fetched", stats)
}

func GetHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	found, err := matchCase.GetByID(c.Request().Context(), id, user.ID)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Match fetched", found)
}

func UpdateStatusHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	reqBody, err := http_util.Decode[entity.UpdateMatchStatusRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return respond.ValidationFailed(c, problems)
	}

	updated, err := matchCase.UpdateStatus(c.Request().Context(), id, user.ID, entity.MatchStatus(reqBody.Status))
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Match status updated", updated)
}

func ProposeGarmentHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	reqBody, err := http_util.Decode[entity.ProposeGarmentRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	updated, err := matchCase.ProposeGarment(c.Request().Context(), id, user.ID, reqBody.GarmentID)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Garment proposed", updated)
}

func ConversationHandler(c echo.Context, chatCase chat.IChatUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	conversation, err := chatCase.GetConversationByMatch(c.Request().Context(), user.ID, id)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Conversation fetched", conversation)
}
