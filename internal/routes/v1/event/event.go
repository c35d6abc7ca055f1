package routesV1Event

import (
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/middleware"
	"github.com/cristiannav/swapstyle-backend/internal/routes/respond"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/event"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func UpcomingHandler(c echo.Context, eventCase event.IEventUseCase) error {
	page, limit := respond.PageParams(c, 20)

	result, err := eventCase.Upcoming(c.Request().Context(), page, limit)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Events fetched", result)
}

func CreateHandler(c echo.Context, eventCase event.IEventUseCase) error {
	reqBody, err := http_util.Decode[entity.CreateEventRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return respond.ValidationFailed(c, problems)
	}

	created, err := eventCase.Create(c.Request().Context(), &reqBody)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Created(c, "Event created", created)
}

func GetHandler(c echo.Context, eventCase event.IEventUseCase) error {
	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	found, err := eventCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Event fetched", found)
}

func RegisterHandler(c echo.Context, eventCase event.IEventUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	if err := eventCase.Register(c.Request().Context(), id, user.ID); err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Registered for event", struct{}{})
}

func UnregisterHandler(c echo.Context, eventCase event.IEventUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	if err := eventCase.Unregister(c.Request().Context(), id, user.ID); err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Unregistered from event", struct{}{})
}
