package routesV1SuperLike

import (
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/middleware"
	"github.com/cristiannav/swapstyle-backend/internal/routes/respond"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/superlike"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func SendHandler(c echo.Context, superLikeCase superlike.ISuperLikeUseCase) error {
	user, _ := middleware.CurrentUser(c)

	reqBody, err := http_util.Decode[entity.SuperLikeRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return respond.ValidationFailed(c, problems)
	}

	sent, err := superLikeCase.Send(c.Request().Context(), user.ID, reqBody.GarmentID, reqBody.Message)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Created(c, "Super like sent", sent)
}

func RemainingHandler(c echo.Context, superLikeCase superlike.ISuperLikeUseCase) error {
	user, _ := middleware.CurrentUser(c)

	remaining, err := superLikeCase.RemainingToday(c.Request().Context(), user.ID)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Remaining super likes fetched", remaining)
}

func ReceivedHandler(c echo.Context, superLikeCase superlike.ISuperLikeUseCase) error {
	user, _ := middleware.CurrentUser(c)

	superLikes, err := superLikeCase.Received(c.Request().Context(), user.ID)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Received super likes fetched", superLikes)
}

func SentHandler(c echo.Context, superLikeCase superlike.ISuperLikeUseCase) error {
	user, _ := middleware.CurrentUser(c)

	superLikes, err := superLikeCase.Sent(c.Request().Context(), user.ID)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Sent super likes fetched", superLikes)
}
