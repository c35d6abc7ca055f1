package routesV1Chat

import (
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/middleware"
	"github.com/cristiannav/swapstyle-backend/internal/routes/respond"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/chat"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func GetConversationHandler(c echo.Context, chatCase chat.IChatUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	conversation, err := chatCase.GetConversation(c.Request().Context(), user.ID, id)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Conversation fetched", conversation)
}

func MessagesHandler(c echo.Context, chatCase chat.IChatUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	page, limit := respond.PageParams(c, 50)

	messages, err := chatCase.Messages(c.Request().Context(), user.ID, id, page, limit)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Messages fetched", messages)
}

func SendMessageHandler(c echo.Context, chatCase chat.IChatUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	reqBody, err := http_util.Decode[entity.SendMessageRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return respond.ValidationFailed(c, problems)
	}

	message, err := chatCase.SendMessage(c.Request().Context(), user.ID, id, &reqBody)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Created(c, "Message sent", message)
}
