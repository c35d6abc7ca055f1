package routesV1Notification

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/middleware"
	"github.com/cristiannav/swapstyle-backend/internal/realtime"
	"github.com/cristiannav/swapstyle-backend/internal/routes/respond"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/notification"
	"github.com/labstack/echo"
)

func ListHandler(c echo.Context, notificationCase notification.INotificationUseCase) error {
	user, _ := middleware.CurrentUser(c)
	page, limit := respond.PageParams(c, 20)

	result, err := notificationCase.List(c.Request().Context(), user.ID, page, limit)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Notifications fetched", result)
}

func UnreadCountHandler(c echo.Context, notificationCase notification.INotificationUseCase) error {
	user, _ := middleware.CurrentUser(c)

	count, err := notificationCase.UnreadCount(c.Request().Context(), user.ID)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Unread count fetched", count)
}

func MarkReadHandler(c echo.Context, notificationCase notification.INotificationUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	if err := notificationCase.MarkRead(c.Request().Context(), id, user.ID); err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Notification marked read", struct{}{})
}

func MarkAllReadHandler(c echo.Context, notificationCase notification.INotificationUseCase) error {
	user, _ := middleware.CurrentUser(c)

	if err := notificationCase.MarkAllRead(c.Request().Context(), user.ID); err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "All notifications marked read", struct{}{})
}

func DeleteHandler(c echo.Context, notificationCase notification.INotificationUseCase) error {
	user, _ := middleware.CurrentUser(c)

	id, err := respond.UintParam(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}

	if err := notificationCase.Delete(c.Request().Context(), id, user.ID); err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Notification deleted", struct{}{})
}

// StreamHandler holds the connection open as a server-sent-event stream and
// forwards hub envelopes until the client disconnects.
func StreamHandler(c echo.Context, hub *realtime.Hub) error {
	user, _ := middleware.CurrentUser(c)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	envelopes, unsubscribe := hub.Subscribe(user.ID)
	defer unsubscribe()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case env, ok := <-envelopes:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(env)
			if err != nil {
				continue
			}
			fmt.Fprintf(res, "data: %s\n\n", payload)
			res.Flush()
		case <-heartbeat.C:
			fmt.Fprint(res, ": ping\n\n")
			res.Flush()
		}
	}
}
