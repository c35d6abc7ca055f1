package routesV1

import (
	"github.com/cristiannav/swapstyle-backend/internal/middleware"
	"github.com/cristiannav/swapstyle-backend/internal/realtime"
	routesV1Auth "github.com/cristiannav/swapstyle-backend/internal/routes/v1/auth"
	routesV1Chat "github.com/cristiannav/swapstyle-backend/internal/routes/v1/chat"
	routesV1Event "github.com/cristiannav/swapstyle-backend/internal/routes/v1/event"
	routesV1Garment "github.com/cristiannav/swapstyle-backend/internal/routes/v1/garment"
	routesV1Match "github.com/cristiannav/swapstyle-backend/internal/routes/v1/match"
	routesV1Notification "github.com/cristiannav/swapstyle-backend/internal/routes/v1/notification"
	routesV1SuperLike "github.com/cristiannav/swapstyle-backend/internal/routes/v1/superlike"
	routesV1Swipe "github.com/cristiannav/swapstyle-backend/internal/routes/v1/swipe"
	authUseCase "github.com/cristiannav/swapstyle-backend/internal/usecase/auth"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/chat"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/event"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/garment"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/match"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/notification"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/superlike"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/swipe"
	"github.com/labstack/echo"
)

// UseCases bundles everything the v1 surface exposes.
type UseCases struct {
	Auth         authUseCase.IAuthUseCase
	Garment      garment.IGarmentUseCase
	Swipe        swipe.ISwipeUseCase
	SuperLike    superlike.ISuperLikeUseCase
	Match        match.IMatchUseCase
	Chat         chat.IChatUseCase
	Notification notification.INotificationUseCase
	Event        event.IEventUseCase
}

func InitV1Routes(e *echo.Echo, uc UseCases, hub *realtime.Hub, limiter *middleware.RateLimiter) {
	v1 := e.Group("/v1")

	v1.POST("/auth/sign-up", func(c echo.Context) error {
		return routesV1Auth.SignUpHandler(c, uc.Auth)
	})
	v1.POST("/auth/sign-in", func(c echo.Context) error {
		return routesV1Auth.SignInHandler(c, uc.Auth)
	})

	authed := v1.Group("", middleware.JWTMiddleware(uc.Auth))

	authed.GET("/garments", func(c echo.Context) error {
		return routesV1Garment.SearchHandler(c, uc.Garment)
	})
	authed.POST("/garments", func(c echo.Context) error {
		return routesV1Garment.CreateHandler(c, uc.Garment)
	})
	authed.GET("/garments/feed", func(c echo.Context) error {
		return routesV1Garment.FeedHandler(c, uc.Garment)
	})
	authed.GET("/garments/:id", func(c echo.Context) error {
		return routesV1Garment.GetHandler(c, uc.Garment)
	})
	authed.PUT("/garments/:id", func(c echo.Context) error {
		return routesV1Garment.UpdateHandler(c, uc.Garment)
	})
	authed.DELETE("/garments/:id", func(c echo.Context) error {
		return routesV1Garment.DeleteHandler(c, uc.Garment)
	})

	// swipes and super-likes additionally pass the rate limiter
	limited := authed.Group("", limiter.Middleware())

	limited.POST("/swipes", func(c echo.Context) error {
		return routesV1Swipe.SwipeHandler(c, uc.Swipe)
	})
	limited.DELETE("/swipes/last", func(c echo.Context) error {
		return routesV1Swipe.UndoHandler(c, uc.Swipe)
	})
	authed.GET("/swipes/history", func(c echo.Context) error {
		return routesV1Swipe.HistoryHandler(c, uc.Swipe)
	})

	limited.POST("/super-likes", func(c echo.Context) error {
		return routesV1SuperLike.SendHandler(c, uc.SuperLike)
	})
	authed.GET("/super-likes/remaining", func(c echo.Context) error {
		return routesV1SuperLike.RemainingHandler(c, uc.SuperLike)
	})
	authed.GET("/super-likes/received", func(c echo.Context) error {
		return routesV1SuperLike.ReceivedHandler(c, uc.SuperLike)
	})
	authed.GET("/super-likes/sent", func(c echo.Context) error {
		return routesV1SuperLike.SentHandler(c, uc.SuperLike)
	})

	authed.GET("/matches", func(c echo.Context) error {
		return routesV1Match.ListHandler(c, uc.Match)
	})
	authed.GET("/matches/stats", func(c echo.Context) error {
		return routesV1Match.StatsHandler(c, uc.Match)
	})
	authed.GET("/matches/:id", func(c echo.Context) error {
		return routesV1Match.GetHandler(c, uc.Match)
	})
	authed.PATCH("/matches/:id/status", func(c echo.Context) error {
		return routesV1Match.UpdateStatusHandler(c, uc.Match)
	})
	authed.PUT("/matches/:id/garment", func(c echo.Context) error {
		return routesV1Match.ProposeGarmentHandler(c, uc.Match)
	})
	authed.GET("/matches/:id/conversation", func(c echo.Context) error {
		return routesV1Match.ConversationHandler(c, uc.Chat)
	})

	authed.GET("/conversations/:id", func(c echo.Context) error {
		return routesV1Chat.GetConversationHandler(c, uc.Chat)
	})
	authed.GET("/conversations/:id/messages", func(c echo.Context) error {
		return routesV1Chat.MessagesHandler(c, uc.Chat)
	})
	authed.POST("/conversations/:id/messages", func(c echo.Context) error {
		return routesV1Chat.SendMessageHandler(c, uc.Chat)
	})

	authed.GET("/notifications", func(c echo.Context) error {
		return routesV1Notification.ListHandler(c, uc.Notification)
	})
	authed.GET("/notifications/unread-count", func(c echo.Context) error {
		return routesV1Notification.UnreadCountHandler(c, uc.Notification)
	})
	authed.GET("/notifications/stream", func(c echo.Context) error {
		return routesV1Notification.StreamHandler(c, hub)
	})
	authed.PATCH("/notifications/read-all", func(c echo.Context) error {
		return routesV1Notification.MarkAllReadHandler(c, uc.Notification)
	})
	authed.PATCH("/notifications/:id/read", func(c echo.Context) error {
		return routesV1Notification.MarkReadHandler(c, uc.Notification)
	})
	authed.DELETE("/notifications/:id", func(c echo.Context) error {
		return routesV1Notification.DeleteHandler(c, uc.Notification)
	})

	authed.GET("/events", func(c echo.Context) error {
		return routesV1Event.UpcomingHandler(c, uc.Event)
	})
	authed.POST("/events", func(c echo.Context) error {
		return routesV1Event.CreateHandler(c, uc.Event)
	})
	authed.GET("/events/:id", func(c echo.Context) error {
		return routesV1Event.GetHandler(c, uc.Event)
	})
	authed.POST("/events/:id/register", func(c echo.Context) error {
		return routesV1Event.RegisterHandler(c, uc.Event)
	})
	authed.DELETE("/events/:id/register", func(c echo.Context) error {
		return routesV1Event.UnregisterHandler(c, uc.Event)
	})
}
