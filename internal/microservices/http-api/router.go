package httpapi

import (
	"justco/internal/logger"
	"justco/internal/microservices/http-api/handler"
	"justco/internal/microservices/http-api/middleware"
	"justco/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Logger         zerolog.Logger
	DB             handler.Pinger
	RoomService    service.RoomService
	MessageService service.MessageService
	AdminSecret    string
	CORSOrigins    []string
}

// NewRouter builds the gin engine serving the chat API.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	// Match on the escaped path so a secret code may contain "/" as %2F;
	// params are still unescaped before they reach the handlers.
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(middleware.CORS(deps.CORSOrigins))

	handler.NewHealthHandler(deps.DB).RegisterRoutes(r)

	chat := r.Group("/chat")
	handler.NewRoomHandler(deps.RoomService).RegisterRoutes(chat, middleware.AdminMiddleware(deps.AdminSecret))
	handler.NewMessageHandler(deps.MessageService).RegisterRoutes(chat)

	return r
}
