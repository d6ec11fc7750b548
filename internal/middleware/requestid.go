package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 是請求識別碼使用的 HTTP 標頭
const RequestIDHeader = "X-Request-ID"

// RequestID 是一個 Gin 中間件，為每個請求附加唯一的識別碼
// 呼叫端已帶有識別碼時沿用，否則產生一個新的 UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		// 將識別碼設置到上下文與響應標頭中
		c.Set("requestID", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
