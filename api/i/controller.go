package i

import "github.com/gin-gonic/gin"

// Controller registers one resource's routes. The router calls both methods,
// handing protected routes a group that already requires a bearer token.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
