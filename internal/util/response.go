package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the payload map for success bodies.
type Response map[string]interface{}

// OK writes {"success": true, ...data}.
func OK(c *gin.Context, data Response) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Created writes a 201 with {"success": true}.
func Created(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Fail writes {"success": false, "message": msg}. The message is always a
// flat generic string; internal error detail never reaches the client.
func Fail(c *gin.Context, status int, msg string) {
	body := gin.H{"success": false}
	if msg != "" {
		body["message"] = msg
	}
	c.JSON(status, body)
}
