package utils

import "github.com/gin-gonic/gin"

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONList(c *gin.Context, code int, data interface{}, page, limit int, total int64) {
	c.JSON(code, gin.H{
		"success":    true,
		"data":       data,
		"pagination": Pagination{Page: page, Limit: limit, Total: total},
	})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
