package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserResponse 是用户列表接口的响应模型，只暴露ID和用户名。
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// GetUsers 返回按用户名排序的全部用户。
func GetUsers(c *gin.Context) {
	users, err := GetAllUsersOrdered()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户列表失败"})
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, UserResponse{ID: u.ID, Username: u.Username})
	}
	c.JSON(http.StatusOK, gin.H{"users": responses})
}
