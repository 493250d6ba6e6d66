package user

import (
	"errors"
	"fmt"

	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
	"gorm.io/gorm"
)

// GetAllUsersOrdered 返回按用户名升序排列的全部用户。
// 比较窗口的参与者顺序以此为准，平局时的胜者裁定也依赖这个固定顺序。
func GetAllUsersOrdered() ([]User, error) {
	var users []User
	if err := database.DB.Order("username asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("无法从数据库读取用户列表: %w", err)
	}
	return users, nil
}

// FindByID 根据主键查找用户，找不到时返回nil而不是错误。
func FindByID(id string) (*User, error) {
	var u User
	err := database.DB.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询用户 %s 失败: %w", id, err)
	}
	return &u, nil
}

// FindByUsername 根据用户名查找用户，找不到时返回nil而不是错误。
func FindByUsername(username string) (*User, error) {
	var u User
	err := database.DB.Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询用户 %s 失败: %w", username, err)
	}
	return &u, nil
}

// CountUsers 返回用户总数。
func CountUsers() (int64, error) {
	var count int64
	if err := database.DB.Model(&User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计用户数量失败: %w", err)
	}
	return count, nil
}
