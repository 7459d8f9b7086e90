package model

import "database/sql"

// User 结构体表示带有帖子和地址的用户
type User struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Posts     []Post    `json:"posts"`
	Addresses []Address `json:"addresses"`
}

// Post 用户帖子
type Post struct {
	PostID int64  `json:"post_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Address 用户地址
type Address struct {
	AddressID int64  `json:"address_id"`
	Street    string `json:"street"`
}

// UserRow 是 users LEFT JOIN posts LEFT JOIN addresses 的一行
type UserRow struct {
	UserID        int64
	Name          sql.NullString
	Email         sql.NullString
	PostID        sql.NullInt64
	PostTitle     sql.NullString
	PostBody      sql.NullString
	AddressID     sql.NullInt64
	AddressStreet sql.NullString
}

// CreateUserInput 创建用户请求体，地址和帖子随用户一起创建
type CreateUserInput struct {
	Name        string `json:"name" binding:"notblank"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PostContent string `json:"postContent"`
}
