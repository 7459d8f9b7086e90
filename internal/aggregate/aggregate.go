// Package aggregate 将 users/posts/addresses 的扁平连接结果折叠为嵌套的用户对象。
//
// 两个独立的一对多 LEFT JOIN 会让行数相乘：一个有 2 个帖子和 3 个地址的用户
// 会产生 6 行。默认情况下每一行的帖子和地址都会被追加，因此列表长度也会相乘；
// 设置 Options.DedupChildren 后按帖子ID和地址ID去重。
package aggregate

import "github.com/emeka-osuagwu/user-post-ui/internal/model"

// Options 控制折叠方式
type Options struct {
	DedupChildren bool
}

// Users 按用户ID分组，输出顺序为用户第一次出现的顺序
func Users(rows []model.UserRow, opts Options) []*model.User {
	users := make([]*model.User, 0)
	index := make(map[int64]*folder)

	for _, row := range rows {
		f, ok := index[row.UserID]
		if !ok {
			f = newFolder(row)
			index[row.UserID] = f
			users = append(users, f.user)
		}
		f.add(row, opts)
	}
	return users
}

// User 将同一用户的所有行折叠为一个对象，身份字段取自第一行；没有行时返回 nil
func User(rows []model.UserRow, opts Options) *model.User {
	if len(rows) == 0 {
		return nil
	}
	f := newFolder(rows[0])
	for _, row := range rows {
		f.add(row, opts)
	}
	return f.user
}

type folder struct {
	user      *model.User
	posts     map[int64]struct{}
	addresses map[int64]struct{}
}

func newFolder(row model.UserRow) *folder {
	return &folder{
		user: &model.User{
			UserID:    row.UserID,
			Name:      row.Name.String,
			Email:     row.Email.String,
			Posts:     []model.Post{},
			Addresses: []model.Address{},
		},
		posts:     make(map[int64]struct{}),
		addresses: make(map[int64]struct{}),
	}
}

func (f *folder) add(row model.UserRow, opts Options) {
	// LEFT JOIN 没有匹配时帖子/地址列全为 NULL
	if row.PostID.Valid {
		if _, seen := f.posts[row.PostID.Int64]; !seen || !opts.DedupChildren {
			f.posts[row.PostID.Int64] = struct{}{}
			f.user.Posts = append(f.user.Posts, model.Post{
				PostID: row.PostID.Int64,
				Title:  row.PostTitle.String,
				Body:   row.PostBody.String,
			})
		}
	}

	if row.AddressID.Valid {
		if _, seen := f.addresses[row.AddressID.Int64]; !seen || !opts.DedupChildren {
			f.addresses[row.AddressID.Int64] = struct{}{}
			f.user.Addresses = append(f.user.Addresses, model.Address{
				AddressID: row.AddressID.Int64,
				Street:    row.AddressStreet.String,
			})
		}
	}
}
