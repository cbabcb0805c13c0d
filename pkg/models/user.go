package models

// User is a registered author. Key is the opaque secret issued at creation
// and is never included in public views.
type User struct {
	ID       int64  `json:"user_id"`
	Key      string `json:"-"`
	Username string `json:"username"`
	RealName string `json:"real_name"`
}

// UserView is the public read shape for a user.
type UserView struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	RealName string `json:"real_name"`
}

// UserReceipt is returned from user creation; it is the only place the
// user's secret key is ever handed out.
type UserReceipt struct {
	ID  int64  `json:"user_id"`
	Key string `json:"key"`
}
