package entity

type User struct {
	Username  string  `db:"username" json:"username"`
	Name      string  `db:"name" json:"name"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url"`
}
