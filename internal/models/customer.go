package models

type Customer struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Contact string `json:"contact" db:"contact"`
	Address string `json:"address" db:"address"`
}
