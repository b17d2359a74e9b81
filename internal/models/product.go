package models

type Product struct {
	ID    int64   `json:"id" db:"id"`
	Code  string  `json:"code" db:"code"`
	Name  string  `json:"name" db:"name"`
	Spec  string  `json:"spec" db:"spec"`
	Unit  string  `json:"unit" db:"unit"`
	Price float64 `json:"price" db:"price"`
}
