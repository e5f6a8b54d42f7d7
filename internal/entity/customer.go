package entity

import "time"

// Customer represents the customer table. Phone is the natural key: frontend
// orders upsert the customer by phone before the order row is written.
type Customer struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type CustomerInsert struct {
	Name  string `db:"name" valid:"required"`
	Phone string `db:"phone" valid:"required"`
	Email string `db:"email" valid:"email,optional"`
}
