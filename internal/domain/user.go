package domain

type User struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	BillingAddress  Address `json:"billing_address"`
	DeliveryAddress Address `json:"delivery_address"`
}
