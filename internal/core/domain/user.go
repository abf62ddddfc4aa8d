package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleMerchant UserRole = "MERCHANT"
	RoleCourier  UserRole = "COURIER"
	RoleAdmin    UserRole = "ADMIN"
)

type User struct {
	ID          uint64
	FullName    string
	Email       string
	Phone       string
	Password    string
	Role        UserRole
	DeviceToken string
	IsAvailable bool
	CreatedAt   time.Time
	LastUpdated time.Time
}

// Recipient is a concrete delivery target resolved from an audience.
// DeviceToken is empty when the user never registered a device.
type Recipient struct {
	UserID      uint64
	DeviceToken string
}

// AudienceSelector is an abstract description of who should receive a
// broadcast: everyone or every user of one role.
type AudienceSelector string

const (
	AudienceAll       AudienceSelector = "ALL"
	AudienceCustomers AudienceSelector = "CUSTOMER"
	AudienceMerchants AudienceSelector = "MERCHANT"
	AudienceCouriers  AudienceSelector = "COURIER"
)
