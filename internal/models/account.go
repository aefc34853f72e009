package models

import "time"

// Credentials - общие поля учетных данных всех видов аккаунтов.
//
// Три *time.Time поля - это watermark-и: токен соответствующего
// назначения действителен только если его issued-at не раньше watermark.
// nil означает "watermark снят" (sentinel "no value").
type Credentials struct {
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	PasswordResetTokenDate *time.Time `json:"-"`
	ConfirmationTokenDate  *time.Time `json:"-"`
	PasswordChangeDate     *time.Time `json:"-"`

	Deleted bool `gorm:"default:false" json:"-"`
}

// Account - общий интерфейс над вариантами Client/Business/Admin.
// Сервис аутентификации работает только через него.
type Account interface {
	AccountID() string
	Kind() AccountKind
	Creds() *Credentials
	Status() AccountStatus
	SetStatus(status AccountStatus)
}

// Client - аккаунт клиента маркетплейса
type Client struct {
	BaseModel
	Credentials

	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Mobile    string        `json:"mobile"`
	Gender    string        `json:"gender"`
	Birthdate time.Time     `json:"birthdate"`
	State     AccountStatus `gorm:"column:status;type:varchar(20);default:'unverified'" json:"status"`
}

func (c *Client) AccountID() string { return c.ID }
func (c *Client) Kind() AccountKind { return AccountKindClient }
func (c *Client) Creds() *Credentials { return &c.Credentials }
func (c *Client) Status() AccountStatus { return c.State }
func (c *Client) SetStatus(status AccountStatus) { c.State = status }

// Business - аккаунт бизнеса со своим каталогом
type Business struct {
	BaseModel
	Credentials

	Name             string        `gorm:"not null" json:"name"`
	ShortDescription string        `json:"shortDescription"`
	Description      string        `json:"description"`
	PhoneNumbers     string        `json:"phoneNumbers"`
	WorkingHours     string        `json:"workingHours"`
	State            AccountStatus `gorm:"column:status;type:varchar(20);default:'pending'" json:"status"`

	// Relations
	Categories []Category `gorm:"many2many:business_categories" json:"categories,omitempty"`
	Branches   []Branch   `gorm:"foreignKey:BusinessID" json:"branches,omitempty"`
	Services   []Service  `gorm:"foreignKey:BusinessID" json:"services,omitempty"`
}

func (b *Business) AccountID() string { return b.ID }
func (b *Business) Kind() AccountKind { return AccountKindBusiness }
func (b *Business) Creds() *Credentials { return &b.Credentials }
func (b *Business) Status() AccountStatus { return b.State }
func (b *Business) SetStatus(status AccountStatus) { b.State = status }

// Admin - аккаунт администратора; создается только сидингом
type Admin struct {
	BaseModel
	Credentials
}

func (a *Admin) AccountID() string { return a.ID }
func (a *Admin) Kind() AccountKind { return AccountKindAdmin }
func (a *Admin) Creds() *Credentials { return &a.Credentials }
func (a *Admin) Status() AccountStatus { return AccountStatusConfirmed }
func (a *Admin) SetStatus(status AccountStatus) {}
