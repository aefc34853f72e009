package models

import "time"

// Category - категория услуг или бизнесов (тип различает их)
type Category struct {
	BaseModel
	Type    CategoryType `gorm:"type:varchar(20);not null" json:"type"`
	Title   string       `gorm:"not null" json:"title"`
	Icon    string       `json:"icon,omitempty"`
	Deleted bool         `gorm:"default:false" json:"-"`
}

// Branch - филиал бизнеса
type Branch struct {
	BaseModel
	BusinessID string `gorm:"not null;index" json:"businessId"`
	Location   string `gorm:"not null" json:"location"`
	Address    string `json:"address"`
	Deleted    bool   `gorm:"default:false" json:"-"`
}

// Service - услуга, которую бизнес выставляет в каталог
type Service struct {
	BaseModel
	BusinessID       string  `gorm:"not null;index" json:"businessId"`
	Name             string  `gorm:"not null" json:"name"`
	ShortDescription string  `gorm:"not null" json:"shortDescription"`
	Description      string  `json:"description"`
	CoverImage       string  `json:"coverImage,omitempty"`
	AvgRating        float64 `gorm:"default:0" json:"avgRating"`
	RatingCount      int     `gorm:"default:0" json:"ratingCount"`
	Deleted          bool    `gorm:"default:false" json:"-"`

	// Relations
	Business   *Business  `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Categories []Category `gorm:"many2many:service_categories" json:"categories,omitempty"`
	Offerings  []Offering `gorm:"foreignKey:ServiceID" json:"offerings,omitempty"`
	Reviews    []Review   `gorm:"foreignKey:ServiceID" json:"reviews,omitempty"`
}

// Offering - конкретное предложение услуги в филиале и интервале дат
type Offering struct {
	BaseModel
	ServiceID string    `gorm:"not null;index" json:"serviceId"`
	BranchID  string    `gorm:"not null;index" json:"branchId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Location  string    `json:"location"`
	Address   string    `json:"address"`
	Price     float64   `gorm:"not null" json:"price"`
	Deleted   bool      `gorm:"default:false" json:"-"`
}

// Review - отзыв клиента об услуге; один на пару (услуга, клиент)
type Review struct {
	BaseModel
	ServiceID   string `gorm:"not null;index:idx_reviews_service_client,unique" json:"serviceId"`
	ClientID    string `gorm:"not null;index:idx_reviews_service_client,unique" json:"clientId"`
	Rating      int    `gorm:"not null" json:"rating"`
	Description string `json:"description"`
}

// Booking - бронирование предложения клиентом.
// Цена фиксируется на момент бронирования.
type Booking struct {
	BaseModel
	ClientID   string  `gorm:"not null;index" json:"clientId"`
	ServiceID  string  `gorm:"not null;index" json:"serviceId"`
	OfferingID string  `gorm:"not null" json:"offeringId"`
	Price      float64 `gorm:"not null" json:"price"`

	Service  *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Offering *Offering `gorm:"foreignKey:OfferingID" json:"offering,omitempty"`
}
