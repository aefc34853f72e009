package dto

import "servhub_backend/internal/models"

// --- Информация о бизнесе ---

type BusinessInfoRequest struct {
	Description  string   `json:"description" validate:"max=2000"`
	WorkingHours string   `json:"workingHours" validate:"max=200"`
	CategoryIDs  []string `json:"categories" validate:"dive,uuid"`
	Branches     []struct {
		Location string `json:"location" validate:"required"`
		Address  string `json:"address"`
	} `json:"branches" validate:"dive"`
}

type BranchRequest struct {
	Location string `json:"location" validate:"required"`
	Address  string `json:"address"`
}

// --- Услуги и предложения ---

type CreateServiceRequest struct {
	Name             string   `json:"name" validate:"required,max=100"`
	ShortDescription string   `json:"shortDescription" validate:"required,max=140"`
	Description      string   `json:"description" validate:"max=2000"`
	CoverImage       string   `json:"coverImage"`
	CategoryIDs      []string `json:"categories" validate:"dive,uuid"`
}

type UpdateServiceRequest struct {
	Name             string   `json:"name" validate:"required,max=100"`
	ShortDescription string   `json:"shortDescription" validate:"required,max=140"`
	Description      string   `json:"description" validate:"max=2000"`
	CoverImage       string   `json:"coverImage"`
	CategoryIDs      []string `json:"categories" validate:"dive,uuid"`
}

type OfferingRequest struct {
	BranchID  string  `json:"branchId" validate:"required,uuid"`
	StartDate string  `json:"startDate" validate:"required"`
	EndDate   string  `json:"endDate" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

// --- Отзывы и бронирования ---

type ReviewRequest struct {
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"max=1000"`
}

type BookingRequest struct {
	ServiceID  string `json:"serviceId" validate:"required,uuid"`
	OfferingID string `json:"offeringId" validate:"required,uuid"`
}

// --- Админ ---

type CategoryRequest struct {
	Type  string `json:"type" validate:"required,is-category-type"`
	Title string `json:"title" validate:"required,max=100"`
	Icon  string `json:"icon"`
}

// --- Профиль клиента ---

type EditProfileRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Mobile    string `json:"mobile" validate:"required,is-mobile"`
	Gender    string `json:"gender" validate:"required,is-gender"`
	Birthdate string `json:"birthdate" validate:"required,min-age=13"`
}

// --- Ответы ---

type ServiceListResponse struct {
	Results []models.Service `json:"results"`
	Total   int64            `json:"count"`
}

type PageResponse struct {
	Results interface{} `json:"results"`
	Total   int64       `json:"count"`
	Page    int         `json:"page"`
	PerPage int         `json:"perPage"`
}
