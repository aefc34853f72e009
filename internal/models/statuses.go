package models

type AccountStatus string
type AccountKind string
type CategoryType string

const (
	// Статусы аккаунтов.
	// Клиент: unverified -> confirmed (одностороннее), боковая ветка banned.
	// Бизнес: pending -> unverified -> confirmed, боковая ветка rejected.
	AccountStatusUnverified AccountStatus = "unverified"
	AccountStatusConfirmed  AccountStatus = "confirmed"
	AccountStatusBanned     AccountStatus = "banned"
	AccountStatusRejected   AccountStatus = "rejected"
	AccountStatusPending    AccountStatus = "pending"

	AccountKindClient   AccountKind = "client"
	AccountKindBusiness AccountKind = "business"
	AccountKindAdmin    AccountKind = "admin"

	CategoryTypeService  CategoryType = "Service"
	CategoryTypeBusiness CategoryType = "Business"
)
