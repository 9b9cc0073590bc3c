package dto

// PaginationDTO is bound from ?page=&pageSize=. Zero values mean "use the
// default"; clamping happens in the repository layer.
type PaginationDTO struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// CreatedResponse is the body of every 201.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
