package models

type Fine struct {
	ID          int64   `json:"id"`
	BorrowID    int64   `json:"borrowId"`
	BookTitle   string  `json:"bookTitle"`
	FineAmount  float64 `json:"fineAmount"`
	LastUpdated string  `json:"lastUpdated"`
	IsPaid      bool    `json:"isPaid"`
}

// UserFine is the per-user fine summary shown on the admin fines page.
type UserFine struct {
	UserID           int64   `json:"userId"`
	Username         string  `json:"username"`
	TotalFinesAmount float64 `json:"totalFinesAmount"`
}
