package models

type Borrow struct {
	ID         int64  `json:"id,omitempty"`
	UserID     int64  `json:"userId"`
	BookID     int64  `json:"bookId"`
	BorrowDate string `json:"borrowDate"`
	DueDate    string `json:"dueDate,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"`
	Status     string `json:"status"`
	Username   string `json:"username,omitempty"`
	BookTitle  string `json:"bookTitle,omitempty"`
}

// CreateBorrowRequest is the payload for borrowing a book. DueDate is in
// YYYY-MM-DD form.
type CreateBorrowRequest struct {
	BookID  int64  `json:"bookId"`
	DueDate string `json:"dueDate"`
}
