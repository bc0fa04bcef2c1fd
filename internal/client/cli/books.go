package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/client/rbac"
)

func (a *App) listBooks(ctx context.Context) {
	if !a.session.HasCapability(rbac.BookRead) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	books, err := a.books.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	if len(books) == 0 {
		fmt.Fprintln(a.out, "No books in the catalog")
		return
	}
	for _, b := range books {
		fmt.Fprintf(a.out, "%4d  %-40s %-25s %d/%d available\n",
			b.ID, b.Title, b.Author, b.AvailableCopies, b.TotalCopies)
	}
}

func (a *App) showBook(ctx context.Context, id int64) {
	if !a.session.HasCapability(rbac.BookRead) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	b, err := a.books.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Title:     %s\n", b.Title)
	fmt.Fprintf(a.out, "Author:    %s\n", b.Author)
	fmt.Fprintf(a.out, "ISBN:      %s\n", b.ISBN)
	fmt.Fprintf(a.out, "Category:  %s\n", b.Category)
	fmt.Fprintf(a.out, "Published: %s\n", b.PublishDate)
	fmt.Fprintf(a.out, "Copies:    %d/%d available\n", b.AvailableCopies, b.TotalCopies)
	if b.ImageURL != "" {
		fmt.Fprintf(a.out, "Cover:     %s\n", b.ImageURL)
	}
}

// promptBook collects the book fields, prefilled from base when editing.
func (a *App) promptBook(ctx context.Context, base models.Book) (models.Book, error) {
	var err error
	read := func(prompt, current string) string {
		if err != nil {
			return ""
		}
		label := prompt
		if current != "" {
			label = fmt.Sprintf("%s [%s]", prompt, current)
		}
		var s string
		s, err = GetSimpleText(a.reader, label, a.out)
		if s == "" {
			return current
		}
		return s
	}

	book := base
	book.Title = read("Title", base.Title)
	book.Author = read("Author", base.Author)
	book.ISBN = read("ISBN", base.ISBN)
	book.Category = read("Category", base.Category)
	book.PublishDate = read("Publish date (YYYY-MM-DD)", base.PublishDate)

	total := read("Total copies", strconv.Itoa(base.TotalCopies))
	if err != nil {
		return models.Book{}, err
	}
	book.TotalCopies, err = strconv.Atoi(total)
	if err != nil {
		return models.Book{}, fmt.Errorf("not a number: %q", total)
	}
	if base.ID == 0 {
		book.AvailableCopies = book.TotalCopies
	}

	cover := read("Cover image path (optional)", "")
	if err != nil {
		return models.Book{}, err
	}
	if cover != "" {
		url, uploadErr := a.books.UploadCover(ctx, cover)
		if uploadErr != nil {
			return models.Book{}, uploadErr
		}
		book.ImageURL = url
	}
	return book, nil
}

func (a *App) addBook(ctx context.Context) {
	if !a.session.HasCapability(rbac.BookCreate) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	book, err := a.promptBook(ctx, models.Book{})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}

	created, err := a.books.Create(ctx, book)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Book %d created\n", created.ID)
}

func (a *App) editBook(ctx context.Context, id int64) {
	if !a.session.HasCapability(rbac.BookUpdate) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	current, err := a.books.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}

	book, err := a.promptBook(ctx, *current)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}

	if _, err := a.books.Update(ctx, id, book); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Book %d updated\n", id)
}

func (a *App) deleteBook(ctx context.Context, id int64) {
	if !a.session.HasCapability(rbac.BookDelete) {
		fmt.Fprintln(a.out, "Not allowed")
		return
	}

	if err := a.books.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Book %d deleted\n", id)
}
